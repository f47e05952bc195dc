// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svelteast_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/svelteast"
	"github.com/bufbuild/svelteast/internal/golden"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/walk"
)

// goldenCase is a test case in testdata: a component's source, and the
// compiler output for it, with byte offsets.
type goldenCase struct {
	Source string         `yaml:"source"`
	AST    map[string]any `yaml:"ast"`
}

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "SVELTEAST_REFRESH",
		Extension: "yaml",
		Outputs: []golden.Output{
			{Extension: "dump"},
			{Extension: "tokens"},
			{Extension: "scopes"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var c goldenCase
			require.NoError(t, yaml.Unmarshal([]byte(text), &c))
			root, err := svast.NewRoot(c.AST)
			require.NoError(t, err)

			res, err := svelteast.Convert(context.Background(), c.Source, root, svelteast.Options{Path: path})
			require.NoError(t, err)
			require.NoError(t, walk.Verify(res.Program, res.VisitorKeys, true))

			var dump strings.Builder
			require.NoError(t, walk.Dump(&dump, res.Program, res.VisitorKeys))

			var tokens strings.Builder
			for tok := range res.Tokens.All() {
				tokens.WriteString(tok.String())
				tokens.WriteByte('\n')
			}

			return []string{dump.String(), tokens.String(), res.ScopeManager.GlobalScope.String()}
		},
	}
	corpus.Run(t)
}
