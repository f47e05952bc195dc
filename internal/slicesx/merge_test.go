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

package slicesx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/svelteast/internal/slicesx"
)

type item struct {
	key  int
	name string
}

func TestMergeKey(t *testing.T) {
	t.Parallel()

	key := func(i *item) int { return i.key }
	names := func(items []item) []string {
		var out []string
		for _, i := range items {
			out = append(out, i.name)
		}
		return out
	}

	assert.Nil(t, slicesx.MergeKey(nil, key))
	assert.Equal(t, []string{"a", "b"}, names(slicesx.MergeKey([][]item{{{1, "a"}, {2, "b"}}}, key)))

	merged := slicesx.MergeKey([][]item{
		{{1, "a1"}, {5, "a5"}, {9, "a9"}},
		{},
		{{2, "c2"}, {5, "c5"}, {5, "c5'"}},
		{{0, "d0"}},
	}, key)
	assert.Equal(t, []string{"d0", "a1", "c2", "a5", "c5", "c5'", "a9"}, names(merged))
}
