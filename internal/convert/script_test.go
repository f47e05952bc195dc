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

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/internal/convert"
	"github.com/bufbuild/svelteast/source"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/walk"
)

func TestConvertScripts(t *testing.T) {
	t.Parallel()

	text := "<script>$: a; // hi\n</script>"
	root, err := svast.Decode([]byte(`
html: {type: Fragment, start: 29, end: 29, children: []}
instance:
  type: Script
  start: 0
  end: 29
  context: default
  content:
    type: Program
    start: 8
    end: 20
    body:
      - type: LabeledStatement
        start: 8
        end: 13
        label: {type: Identifier, name: "$", start: 8, end: 9}
        body:
          type: ExpressionStatement
          start: 11
          end: 13
          expression: {type: Identifier, name: a, start: 11, end: 12}
          trailingComments: [{type: Line, value: " hi", start: 14, end: 19}]
`))
	require.NoError(t, err)

	ctx := convert.NewContext(source.NewFile("App.svelte", text), nil, nil)
	program, err := convert.ConvertRoot(root, ctx)
	require.NoError(t, err)
	scripts, err := convert.ConvertScripts(root, program, ctx)
	require.NoError(t, err)

	require.Len(t, scripts, 1)
	script := scripts[0]
	assert.Same(t, program.Body[0], script.Element)
	assert.Empty(t, script.Element.Body)

	require.Len(t, script.Body, 1)
	reactive, ok := script.Body[0].(*ast.ReactiveStatement)
	require.True(t, ok)
	assert.Equal(t, ast.Range{8, 13}, reactive.Range())
	assert.Equal(t, "Identifier", reactive.Label.Type())
	assert.Equal(t, "ExpressionStatement", reactive.Body.Type())

	require.Len(t, ctx.Comments, 1)
	assert.Equal(t, ast.LineComment, ctx.Comments[0].Kind)
	assert.Equal(t, " hi", ctx.Comments[0].Value)
	assert.Equal(t, ast.Range{14, 19}, ctx.Comments[0].Range)

	convert.Attach(scripts)
	assert.Equal(t, script.Body, script.Element.Body)
	assert.Same(t, script.Element, reactive.Parent())
	require.NoError(t, walk.Verify(program, nil, true))
}

func TestConvertScriptsModuleLabels(t *testing.T) {
	t.Parallel()

	// Only the instance script has reactive statements.
	text := `<script context="module">$: a;</script>`
	root, err := svast.Decode([]byte(`
html: {type: Fragment, start: 39, end: 39, children: []}
module:
  type: Script
  start: 0
  end: 39
  context: module
  content:
    type: Program
    start: 25
    end: 30
    body:
      - type: LabeledStatement
        start: 25
        end: 30
        label: {type: Identifier, name: "$", start: 25, end: 26}
        body: {type: ExpressionStatement, start: 28, end: 30, expression: {type: Identifier, name: a, start: 28, end: 29}}
`))
	require.NoError(t, err)

	ctx := convert.NewContext(source.NewFile("App.svelte", text), nil, nil)
	program, err := convert.ConvertRoot(root, ctx)
	require.NoError(t, err)
	scripts, err := convert.ConvertScripts(root, program, ctx)
	require.NoError(t, err)

	require.Len(t, scripts, 1)
	assert.Equal(t, ast.Module, scripts[0].Element.Variant)
	require.Len(t, scripts[0].Body, 1)
	assert.Equal(t, "LabeledStatement", scripts[0].Body[0].Type())
}
