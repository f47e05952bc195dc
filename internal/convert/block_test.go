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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/svelteast/ast"
)

func TestConvertIfElse(t *testing.T) {
	t.Parallel()

	program, _ := convertRoot(t, "{#if a}x{:else}y{/if}", `
html:
  type: Fragment
  start: 0
  end: 21
  children:
    - type: IfBlock
      start: 0
      end: 21
      expression: {type: Identifier, name: a, start: 5, end: 6}
      children: [{type: Text, start: 7, end: 8, data: x}]
      else:
        type: ElseBlock
        start: 15
        end: 16
        children: [{type: Text, start: 15, end: 16, data: y}]
`)

	require.Len(t, program.Body, 1)
	block, ok := program.Body[0].(*ast.IfBlock)
	require.True(t, ok)
	assert.False(t, block.ElseIf)
	assert.Equal(t, ast.Range{5, 6}, block.Expression.Range())
	require.Len(t, block.Children, 1)
	assert.Equal(t, "x", block.Children[0].(*ast.Text).Value) //nolint:errcheck

	require.NotNil(t, block.Else)
	assert.False(t, block.Else.ElseIf)
	assert.Equal(t, ast.Range{8, 16}, block.Else.Range())
	require.Len(t, block.Else.Children, 1)
	assert.Same(t, block.Else, block.Else.Children[0].Parent())

	want := []string{
		`Punctuator[0:1]"{"`,
		`MustacheKeyword[1:4]"#if"`,
		`HTMLText[7:8]"x"`,
		`Punctuator[8:9]"{"`,
		`MustacheKeyword[9:14]":else"`,
		`HTMLText[15:16]"y"`,
		`Punctuator[16:17]"{"`,
		`MustacheKeyword[17:20]"/if"`,
		`Punctuator[20:21]"}"`,
	}
	if diff := cmp.Diff(want, tokens(program)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertEach(t *testing.T) {
	t.Parallel()

	program, _ := convertRoot(t, "{#each xs as x, i}{x}{/each}", `
html:
  type: Fragment
  start: 0
  end: 28
  children:
    - type: EachBlock
      start: 0
      end: 28
      expression: {type: Identifier, name: xs, start: 7, end: 9}
      context: {type: Identifier, name: x, start: 13, end: 14}
      index: i
      children:
        - type: MustacheTag
          start: 18
          end: 21
          expression: {type: Identifier, name: x, start: 19, end: 20}
`)

	require.Len(t, program.Body, 1)
	block, ok := program.Body[0].(*ast.EachBlock)
	require.True(t, ok)
	assert.Equal(t, ast.Range{7, 9}, block.Expression.Range())
	assert.Equal(t, ast.Range{13, 14}, block.Context.Range())
	require.NotNil(t, block.Index)
	assert.Equal(t, ast.Range{16, 17}, block.Index.Range())
	name, _ := block.Index.(*ast.ESNode).GetString("name") //nolint:errcheck
	assert.Equal(t, "i", name)
	assert.Nil(t, block.Key)
	assert.Nil(t, block.Else)
	require.Len(t, block.Children, 1)
}

func TestConvertAwaitThen(t *testing.T) {
	t.Parallel()

	program, _ := convertRoot(t, "{#await p then v}{v}{/await}", `
html:
  type: Fragment
  start: 0
  end: 28
  children:
    - type: AwaitBlock
      start: 0
      end: 28
      expression: {type: Identifier, name: p, start: 8, end: 9}
      value: {type: Identifier, name: v, start: 15, end: 16}
      error: null
      pending: {type: PendingBlock, start: null, end: null, skip: true, children: []}
      then:
        type: ThenBlock
        start: 17
        end: 20
        skip: false
        children:
          - type: MustacheTag
            start: 17
            end: 20
            expression: {type: Identifier, name: v, start: 18, end: 19}
      catch: {type: CatchBlock, start: null, end: null, skip: true, children: []}
`)

	require.Len(t, program.Body, 1)
	block, ok := program.Body[0].(*ast.AwaitBlock)
	require.True(t, ok)
	assert.Equal(t, ast.AwaitThen, block.Kind)
	assert.Nil(t, block.Pending)
	assert.Nil(t, block.Catch)
	require.NotNil(t, block.Then)
	assert.Equal(t, ast.AwaitThen, block.Then.Kind)
	assert.Equal(t, ast.Range{10, 20}, block.Then.Range())
	assert.Equal(t, ast.Range{15, 16}, block.Then.Value.Range())
	require.Len(t, block.Then.Children, 1)
}
