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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/svelteast/ast"
)

func at(start, end int) ast.Extent {
	return ast.Extent{
		Range: ast.Range{start, end},
		Loc: ast.SourceLocation{
			Start: ast.Position{Line: 1, Column: start},
			End:   ast.Position{Line: 1, Column: end},
		},
	}
}

func TestAdopt(t *testing.T) {
	t.Parallel()

	name := &ast.Name{NodeBase: ast.Base(at(1, 4)), Name: "div"}
	start := ast.Adopt(&ast.StartTag{NodeBase: ast.Base(at(0, 5))})
	x := ast.NewIdentifier(at(6, 7), "x")
	mustache := ast.Adopt(&ast.MustacheTag{
		NodeBase:   ast.Base(at(5, 8)),
		Kind:       ast.MustacheText,
		Expression: x,
	})
	elem := ast.Adopt(&ast.Element{
		NodeBase: ast.Base(at(0, 14)),
		Kind:     ast.HTMLElement,
		Name:     name,
		StartTag: start,
		Children: []ast.Node{mustache},
	})

	assert.Same(t, elem, name.Parent())
	assert.Same(t, elem, start.Parent())
	assert.Same(t, elem, mustache.Parent())
	assert.Same(t, mustache, x.Parent())
	assert.Nil(t, elem.Parent())
	assert.Equal(t, "div", elem.TagName())
	assert.Equal(t, ast.Range{0, 14}, elem.Range())
	assert.Equal(t, 14, elem.Range().Len())
}

func TestField(t *testing.T) {
	t.Parallel()

	style := ast.Adopt(&ast.StyleElement{
		NodeBase: ast.Base(at(0, 20)),
		Children: []*ast.Text{{NodeBase: ast.Base(at(7, 12)), Value: ".a{}"}},
	})

	v, ok := ast.Field(style, "children")
	require.True(t, ok)
	children, ok := v.([]ast.Node)
	require.True(t, ok)
	require.Len(t, children, 1)
	assert.Equal(t, "SvelteText", children[0].Type())
	assert.Same(t, style, children[0].Parent())

	v, ok = ast.Field(style, "endTag")
	assert.True(t, ok)
	assert.Nil(t, v, "a nil child is an untyped nil")

	_, ok = ast.Field(style, "nope")
	assert.False(t, ok)

	v, ok = ast.Field(&ast.StartTag{SelfClosing: true}, "selfClosing")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	assert.Equal(t, []string{"name", "startTag", "children", "endTag"}, ast.ChildKeys(style))
}

func TestESNode(t *testing.T) {
	t.Parallel()

	left := ast.NewIdentifier(at(0, 1), "a")
	right := ast.NewESNode("Literal", at(4, 5), ast.ESField{Key: "value", Value: 1.0}, ast.ESField{Key: "raw", Value: "1"})
	assign := ast.NewESNode("AssignmentExpression", at(0, 5),
		ast.ESField{Key: "operator", Value: "="},
		ast.ESField{Key: "left", Value: left},
		ast.ESField{Key: "right", Value: right},
	)

	assert.Equal(t, "AssignmentExpression", assign.Type())
	assert.Equal(t, []string{"left", "right"}, ast.ChildKeys(assign))
	assert.Same(t, assign, left.Parent())
	assert.Same(t, right, assign.GetNode("right"))
	op, ok := assign.GetString("operator")
	assert.True(t, ok)
	assert.Equal(t, "=", op)

	clone := left.Clone()
	assert.NotSame(t, left, clone)
	assert.Nil(t, clone.Parent())
	name, _ := clone.GetString("name")
	assert.Equal(t, "a", name)
}

func TestSortBody(t *testing.T) {
	t.Parallel()

	div := &ast.Element{NodeBase: ast.Base(at(25, 39))}
	script := &ast.ScriptElement{NodeBase: ast.Base(at(0, 25))}
	module := &ast.ScriptElement{NodeBase: ast.Base(at(40, 60))}
	prog := &ast.Program{Body: []ast.Node{div, script, module}}
	prog.SortBody()
	assert.Equal(t, []ast.Node{script, div, module}, prog.Body)
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var end *ast.EndTag
	assert.True(t, ast.IsNil(nil))
	assert.True(t, ast.IsNil(end))
	assert.False(t, ast.IsNil(&ast.EndTag{}))
}
