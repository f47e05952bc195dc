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

package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/svelteast/internal/compat"
	"github.com/bufbuild/svelteast/svast"
)

func decode(t *testing.T, text string) *svast.Root {
	t.Helper()
	root, err := svast.Decode([]byte(text))
	require.NoError(t, err)
	return root
}

func types(nodes []svast.Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Type())
	}
	return out
}

func TestRootAccessors(t *testing.T) {
	t.Parallel()

	legacy := decode(t, `
html: {type: Fragment, start: 0, end: 10, children: [{type: Text, start: 0, end: 10}]}
instance: {type: Script, start: 10, end: 30, context: default}
module: null
css: {type: Style, start: 30, end: 50}
`)
	assert.Equal(t, []string{"Text"}, types(compat.Children(compat.Fragment(legacy))))
	assert.Equal(t, "Script", compat.Instance(legacy).Type())
	assert.True(t, compat.Module(legacy).IsZero())
	assert.Equal(t, 30, compat.Style(legacy).Start())
	assert.True(t, compat.Options(legacy).IsZero())

	modern := decode(t, `
type: Root
fragment: {type: Fragment, nodes: [{type: RegularElement, name: p, fragment: {type: Fragment, nodes: [{type: Text}]}}]}
options: null
`)
	nodes := compat.Children(compat.Fragment(modern))
	assert.Equal(t, []string{"RegularElement"}, types(nodes))
	assert.Equal(t, []string{"Text"}, types(compat.Children(nodes[0])))
	assert.True(t, compat.Options(modern).IsZero())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	raw := decode(t, `
type: Root
fragment: {type: Fragment, nodes: []}
options:
  start: 0
  end: 33
  __raw__: {type: SvelteOptions, name: "svelte:options", start: 0, end: 33, attributes: []}
`)
	assert.Equal(t, "svelte:options", compat.Options(raw).Str("name"))
	assert.Equal(t, 33, compat.Options(raw).End())

	synthesized := decode(t, `
type: Root
fragment: {type: Fragment, nodes: []}
options:
  start: 4
  end: 37
  runes: true
  attributes: [{type: Attribute, name: runes, start: 20, end: 25, value: true}]
`)
	opts := compat.Options(synthesized)
	assert.Equal(t, "SvelteOptions", opts.Type())
	assert.Equal(t, "svelte:options", opts.Str("name"))
	assert.Equal(t, 4, opts.Start())
	assert.Equal(t, 37, opts.End())
	assert.Equal(t, []string{"Attribute"}, types(compat.Attributes(opts)))
	assert.Empty(t, compat.Children(opts))
}

func TestClassifyElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ, name string
		want      compat.ElementKind
	}{
		{"Element", "div", compat.HTMLElement},
		{"Element", "svelte:element", compat.SpecialElement},
		{"InlineComponent", "Foo", compat.ComponentElement},
		{"InlineComponent", "svelte:self", compat.SpecialElement},
		{"Options", "svelte:options", compat.SpecialElement},
		{"Slot", "slot", compat.HTMLElement},
		{"RegularElement", "div", compat.HTMLElement},
		{"Component", "a.b", compat.ComponentElement},
		{"SvelteHead", "svelte:head", compat.SpecialElement},
		{"TitleElement", "title", compat.HTMLElement},
		{"Text", "", compat.NotElement},
		{"IfBlock", "", compat.NotElement},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, compat.ClassifyElement(test.typ, test.name), "%s %s", test.typ, test.name)
	}
}

func TestBlocks(t *testing.T) {
	t.Parallel()

	legacyIf := svast.Wrap(map[string]any{
		"type":       "IfBlock",
		"expression": map[string]any{"type": "Identifier", "name": "a"},
		"children":   []any{map[string]any{"type": "Text"}},
		"else":       map[string]any{"type": "ElseBlock", "children": []any{}},
	})
	modernIf := svast.Wrap(map[string]any{
		"type":       "IfBlock",
		"test":       map[string]any{"type": "Identifier", "name": "a"},
		"consequent": map[string]any{"type": "Fragment", "nodes": []any{map[string]any{"type": "Text"}}},
		"alternate":  nil,
	})
	for _, n := range []svast.Node{legacyIf, modernIf} {
		assert.Equal(t, "a", compat.IfTest(n).Str("name"))
		assert.Equal(t, []string{"Text"}, types(compat.IfConsequent(n)))
	}
	assert.Equal(t, "ElseBlock", compat.IfAlternate(legacyIf).Type())
	assert.True(t, compat.IfAlternate(modernIf).IsZero())

	legacyAwait := svast.Wrap(map[string]any{
		"type":    "AwaitBlock",
		"pending": map[string]any{"type": "PendingBlock", "skip": true, "children": []any{}},
		"then":    map[string]any{"type": "ThenBlock", "skip": false, "children": []any{}},
		"catch":   map[string]any{"type": "CatchBlock", "skip": true, "children": []any{}},
	})
	assert.True(t, compat.AwaitPending(legacyAwait).IsZero())
	assert.Equal(t, "ThenBlock", compat.AwaitThen(legacyAwait).Type())
	assert.True(t, compat.AwaitCatch(legacyAwait).IsZero())

	snippet := svast.Wrap(map[string]any{
		"type":       "SnippetBlock",
		"expression": map[string]any{"type": "Identifier", "name": "row"},
		"parameters": []any{map[string]any{"type": "Identifier", "name": "item"}},
		"body":       map[string]any{"type": "Fragment", "nodes": []any{map[string]any{"type": "Text"}}},
	})
	assert.Equal(t, "item", compat.SnippetContext(snippet).Str("name"))
	assert.Equal(t, []string{"Text"}, types(compat.SnippetBody(snippet)))
}

func TestConstDeclaration(t *testing.T) {
	t.Parallel()

	legacy := svast.Wrap(map[string]any{
		"type": "ConstTag",
		"expression": map[string]any{
			"type": "AssignmentExpression", "start": 8, "end": 13,
			"left":  map[string]any{"type": "Identifier", "name": "a", "start": 8, "end": 9},
			"right": map[string]any{"type": "Literal", "value": 1, "start": 12, "end": 13},
		},
	})
	decl := compat.ConstDeclaration(legacy)
	assert.Equal(t, "VariableDeclaration", decl.Type())
	assert.Equal(t, "const", decl.Str("kind"))
	assert.Equal(t, 8, decl.Start())
	declarators := decl.List("declarations")
	require.Len(t, declarators, 1)
	assert.Equal(t, "a", declarators[0].Get("id").Str("name"))
	assert.Equal(t, "Literal", declarators[0].Get("init").Type())

	modern := svast.Wrap(map[string]any{
		"type":        "ConstTag",
		"declaration": map[string]any{"type": "VariableDeclaration", "kind": "const"},
	})
	assert.Equal(t, "VariableDeclaration", compat.ConstDeclaration(modern).Type())
}

func TestRenderCall(t *testing.T) {
	t.Parallel()

	tag := svast.Wrap(map[string]any{
		"type": "RenderTag",
		"expression": map[string]any{
			"type":      "CallExpression",
			"callee":    map[string]any{"type": "Identifier", "name": "row"},
			"arguments": []any{map[string]any{"type": "Identifier", "name": "item"}},
		},
	})
	callee, arg := compat.RenderCall(tag)
	assert.Equal(t, "row", callee.Str("name"))
	assert.Equal(t, "item", arg.Str("name"))
}

func TestAttributes(t *testing.T) {
	t.Parallel()

	boolean := svast.Wrap(map[string]any{"type": "Attribute", "name": "disabled", "value": true})
	parts, isBool := compat.AttributeValue(boolean)
	assert.True(t, isBool)
	assert.Empty(t, parts)

	single := svast.Wrap(map[string]any{
		"type": "Attribute", "name": "x", "start": 5, "end": 8,
		"value": map[string]any{"type": "ExpressionTag", "start": 5, "end": 8},
	})
	parts, isBool = compat.AttributeValue(single)
	assert.False(t, isBool)
	assert.Equal(t, []string{"ExpressionTag"}, types(parts))
	assert.True(t, compat.IsShorthand(single, parts))

	list := svast.Wrap(map[string]any{
		"type": "Attribute", "name": "class", "start": 5, "end": 20,
		"value": []any{
			map[string]any{"type": "Text", "start": 12, "end": 14},
			map[string]any{"type": "MustacheTag", "start": 14, "end": 19},
		},
	})
	parts, _ = compat.AttributeValue(list)
	assert.Equal(t, []string{"Text", "MustacheTag"}, types(parts))
	assert.False(t, compat.IsShorthand(list, parts))

	assert.Equal(t, "Binding", compat.DirectiveKind("BindDirective"))
	assert.Equal(t, "EventHandler", compat.DirectiveKind("EventHandler"))
	assert.Empty(t, compat.DirectiveKind("Attribute"))
	assert.True(t, compat.IsSpread("SpreadAttribute"))
	assert.Equal(t, "raw", compat.MustacheKind("HtmlTag"))

	directive := svast.Wrap(map[string]any{"modifiers": []any{"once", "preventDefault"}})
	assert.Equal(t, []string{"once", "preventDefault"}, compat.Modifiers(directive))
}
