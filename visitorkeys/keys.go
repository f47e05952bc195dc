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

// Package visitorkeys is the registry of which fields of each node type hold
// child nodes, and in which order a traversal visits them.
//
// The published registry, [KEYS], is the union of the Svelte node table with
// the base ESTree table, so that code nodes keep their standard traversal
// order and Svelte nodes add their own.
package visitorkeys

import (
	"maps"
	"slices"

	"github.com/bufbuild/svelteast/ast"
)

// Keys maps a node type to the ordered names of its child-bearing fields.
type Keys map[string][]string

// Of returns the keys for the given node type.
func (k Keys) Of(typ string) ([]string, bool) {
	keys, ok := k[typ]
	return keys, ok
}

// ForNode returns the keys for n's type. Types missing from the registry fall
// back to the fields of n that currently hold nodes.
func (k Keys) ForNode(n ast.Node) []string {
	if keys, ok := k[n.Type()]; ok {
		return keys
	}
	return ast.ChildKeys(n)
}

// Types returns every node type in the registry, sorted.
func (k Keys) Types() []string {
	return slices.Sorted(maps.Keys(k))
}

// UnionWith merges additional into a copy of base.
//
// For a type present in both, the additional keys come first, followed by
// any base keys they did not already list. Types only in one of them are
// copied as-is.
func UnionWith(base, additional Keys) Keys {
	out := make(Keys, len(base)+len(additional))
	for typ, keys := range base {
		out[typ] = slices.Clone(keys)
	}
	for typ, keys := range additional {
		merged := dedup(keys)
		for _, key := range out[typ] {
			if !slices.Contains(merged, key) {
				merged = append(merged, key)
			}
		}
		out[typ] = merged
	}
	return out
}

func dedup(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if !slices.Contains(out, key) {
			out = append(out, key)
		}
	}
	return out
}

// KEYS is the registry for trees produced by this module: [Svelte] merged
// over [ESTree].
var KEYS = UnionWith(ESTree, Svelte)

// Svelte lists every node type the converter produces besides ESTree nodes.
//
// Each entry must match the child-bearing fields of the corresponding type
// in package ast, in declaration order.
var Svelte = Keys{
	"Program":                    {"body"},
	"SvelteScriptElement":        {"name", "startTag", "body", "endTag"},
	"SvelteStyleElement":         {"name", "startTag", "children", "endTag"},
	"SvelteElement":              {"name", "startTag", "children", "endTag"},
	"SvelteStartTag":             {"attributes"},
	"SvelteEndTag":               {},
	"SvelteName":                 {},
	"SvelteMemberExpressionName": {"object", "property"},
	"SvelteLiteral":              {},
	"SvelteMustacheTag":          {"expression"},
	"SvelteDebugTag":             {"identifiers"},
	"SvelteConstTag":             {"declaration"},
	"SvelteRenderTag":            {"callee", "argument"},
	"SvelteIfBlock":              {"expression", "children", "else"},
	"SvelteElseBlock":            {"children"},
	"SvelteEachBlock":            {"expression", "context", "index", "key", "children", "else"},
	"SvelteAwaitBlock":           {"expression", "pending", "then", "catch"},
	"SvelteAwaitPendingBlock":    {"children"},
	"SvelteAwaitThenBlock":       {"value", "children"},
	"SvelteAwaitCatchBlock":      {"error", "children"},
	"SvelteKeyBlock":             {"expression", "children"},
	"SvelteSnippetBlock":         {"id", "context", "children"},
	"SvelteAttribute":            {"key", "value"},
	"SvelteShorthandAttribute":   {"key", "value"},
	"SvelteSpreadAttribute":      {"argument"},
	"SvelteDirective":            {"key", "expression"},
	"SvelteStyleDirective":       {"key", "value"},
	"SvelteSpecialDirective":     {"key", "expression"},
	"SvelteDirectiveKey":         {"name"},
	"SvelteSpecialDirectiveKey":  {},
	"SvelteText":                 {},
	"SvelteHTMLComment":          {},
	"SvelteReactiveStatement":    {"label", "body"},
}
