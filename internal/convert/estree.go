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

package convert

import (
	"slices"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/visitorkeys"
)

// esSkipKeys are fields of foreign code nodes that are not carried over:
// positions are recomputed, comments are collected separately.
var esSkipKeys = map[string]bool{
	"type":             true,
	"start":            true,
	"end":              true,
	"loc":              true,
	"range":            true,
	"leadingComments":  true,
	"trailingComments": true,
	"metadata":         true,
	"parent":           true,
}

// convertExpression converts an optional code node. A zero node converts to
// a nil [ast.Node].
func convertExpression(n svast.Node, ctx *Context) ast.Node {
	if n.IsZero() {
		return nil
	}
	return convertESTree(n, ctx)
}

// convertESTree converts a foreign code node into an [*ast.ESNode],
// recursively.
//
// Fields listed in the visitor keys for the node's type come first, in
// registry order; the rest follow sorted by name.
func convertESTree(n svast.Node, ctx *Context) *ast.ESNode {
	ctx.collectComments(n)

	typ := n.Type()
	keys, _ := visitorkeys.KEYS.Of(typ)
	rest := n.Keys()

	var fields []ast.ESField
	seen := make(map[string]bool, len(rest))
	for _, key := range append(slices.Clone(keys), rest...) {
		if seen[key] || esSkipKeys[key] || !n.Has(key) {
			continue
		}
		seen[key] = true
		fields = append(fields, ast.ESField{Key: key, Value: convertESValue(n, key, ctx)})
	}
	return ast.NewESNode(typ, ctx.ExtentOf(n), fields...)
}

func convertESValue(n svast.Node, key string, ctx *Context) any {
	switch {
	case n.IsNode(key):
		child := n.Get(key)
		if child.Type() == "" {
			// Plain data, such as a regex literal's pattern and flags.
			return n.Raw(key)
		}
		return convertESTree(child, ctx)

	case n.IsList(key):
		if !isNodeList(n.Raw(key)) {
			return n.Raw(key)
		}
		list := n.List(key)
		nodes := make([]ast.Node, len(list))
		for i, child := range list {
			if !child.IsZero() {
				nodes[i] = convertESTree(child, ctx)
			}
		}
		return nodes
	}
	return n.Raw(key)
}

// isNodeList returns whether a decoded list holds nodes, as opposed to plain
// data. Holes do not count either way; an empty list is a node list.
func isNodeList(v any) bool {
	list, _ := v.([]any)
	for _, elem := range list {
		if elem == nil {
			continue
		}
		m, ok := elem.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := m["type"].(string); !ok {
			return false
		}
	}
	return true
}

// collectComments records the comments the code parser attached to n.
func (c *Context) collectComments(n svast.Node) {
	for _, key := range [...]string{"leadingComments", "trailingComments", "comments"} {
		for _, comment := range n.List(key) {
			kind := ast.BlockComment
			if comment.Type() == "Line" {
				kind = ast.LineComment
			}
			c.AddComment(kind, comment.Str("value"), comment.Start(), comment.End())
		}
	}
}
