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
	"strings"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/internal/compat"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/token"
)

// convertAttributes converts the attributes and directives of a start tag.
func convertAttributes(attrs []svast.Node, ctx *Context) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(attrs))
	for _, attr := range attrs {
		node, err := convertAttribute(attr, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func convertAttribute(attr svast.Node, ctx *Context) (ast.Node, error) {
	typ := attr.Type()
	switch {
	case typ == "Attribute":
		parts, boolean := compat.AttributeValue(attr)
		if compat.IsShorthand(attr, parts) {
			return convertShorthand(attr, parts[0], ctx), nil
		}
		key := attributeKey(attr, ctx)
		value, err := convertAttributeValue(parts, ctx)
		if err != nil {
			return nil, err
		}
		return ast.Adopt(&ast.Attribute{
			NodeBase: ast.Base(ctx.ExtentOf(attr)),
			Key:      key,
			Boolean:  boolean,
			Value:    value,
		}), nil

	case compat.IsSpread(typ):
		ctx.mustacheTokens(attr.Start(), attr.End(), "...")
		return ast.Adopt(&ast.SpreadAttribute{
			NodeBase: ast.Base(ctx.ExtentOf(attr)),
			Argument: convertExpression(attr.Get("expression"), ctx),
		}), nil

	case compat.IsStyleDirective(typ):
		parts, boolean := compat.AttributeValue(attr)
		key := directiveKey(attr, ctx)
		value, err := convertAttributeValue(parts, ctx)
		if err != nil {
			return nil, err
		}
		return ast.Adopt(&ast.StyleDirective{
			NodeBase:  ast.Base(ctx.ExtentOf(attr)),
			Key:       key,
			Shorthand: boolean,
			Value:     value,
		}), nil

	case compat.DirectiveKind(typ) != "":
		key := directiveKey(attr, ctx)
		return ast.Adopt(&ast.Directive{
			NodeBase:   ast.Base(ctx.ExtentOf(attr)),
			Kind:       ast.DirectiveKind(compat.DirectiveKind(typ)),
			Key:        key,
			Expression: convertExpression(attr.Get("expression"), ctx),
			Intro:      attr.Bool("intro"),
			Outro:      attr.Bool("outro"),
		}), nil
	}
	return nil, ctx.Errorf(attr.Start(), attr.End(), "unknown attribute node type %q", typ)
}

// convertShorthand converts {name}. The key and the value are separate
// nodes for the same identifier.
func convertShorthand(attr, part svast.Node, ctx *Context) ast.Node {
	ctx.mustacheTokens(attr.Start(), attr.End(), "")
	expr := part.Get("expression")
	return ast.Adopt(&ast.ShorthandAttribute{
		NodeBase: ast.Base(ctx.ExtentOf(attr)),
		Key:      convertExpression(expr, ctx),
		Value:    convertExpression(expr, ctx),
	})
}

func attributeKey(attr svast.Node, ctx *Context) *ast.Name {
	name := attr.Str("name")
	start := attr.Start()
	end := min(start+len(name), attr.End())
	ctx.AddToken(token.HTMLIdentifier, start, end)
	return &ast.Name{NodeBase: ast.Base(ctx.Extent(start, end)), Name: name}
}

// directiveKey converts the prefix:name|modifiers part of a directive.
func directiveKey(attr svast.Node, ctx *Context) *ast.DirectiveKey {
	start := attr.Start()
	end := ctx.File.IndexFunc(start, func(c byte) bool {
		return c == '=' || c == '>' || isSpace(c)
	})
	if end < 0 || end > attr.End() {
		end = attr.End()
	}
	ctx.AddToken(token.HTMLIdentifier, start, end)

	text := ctx.Code()[start:end]
	name := attr.Str("name")
	nameStart := start
	if colon := strings.IndexByte(text, ':'); colon >= 0 {
		nameStart = start + colon + 1
	}
	nameEnd := min(nameStart+len(name), end)

	return ast.Adopt(&ast.DirectiveKey{
		NodeBase:  ast.Base(ctx.Extent(start, end)),
		Name:      &ast.Name{NodeBase: ast.Base(ctx.Extent(nameStart, nameEnd)), Name: name},
		Modifiers: compat.Modifiers(attr),
	})
}

// convertAttributeValue converts the text and mustache parts of a quoted or
// unquoted attribute value.
func convertAttributeValue(parts []svast.Node, ctx *Context) ([]ast.Node, error) {
	var out []ast.Node
	for _, part := range parts {
		switch {
		case part.Type() == "Text":
			ctx.AddToken(token.HTMLText, part.Start(), part.End())
			out = append(out, &ast.Literal{
				NodeBase: ast.Base(ctx.ExtentOf(part)),
				Value:    ctx.Code()[part.Start():part.End()],
			})
		case compat.MustacheKind(part.Type()) != "":
			out = append(out, convertMustache(part, ctx))
		default:
			return nil, ctx.Errorf(part.Start(), part.End(), "unknown attribute value node type %q", part.Type())
		}
	}
	return out, nil
}

// convertThis converts the this={...} of <svelte:element> or
// <svelte:component>, which the compiler keeps apart from the other
// attributes. It returns nil if the element has none, or if it cannot be
// found in the source, which is reported as a warning.
func convertThis(el svast.Node, ctx *Context) ast.Node {
	expr, tag, isString := compat.ThisExpression(el)
	if expr.IsZero() && !isString {
		return nil
	}

	file := ctx.File
	var keyStart, end int
	var value ast.Node
	if isString {
		keyStart = file.Index(el.Start(), "this")
		quote := file.IndexFunc(keyStart+4, func(c byte) bool { return c == '"' || c == '\'' })
		if keyStart < 0 || quote < 0 {
			ctx.Warnf(el.Start(), el.End(), "cannot locate this=%q in the source", tag)
			return nil
		}
		valueStart := quote + 1
		valueEnd := valueStart + len(tag)
		end = valueEnd + 1
		value = ast.NewESNode("Literal", ctx.Extent(valueStart, valueEnd),
			ast.ESField{Key: "raw", Value: ctx.Code()[quote:end]},
			ast.ESField{Key: "value", Value: tag},
		)
	} else {
		keyStart = file.LastIndex(expr.Start(), "this")
		closeBrace := file.Index(expr.End(), "}")
		if keyStart < 0 || closeBrace < 0 {
			ctx.Warnf(el.Start(), el.End(), "cannot locate this={...} in the source")
			return nil
		}
		end = closeBrace + 1
		if end < file.Len() && (ctx.Code()[end] == '"' || ctx.Code()[end] == '\'') {
			end++
		}
		value = convertESTree(expr, ctx)
	}

	ctx.AddToken(token.HTMLIdentifier, keyStart, keyStart+4)
	return ast.Adopt(&ast.SpecialDirective{
		NodeBase:   ast.Base(ctx.Extent(keyStart, end)),
		Kind:       "this",
		Key:        &ast.SpecialDirectiveKey{NodeBase: ast.Base(ctx.Extent(keyStart, keyStart+4))},
		Expression: value,
	})
}

// insertByStart inserts n into nodes, which are ordered by start offset,
// after every node starting at or before it.
func insertByStart(nodes []ast.Node, n ast.Node) []ast.Node {
	idx := len(nodes)
	for i, node := range nodes {
		if node.Range().Start() > n.Range().Start() {
			idx = i
			break
		}
	}
	return slices.Insert(nodes, idx, n)
}
