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
	"strings"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/internal/compat"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/token"
)

// convertChildren converts a list of markup nodes.
func convertChildren(nodes []svast.Node, ctx *Context) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsZero() {
			continue
		}
		node, err := convertChild(n, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func convertChild(n svast.Node, ctx *Context) (ast.Node, error) {
	typ := n.Type()
	if kind := compat.ClassifyElement(typ, n.Str("name")); kind != compat.NotElement {
		return convertElement(n, kind, ctx)
	}
	if compat.MustacheKind(typ) != "" {
		return convertMustache(n, ctx), nil
	}

	switch typ {
	case "Text":
		ctx.AddToken(token.HTMLText, n.Start(), n.End())
		return &ast.Text{
			NodeBase: ast.Base(ctx.ExtentOf(n)),
			Value:    ctx.Code()[n.Start():n.End()],
		}, nil

	case "Comment":
		ctx.AddToken(token.HTMLComment, n.Start(), n.End())
		return &ast.HTMLComment{
			NodeBase: ast.Base(ctx.ExtentOf(n)),
			Value:    n.Str("data"),
		}, nil

	case "DebugTag":
		ctx.mustacheTokens(n.Start(), n.End(), "@debug")
		var ids []ast.Node
		for _, id := range n.List("identifiers") {
			ids = append(ids, convertESTree(id, ctx))
		}
		return ast.Adopt(&ast.DebugTag{NodeBase: ast.Base(ctx.ExtentOf(n)), Identifiers: ids}), nil

	case "ConstTag":
		ctx.mustacheTokens(n.Start(), n.End(), "@const")
		return ast.Adopt(&ast.ConstTag{
			NodeBase:    ast.Base(ctx.ExtentOf(n)),
			Declaration: convertExpression(compat.ConstDeclaration(n), ctx),
		}), nil

	case "RenderTag":
		ctx.mustacheTokens(n.Start(), n.End(), "@render")
		callee, arg := compat.RenderCall(n)
		return ast.Adopt(&ast.RenderTag{
			NodeBase: ast.Base(ctx.ExtentOf(n)),
			Callee:   convertExpression(callee, ctx),
			Argument: convertExpression(arg, ctx),
		}), nil

	case "IfBlock":
		return convertIf(n, ctx)
	case "EachBlock":
		return convertEach(n, ctx)
	case "AwaitBlock":
		return convertAwait(n, ctx)
	case "KeyBlock":
		return convertKey(n, ctx)
	case "SnippetBlock":
		return convertSnippet(n, ctx)
	}
	return nil, ctx.Errorf(n.Start(), n.End(), "unknown markup node type %q", typ)
}

func convertElement(n svast.Node, kind compat.ElementKind, ctx *Context) (*ast.Element, error) {
	attrs, err := convertAttributes(compat.Attributes(n), ctx)
	if err != nil {
		return nil, err
	}
	if kind == compat.SpecialElement {
		if this := convertThis(n, ctx); this != nil {
			attrs = insertByStart(attrs, this)
		}
	}

	stage := newStage(n.Start(), n.End(), attrs)
	var elementKind ast.ElementKind
	var buildName nameBuilder
	switch kind {
	case compat.ComponentElement:
		elementKind = ast.ComponentElement
		buildName = componentName(ctx)
	case compat.SpecialElement:
		elementKind = ast.SpecialElement
		buildName = nameToken(ctx, n.Str("name"))
	default:
		elementKind = ast.HTMLElement
		buildName = nameToken(ctx, n.Str("name"))
	}
	if err := extractElementTags(stage, ctx, buildName); err != nil {
		return nil, err
	}

	children, err := convertChildren(compat.Children(n), ctx)
	if err != nil {
		return nil, err
	}
	return ast.Adopt(&ast.Element{
		NodeBase: ast.Base(ctx.ExtentOf(n)),
		Kind:     elementKind,
		Name:     stage.name,
		StartTag: stage.startTag(ctx),
		Children: children,
		EndTag:   stage.endTag(ctx),
	}), nil
}

// componentName builds the name of a component: an Identifier, or for a
// dotted name like <a.b.c> a chain of [*ast.MemberExpressionName].
func componentName(ctx *Context) nameBuilder {
	return func(start, end int) ast.Node {
		text := ctx.Code()[start:end]
		parts := strings.Split(text, ".")

		partEnd := start + len(parts[0])
		ctx.AddToken(token.HTMLIdentifier, start, partEnd)
		var name ast.Node = ast.NewIdentifier(ctx.Extent(start, partEnd), parts[0])
		for _, part := range parts[1:] {
			dot := partEnd
			ctx.AddToken(token.Punctuator, dot, dot+1)
			partEnd = dot + 1 + len(part)
			ctx.AddToken(token.HTMLIdentifier, dot+1, partEnd)
			name = ast.Adopt(&ast.MemberExpressionName{
				NodeBase: ast.Base(ctx.Extent(start, partEnd)),
				Object:   name,
				Property: &ast.Name{NodeBase: ast.Base(ctx.Extent(dot+1, partEnd)), Name: part},
			})
		}
		return name
	}
}

// convertMustache converts {expression} or {@html expression}.
func convertMustache(n svast.Node, ctx *Context) *ast.MustacheTag {
	kind := ast.MustacheText
	keyword := ""
	if compat.MustacheKind(n.Type()) == "raw" {
		kind = ast.MustacheRaw
		keyword = "@html"
	}
	ctx.mustacheTokens(n.Start(), n.End(), keyword)
	return ast.Adopt(&ast.MustacheTag{
		NodeBase:   ast.Base(ctx.ExtentOf(n)),
		Kind:       kind,
		Expression: convertExpression(n.Get("expression"), ctx),
	})
}

// mustacheTokens records the braces of a mustache tag spanning [start, end),
// and the keyword right after its opening brace, if the source has it there.
func (c *Context) mustacheTokens(start, end int, keyword string) {
	code := c.Code()
	end = min(end, len(code))
	if start >= end || code[start] != '{' {
		return
	}
	c.AddToken(token.Punctuator, start, start+1)
	if keyword != "" && strings.HasPrefix(code[start+1:end], keyword) {
		kind := token.MustacheKeyword
		if keyword == "..." {
			kind = token.Punctuator
		}
		c.AddToken(kind, start+1, start+1+len(keyword))
	}
	if end-1 > start && code[end-1] == '}' {
		c.AddToken(token.Punctuator, end-1, end)
	}
}
