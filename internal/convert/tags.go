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
	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/token"
)

// elementStage is an element whose tags are still being located.
//
// The element's own extent and its attributes are known up front; the name,
// the end of the start tag and the end tag are filled in by
// [extractElementTags]. Nodes are only created once every field is known.
type elementStage struct {
	start, end int
	attrs      []ast.Node

	name        ast.Node
	startTagEnd int
	selfClosing bool

	hasEndTag              bool
	endTagStart, endTagEnd int
}

func newStage(start, end int, attrs []ast.Node) *elementStage {
	return &elementStage{start: start, end: end, attrs: attrs}
}

func (s *elementStage) startTag(ctx *Context) *ast.StartTag {
	return ast.Adopt(&ast.StartTag{
		NodeBase:    ast.Base(ctx.Extent(s.start, s.startTagEnd)),
		Attributes:  s.attrs,
		SelfClosing: s.selfClosing,
	})
}

func (s *elementStage) endTag(ctx *Context) *ast.EndTag {
	if !s.hasEndTag {
		return nil
	}
	return &ast.EndTag{NodeBase: ast.Base(ctx.Extent(s.endTagStart, s.endTagEnd))}
}

// nameBuilder creates the name node of an element from the range of its
// name in the start tag.
type nameBuilder func(start, end int) ast.Node

// extractElementTags locates the name, start tag and end tag of an element
// from the source text.
//
// The start tag ends at the first > after the last attribute, or after the
// name when there are none. An element whose range does not end in > has no
// end tag (it was closed implicitly), one ending in /> is self-closing, and
// one whose last < lies within its start tag is a void element.
func extractElementTags(stage *elementStage, ctx *Context, buildName nameBuilder) error {
	file := ctx.File
	nameEnd := file.IndexFunc(stage.start+1, func(c byte) bool {
		return c == '/' || c == '>' || isSpace(c)
	})
	if nameEnd < 0 {
		return ctx.Errorf(stage.start, stage.end, "unterminated start tag")
	}
	stage.name = buildName(stage.start+1, nameEnd)

	attrsEnd := nameEnd
	if n := len(stage.attrs); n > 0 {
		attrsEnd = stage.attrs[n-1].Range().End()
	}
	gt := file.Index(attrsEnd, ">")
	if gt < 0 {
		return ctx.Errorf(stage.start, stage.end, "unterminated start tag")
	}
	stage.startTagEnd = gt + 1

	code := ctx.Code()
	if stage.end < 1 || code[stage.end-1] != '>' {
		// No end tag.
		return nil
	}
	if stage.end >= 2 && code[stage.end-2] == '/' {
		stage.selfClosing = true
		return nil
	}

	endTagOpen := file.LastIndex(stage.end-1, "<")
	if endTagOpen <= stage.startTagEnd-1 {
		// Void element.
		return nil
	}
	endNameStart := endTagOpen + 2
	endNameEnd := file.IndexFunc(endNameStart, func(c byte) bool {
		return c == '>' || isSpace(c)
	})
	if endNameEnd < 0 {
		return ctx.Errorf(endTagOpen, stage.end, "unterminated end tag")
	}
	endTagClose := file.Index(endNameEnd, ">")
	if endTagClose < 0 {
		return ctx.Errorf(endTagOpen, stage.end, "unterminated end tag")
	}

	stage.hasEndTag = true
	stage.endTagStart, stage.endTagEnd = endTagOpen, endTagClose+1
	ctx.AddToken(token.HTMLIdentifier, endNameStart, endNameEnd)
	return nil
}

// nameToken returns a [nameBuilder] for elements whose name is a literal
// such as "script": it records an identifier token over the name and returns
// a [*ast.Name] with the given value.
func nameToken(ctx *Context, name string) nameBuilder {
	return func(start, end int) ast.Node {
		ctx.AddToken(token.HTMLIdentifier, start, end)
		return &ast.Name{NodeBase: ast.Base(ctx.Extent(start, end)), Name: name}
	}
}
