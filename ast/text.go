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

package ast

// Text is a run of raw text.
type Text struct {
	NodeBase
	Value string `json:"value"`
}

// Type implements [Node].
func (*Text) Type() string { return "SvelteText" }

// Literal is the literal part of an attribute value.
type Literal struct {
	NodeBase
	Value string `json:"value"`
}

// Type implements [Node].
func (*Literal) Type() string { return "SvelteLiteral" }

// HTMLComment is an HTML comment. Value excludes the delimiters.
type HTMLComment struct {
	NodeBase
	Value string `json:"value"`
}

// Type implements [Node].
func (*HTMLComment) Type() string { return "SvelteHTMLComment" }

// MustacheKind distinguishes {expr} from {@html expr}.
type MustacheKind string

const (
	MustacheText MustacheKind = "text"
	MustacheRaw  MustacheKind = "raw"
)

// MustacheTag is an interpolated expression.
type MustacheTag struct {
	NodeBase
	Kind       MustacheKind `json:"kind"`
	Expression Node         `json:"expression"`
}

// Type implements [Node].
func (*MustacheTag) Type() string { return "SvelteMustacheTag" }

// DebugTag is {@debug a, b}.
type DebugTag struct {
	NodeBase
	Identifiers []Node `json:"identifiers"`
}

// Type implements [Node].
func (*DebugTag) Type() string { return "SvelteDebugTag" }

// ConstTag is {@const x = y}. Declaration is a VariableDeclaration [*ESNode].
type ConstTag struct {
	NodeBase
	Declaration Node `json:"declaration"`
}

// Type implements [Node].
func (*ConstTag) Type() string { return "SvelteConstTag" }

// RenderTag is {@render snippet(arg)}.
type RenderTag struct {
	NodeBase
	Callee   Node `json:"callee"`
	Argument Node `json:"argument"`
}

// Type implements [Node].
func (*RenderTag) Type() string { return "SvelteRenderTag" }
