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

// ScriptVariant distinguishes the two kinds of code region.
type ScriptVariant string

const (
	// Instance is the component's instance script.
	Instance ScriptVariant = "instance"
	// Module is the script with context="module" (or the module attribute).
	Module ScriptVariant = "module"
)

// ScriptElement is a code region.
//
// Body is empty when the element is created by the converter; it is filled
// with the region's statements once code has been analyzed.
type ScriptElement struct {
	NodeBase
	Variant  ScriptVariant `json:"variant"`
	Name     *Name         `json:"name"`
	StartTag *StartTag     `json:"startTag"`
	Body     []Node        `json:"body"`
	EndTag   *EndTag       `json:"endTag"`
}

// Type implements [Node].
func (*ScriptElement) Type() string { return "SvelteScriptElement" }

// SetBody replaces the element's statements, adopting them.
func (s *ScriptElement) SetBody(body []Node) {
	s.Body = body
	Adopt(s)
}

// StyleElement is the style region. It has at most one child: the raw text
// between its tags.
type StyleElement struct {
	NodeBase
	Name     *Name     `json:"name"`
	StartTag *StartTag `json:"startTag"`
	Children []*Text   `json:"children"`
	EndTag   *EndTag   `json:"endTag"`
}

// Type implements [Node].
func (*StyleElement) Type() string { return "SvelteStyleElement" }

// ElementKind classifies a markup element.
type ElementKind string

const (
	HTMLElement      ElementKind = "html"      // <div>, <title>, <slot>.
	ComponentElement ElementKind = "component" // <Foo>, <foo.bar>.
	SpecialElement   ElementKind = "special"   // <svelte:*>.
)

// Element is a markup element.
//
// Name is a [*Name] for HTML and special elements. For components it is an
// Identifier [*ESNode], or a [*MemberExpressionName] for dotted names.
type Element struct {
	NodeBase
	Kind     ElementKind `json:"kind"`
	Name     Node        `json:"name"`
	StartTag *StartTag   `json:"startTag"`
	Children []Node      `json:"children"`
	EndTag   *EndTag     `json:"endTag"`
}

// Type implements [Node].
func (*Element) Type() string { return "SvelteElement" }

// TagName returns the element's name as written in the source.
func (e *Element) TagName() string {
	switch n := e.Name.(type) {
	case *Name:
		return n.Name
	case *MemberExpressionName:
		return n.String()
	case *ESNode:
		name, _ := n.GetString("name")
		return name
	}
	return ""
}

// StartTag is an element's opening tag.
type StartTag struct {
	NodeBase
	Attributes  []Node `json:"attributes"`
	SelfClosing bool   `json:"selfClosing"`
}

// Type implements [Node].
func (*StartTag) Type() string { return "SvelteStartTag" }

// EndTag is an element's closing tag.
type EndTag struct {
	NodeBase
}

// Type implements [Node].
func (*EndTag) Type() string { return "SvelteEndTag" }

// Name is a literal tag or attribute name.
type Name struct {
	NodeBase
	Name string `json:"name"`
}

// Type implements [Node].
func (*Name) Type() string { return "SvelteName" }

// MemberExpressionName is a dotted component name, such as <a.b.c>.
//
// Object is either another MemberExpressionName or an Identifier [*ESNode].
type MemberExpressionName struct {
	NodeBase
	Object   Node  `json:"object"`
	Property *Name `json:"property"`
}

// Type implements [Node].
func (*MemberExpressionName) Type() string { return "SvelteMemberExpressionName" }

// String returns the dotted name.
func (m *MemberExpressionName) String() string {
	var object string
	switch o := m.Object.(type) {
	case *MemberExpressionName:
		object = o.String()
	case *ESNode:
		object, _ = o.GetString("name")
	case *Name:
		object = o.Name
	}
	return object + "." + m.Property.Name
}
