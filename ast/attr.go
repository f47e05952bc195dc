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

// Attribute is name="value", name={expr}, name="a{b}c" or a bare name.
//
// Value holds [*Literal] and [*MustacheTag] parts, and is empty for a bare
// boolean attribute.
type Attribute struct {
	NodeBase
	Key     *Name  `json:"key"`
	Boolean bool   `json:"boolean"`
	Value   []Node `json:"value"`
}

// Type implements [Node].
func (*Attribute) Type() string { return "SvelteAttribute" }

// ShorthandAttribute is {name}. Key and Value are distinct Identifier nodes
// over the same range.
type ShorthandAttribute struct {
	NodeBase
	Key   Node `json:"key"`
	Value Node `json:"value"`
}

// Type implements [Node].
func (*ShorthandAttribute) Type() string { return "SvelteShorthandAttribute" }

// SpreadAttribute is {...argument}.
type SpreadAttribute struct {
	NodeBase
	Argument Node `json:"argument"`
}

// Type implements [Node].
func (*SpreadAttribute) Type() string { return "SvelteSpreadAttribute" }

// DirectiveKind classifies a directive by its prefix.
type DirectiveKind string

const (
	ActionDirective       DirectiveKind = "Action"       // use:
	AnimationDirective    DirectiveKind = "Animation"    // animate:
	BindingDirective      DirectiveKind = "Binding"      // bind:
	ClassDirective        DirectiveKind = "Class"        // class:
	EventHandlerDirective DirectiveKind = "EventHandler" // on:
	LetDirective          DirectiveKind = "Let"          // let:
	TransitionDirective   DirectiveKind = "Transition"   // transition:, in:, out:
)

// Directive is prefix:name|modifiers={expression}.
type Directive struct {
	NodeBase
	Kind       DirectiveKind `json:"kind"`
	Key        *DirectiveKey `json:"key"`
	Expression Node          `json:"expression"`

	// For transitions: whether this is an in:, out: or transition: directive.
	Intro bool `json:"intro"`
	Outro bool `json:"outro"`
}

// Type implements [Node].
func (*Directive) Type() string { return "SvelteDirective" }

// StyleDirective is style:property="value".
type StyleDirective struct {
	NodeBase
	Key       *DirectiveKey `json:"key"`
	Shorthand bool          `json:"shorthand"`
	Value     []Node        `json:"value"`
}

// Type implements [Node].
func (*StyleDirective) Type() string { return "SvelteStyleDirective" }

// SpecialDirective is the this={expression} of <svelte:element> and
// <svelte:component>.
type SpecialDirective struct {
	NodeBase
	Kind       string               `json:"kind"`
	Key        *SpecialDirectiveKey `json:"key"`
	Expression Node                 `json:"expression"`
}

// Type implements [Node].
func (*SpecialDirective) Type() string { return "SvelteSpecialDirective" }

// DirectiveKey is the prefix:name|modifiers part of a directive.
type DirectiveKey struct {
	NodeBase
	Name      *Name    `json:"name"`
	Modifiers []string `json:"modifiers"`
}

// Type implements [Node].
func (*DirectiveKey) Type() string { return "SvelteDirectiveKey" }

// SpecialDirectiveKey is the key of a [SpecialDirective].
type SpecialDirectiveKey struct {
	NodeBase
}

// Type implements [Node].
func (*SpecialDirectiveKey) Type() string { return "SvelteSpecialDirectiveKey" }
