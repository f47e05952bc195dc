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

package compat

import (
	"strings"

	"github.com/bufbuild/svelteast/svast"
)

// ElementKind classifies an element-like foreign node.
type ElementKind int

const (
	NotElement ElementKind = iota
	HTMLElement
	ComponentElement
	SpecialElement
)

// legacyElementTypes are the legacy node types for <svelte:*> elements.
// Components and plain elements are classified by name.
var legacyElementTypes = map[string]ElementKind{
	"Element":         HTMLElement,
	"InlineComponent": ComponentElement,
	"Slot":            HTMLElement,
	"Title":           HTMLElement,
	"Head":            SpecialElement,
	"Options":         SpecialElement,
	"Window":          SpecialElement,
	"Document":        SpecialElement,
	"Body":            SpecialElement,
	"SlotTemplate":    SpecialElement,
}

var modernElementTypes = map[string]ElementKind{
	"RegularElement":  HTMLElement,
	"Component":       ComponentElement,
	"SlotElement":     HTMLElement,
	"TitleElement":    HTMLElement,
	"SvelteElement":   SpecialElement,
	"SvelteComponent": SpecialElement,
	"SvelteSelf":      SpecialElement,
	"SvelteWindow":    SpecialElement,
	"SvelteDocument":  SpecialElement,
	"SvelteBody":      SpecialElement,
	"SvelteHead":      SpecialElement,
	"SvelteFragment":  SpecialElement,
	"SvelteBoundary":  SpecialElement,
	"SvelteOptions":   SpecialElement,
}

// ClassifyElement returns the kind of element a foreign node is, or
// [NotElement] for anything else.
func ClassifyElement(typ, name string) ElementKind {
	kind, ok := modernElementTypes[typ]
	if !ok {
		kind, ok = legacyElementTypes[typ]
	}
	if !ok {
		return NotElement
	}
	// The legacy schema represents <svelte:element> as an Element and
	// <svelte:component> or <svelte:self> as an InlineComponent.
	if strings.HasPrefix(name, "svelte:") {
		return SpecialElement
	}
	return kind
}

// ThisExpression returns the expression of a this={...} attribute on
// <svelte:element> or <svelte:component>, which the compiler lifts out of
// the attribute list.
//
// For a legacy <svelte:element this="div">, the tag is a plain string and
// is returned as isString.
func ThisExpression(n svast.Node) (expr svast.Node, tag string, isString bool) {
	switch n.Str("name") {
	case "svelte:element":
		if n.IsNode("tag") {
			return n.Get("tag"), "", false
		}
		if s := n.Str("tag"); s != "" {
			return svast.Node{}, s, true
		}
	case "svelte:component":
		return n.Get("expression"), "", false
	}
	return svast.Node{}, "", false
}
