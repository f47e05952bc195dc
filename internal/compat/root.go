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

// Package compat reads the foreign AST through one interface regardless of
// its schema version.
//
// Each accessor accepts nodes of either schema and returns what the legacy
// and modern shapes have in common, so the converter never needs to branch
// on the version itself.
package compat

import (
	"github.com/bufbuild/svelteast/svast"
)

// Fragment returns the root's markup fragment.
func Fragment(root *svast.Root) svast.Node {
	if root.Version() == svast.Modern {
		return root.Get("fragment")
	}
	return root.Get("html")
}

// Instance returns the root's instance script, if any.
func Instance(root *svast.Root) svast.Node {
	return root.Get("instance")
}

// Module returns the root's module script, if any.
func Module(root *svast.Root) svast.Node {
	return root.Get("module")
}

// Style returns the root's style sheet, if any.
func Style(root *svast.Root) svast.Node {
	return root.Get("css")
}

// Options returns the <svelte:options> element of a modern root, as a node
// that can be converted along with the fragment's children.
//
// The modern schema lifts the options out of the fragment into a parsed
// settings object. When the compiler kept the element it parsed (as
// __raw__), that is returned; otherwise an element is rebuilt from the
// settings' span and attributes.
//
// Legacy roots never need this: their options element is still among the
// fragment's children.
func Options(root *svast.Root) svast.Node {
	if root.Version() != svast.Modern {
		return svast.Node{}
	}
	options := root.Get("options")
	if options.IsZero() {
		return svast.Node{}
	}
	if raw := options.Get("__raw__"); !raw.IsZero() {
		return raw
	}
	attrs := options.Raw("attributes")
	if attrs == nil {
		attrs = []any{}
	}
	return svast.New("SvelteOptions", options.Start(), options.End(), map[string]any{
		"name":       "svelte:options",
		"attributes": attrs,
		"fragment": svast.New("Fragment", options.End(), options.End(), map[string]any{
			"nodes": []any{},
		}),
	})
}

// Children returns the child nodes of a fragment, element or block body.
//
// Legacy nodes list them under "children". Modern fragments list them under
// "nodes", and modern elements hold a "fragment".
func Children(n svast.Node) []svast.Node {
	switch {
	case n.IsList("nodes"):
		return n.List("nodes")
	case n.IsList("children"):
		return n.List("children")
	case n.IsNode("fragment"):
		return n.Get("fragment").List("nodes")
	}
	return nil
}

// Attributes returns the attributes and directives of an element.
func Attributes(n svast.Node) []svast.Node {
	return n.List("attributes")
}
