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
	"github.com/bufbuild/svelteast/svast"
)

// directiveKinds maps the foreign directive node types of both schemas to
// the directive kind they denote.
var directiveKinds = map[string]string{
	"Action":              "Action",
	"Animation":           "Animation",
	"Binding":             "Binding",
	"Class":               "Class",
	"EventHandler":        "EventHandler",
	"Let":                 "Let",
	"Transition":          "Transition",
	"UseDirective":        "Action",
	"AnimateDirective":    "Animation",
	"BindDirective":       "Binding",
	"ClassDirective":      "Class",
	"OnDirective":         "EventHandler",
	"LetDirective":        "Let",
	"TransitionDirective": "Transition",
}

// DirectiveKind returns the directive kind of a foreign attribute node, or
// "" if it is not a directive.
func DirectiveKind(typ string) string {
	return directiveKinds[typ]
}

// IsStyleDirective returns whether typ is a style: directive.
func IsStyleDirective(typ string) bool {
	return typ == "StyleDirective"
}

// IsSpread returns whether typ is a {...spread} attribute.
func IsSpread(typ string) bool {
	return typ == "Spread" || typ == "SpreadAttribute"
}

// AttributeValue returns the parts of an attribute or style directive value.
//
// A value of true, which is a bare attribute like <input disabled>, is
// reported as boolean. The modern schema stores a lone {expr} value as the
// tag itself rather than as a one-element list.
func AttributeValue(n svast.Node) (parts []svast.Node, boolean bool) {
	switch v := n.Raw("value").(type) {
	case bool:
		return nil, v
	case []any:
		return n.List("value"), false
	case map[string]any:
		return []svast.Node{svast.Wrap(v)}, false
	}
	return nil, false
}

// IsShorthand returns whether attr is written {name}: a legacy
// AttributeShorthand value, or a modern expression tag that starts where
// the attribute does.
func IsShorthand(attr svast.Node, parts []svast.Node) bool {
	if len(parts) != 1 {
		return false
	}
	part := parts[0]
	return part.Type() == "AttributeShorthand" ||
		(part.Type() == "ExpressionTag" && part.Start() == attr.Start())
}

// Modifiers returns a directive's modifiers.
func Modifiers(n svast.Node) []string {
	list, _ := n.Raw("modifiers").([]any)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
