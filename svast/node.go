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

package svast

import (
	"maps"
	"slices"
)

// Node is a single object in the foreign AST. The zero Node is valid and
// represents an absent object: every accessor returns a zero value.
type Node struct {
	m map[string]any
}

// Wrap returns a Node over the given decoded object.
func Wrap(m map[string]any) Node {
	return Node{m: m}
}

// IsZero returns whether this Node is absent.
func (n Node) IsZero() bool {
	return n.m == nil
}

// Type returns the node's "type" field.
func (n Node) Type() string {
	return n.Str("type")
}

// Start returns the node's start offset.
func (n Node) Start() int {
	v, _ := n.Int("start")
	return v
}

// End returns the node's end offset.
func (n Node) End() int {
	v, _ := n.Int("end")
	return v
}

// Has returns whether the node has the named field, even if it is null.
func (n Node) Has(key string) bool {
	_, ok := n.m[key]
	return ok
}

// Raw returns the named field as decoded.
func (n Node) Raw(key string) any {
	return n.m[key]
}

// Str returns the named field if it is a string.
func (n Node) Str(key string) string {
	s, _ := n.m[key].(string)
	return s
}

// Bool returns the named field if it is a boolean.
func (n Node) Bool(key string) bool {
	b, _ := n.m[key].(bool)
	return b
}

// Int returns the named field if it is an integer.
func (n Node) Int(key string) (int, bool) {
	return toInt(n.m[key])
}

// Get returns the named field if it is an object.
func (n Node) Get(key string) Node {
	m, _ := n.m[key].(map[string]any)
	return Node{m: m}
}

// IsNode returns whether the named field is an object.
func (n Node) IsNode(key string) bool {
	_, ok := n.m[key].(map[string]any)
	return ok
}

// List returns the objects in the named field if it is an array. Elements
// that are not objects, such as the holes in an array pattern, are returned
// as zero Nodes.
func (n Node) List(key string) []Node {
	list, _ := n.m[key].([]any)
	if list == nil {
		return nil
	}
	out := make([]Node, len(list))
	for i, v := range list {
		m, _ := v.(map[string]any)
		out[i] = Node{m: m}
	}
	return out
}

// IsList returns whether the named field is an array.
func (n Node) IsList(key string) bool {
	_, ok := n.m[key].([]any)
	return ok
}

// Keys returns the node's field names, sorted.
func (n Node) Keys() []string {
	return slices.Sorted(maps.Keys(n.m))
}

// With returns a shallow copy of n with the given field replaced.
func (n Node) With(key string, value any) Node {
	m := maps.Clone(n.m)
	if m == nil {
		m = make(map[string]any)
	}
	if node, ok := value.(Node); ok {
		value = node.m
	}
	m[key] = value
	return Node{m: m}
}

// New creates a node of the given type spanning [start, end), with the given
// extra fields.
func New(typ string, start, end int, fields map[string]any) Node {
	m := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		if node, ok := v.(Node); ok {
			v = node.m
		}
		m[k] = v
	}
	m["type"] = typ
	m["start"] = start
	m["end"] = end
	return Node{m: m}
}

// NodeList converts a list of Nodes to a value that can be stored in a field.
func NodeList(nodes []Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		if n.m != nil {
			out[i] = n.m
		}
	}
	return out
}

func toInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}
