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

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Node is a node in the unified tree.
type Node interface {
	// Type returns the node's type tag, such as "Program" or "SvelteElement".
	Type() string
	// Range returns the byte range this node covers.
	Range() Range
	// Loc returns the line/column location this node covers.
	Loc() SourceLocation
	// Parent returns the node that adopted this one, or nil for the root.
	Parent() Node

	nodeBase() *NodeBase
}

// Range is a half-open byte range [start, end) into the source text.
type Range [2]int

// Start returns the range's start offset.
func (r Range) Start() int { return r[0] }

// End returns the range's end offset.
func (r Range) End() int { return r[1] }

// Len returns the length of the range, in bytes.
func (r Range) Len() int { return r[1] - r[0] }

// Position is a line/column pair. Lines are 1-based, columns are 0-based
// UTF-16 code units.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is a pair of positions.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Extent is where a node lies in the source.
type Extent struct {
	Range Range
	Loc   SourceLocation
}

// NodeBase holds the fields common to every node. It is embedded in every
// concrete node type.
type NodeBase struct {
	rng    Range
	loc    SourceLocation
	parent Node
}

// Base returns a NodeBase located at the given extent.
func Base(at Extent) NodeBase {
	return NodeBase{rng: at.Range, loc: at.Loc}
}

// Range implements [Node].
func (b *NodeBase) Range() Range { return b.rng }

// Loc implements [Node].
func (b *NodeBase) Loc() SourceLocation { return b.loc }

// Parent implements [Node].
func (b *NodeBase) Parent() Node { return b.parent }

// Extent returns the node's range and location together.
func (b *NodeBase) Extent() Extent { return Extent{Range: b.rng, Loc: b.loc} }

func (b *NodeBase) nodeBase() *NodeBase { return b }

// IsNil returns whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Adopt makes n the parent of every node held in one of its child fields,
// and returns n.
//
// Nodes are finalized with Adopt once every field is known. Adopting a node
// that already has a parent moves it.
func Adopt[N Node](n N) N {
	for _, key := range ChildKeys(n) {
		v, _ := Field(n, key)
		switch v := v.(type) {
		case Node:
			v.nodeBase().parent = n
		case []Node:
			for _, child := range v {
				if !IsNil(child) {
					child.nodeBase().parent = n
				}
			}
		}
	}
	return n
}

// ChildKeys returns the names of the fields of n that can hold child nodes,
// in declaration order.
func ChildKeys(n Node) []string {
	if es, ok := n.(*ESNode); ok {
		var keys []string
		for _, f := range es.fields {
			switch f.Value.(type) {
			case Node, []Node:
				keys = append(keys, f.Key)
			}
		}
		return keys
	}
	return indexOf(reflect.TypeOf(n).Elem()).children
}

// Field looks up the field of n with the given name.
//
// Fields holding nodes are returned as a [Node] or a []Node; a nil child is
// returned as an untyped nil. Other fields are returned as-is.
func Field(n Node, key string) (any, bool) {
	if es, ok := n.(*ESNode); ok {
		return es.Get(key)
	}

	v := reflect.ValueOf(n).Elem()
	idx, ok := indexOf(v.Type()).byKey[key]
	if !ok {
		return nil, false
	}
	f := v.Field(idx)
	if !isChildType(f.Type()) {
		return f.Interface(), true
	}

	if f.Kind() == reflect.Slice {
		if f.IsNil() {
			return []Node(nil), true
		}
		nodes := make([]Node, f.Len())
		for i := range nodes {
			if e := f.Index(i); !e.IsNil() {
				nodes[i] = e.Interface().(Node) //nolint:errcheck // Checked by isChildType.
			}
		}
		return nodes, true
	}
	if f.IsNil() {
		return nil, true
	}
	return f.Interface().(Node), true //nolint:errcheck // Checked by isChildType.
}

var nodeType = reflect.TypeFor[Node]()

type fieldIndex struct {
	byKey    map[string]int
	children []string
}

var fieldIndexes sync.Map // reflect.Type -> *fieldIndex

func indexOf(t reflect.Type) *fieldIndex {
	if idx, ok := fieldIndexes.Load(t); ok {
		return idx.(*fieldIndex) //nolint:errcheck
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("svelteast/ast: %v is not a node struct", t))
	}

	idx := &fieldIndex{byKey: make(map[string]int)}
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}
		idx.byKey[key] = i
		if isChildType(f.Type) {
			idx.children = append(idx.children, key)
		}
	}

	actual, _ := fieldIndexes.LoadOrStore(t, idx)
	return actual.(*fieldIndex) //nolint:errcheck
}

// isChildType returns whether a field of type t holds child nodes.
func isChildType(t reflect.Type) bool {
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t == nodeType || (t.Kind() == reflect.Pointer && t.Implements(nodeType))
}
