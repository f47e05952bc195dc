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

import "slices"

// ESNode is a generic ESTree node: code inside script regions and template
// expressions.
//
// The converter does not model JavaScript; it carries over whatever shape
// the code parser produced. Field values are a [Node], a []Node (elements
// may be nil, for array holes), or a scalar (string, float64, bool or nil).
type ESNode struct {
	NodeBase
	kind   string
	fields []ESField
}

// ESField is a single named field of an [ESNode].
type ESField struct {
	Key   string
	Value any
}

// NewESNode creates a new ESTree node, adopting any child nodes among its
// fields. A nil child must be passed as an untyped nil.
func NewESNode(kind string, at Extent, fields ...ESField) *ESNode {
	return Adopt(&ESNode{NodeBase: Base(at), kind: kind, fields: fields})
}

// NewIdentifier is a shorthand for an Identifier ESTree node.
func NewIdentifier(at Extent, name string) *ESNode {
	return NewESNode("Identifier", at, ESField{Key: "name", Value: name})
}

// Type implements [Node].
func (n *ESNode) Type() string { return n.kind }

// Fields returns the node's fields, in the order the code parser produced them.
func (n *ESNode) Fields() []ESField {
	return slices.Clone(n.fields)
}

// Get returns the value of the named field.
func (n *ESNode) Get(key string) (any, bool) {
	for _, f := range n.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// GetNode returns the named field if it holds a single node.
func (n *ESNode) GetNode(key string) Node {
	v, _ := n.Get(key)
	node, _ := v.(Node)
	return node
}

// GetNodes returns the named field if it holds a list of nodes.
func (n *ESNode) GetNodes(key string) []Node {
	v, _ := n.Get(key)
	nodes, _ := v.([]Node)
	return nodes
}

// GetString returns the named field if it holds a string.
func (n *ESNode) GetString(key string) (string, bool) {
	v, _ := n.Get(key)
	s, ok := v.(string)
	return s, ok
}

// Clone returns a shallow copy of n with no parent. Child nodes are shared.
func (n *ESNode) Clone() *ESNode {
	return &ESNode{
		NodeBase: Base(n.Extent()),
		kind:     n.kind,
		fields:   slices.Clone(n.fields),
	}
}

// ReactiveStatement is a top-level `$: statement` in the instance script.
type ReactiveStatement struct {
	NodeBase
	Label Node `json:"label"`
	Body  Node `json:"body"`
}

// Type implements [Node].
func (*ReactiveStatement) Type() string { return "SvelteReactiveStatement" }
