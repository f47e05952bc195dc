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

// Package walk traverses converted trees. The fields a traversal descends
// into, and their order, come from a [visitorkeys.Keys] registry.
package walk

import (
	"errors"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/visitorkeys"
)

// SkipChildren may be returned by an enter function to avoid descending into
// the node's children. The node's exit function is still called.
var SkipChildren = errors.New("skip children") //nolint:revive,staticcheck

// Nodes walks root and every node below it in depth-first pre-order, calling
// fn for each. If fn returns an error, the walk stops and returns it.
func Nodes(root ast.Node, keys visitorkeys.Keys, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, keys, fn, nil)
}

// NodesEnterAndExit walks root like [Nodes], calling enter before a node's
// children are visited and exit after. Either function may be nil.
func NodesEnterAndExit(root ast.Node, keys visitorkeys.Keys, enter, exit func(ast.Node) error) error {
	if ast.IsNil(root) {
		return nil
	}
	if keys == nil {
		keys = visitorkeys.KEYS
	}
	w := &walker{keys: keys, enter: enter, exit: exit}
	return w.walk(root)
}

// Children returns the direct children of n, in registry order. Nil children
// are omitted. A nil keys means [visitorkeys.KEYS].
func Children(n ast.Node, keys visitorkeys.Keys) []ast.Node {
	if keys == nil {
		keys = visitorkeys.KEYS
	}
	var out []ast.Node
	for _, key := range keys.ForNode(n) {
		forEachChild(n, key, func(child ast.Node) {
			out = append(out, child)
		})
	}
	return out
}

type walker struct {
	keys        visitorkeys.Keys
	enter, exit func(ast.Node) error
}

func (w *walker) walk(n ast.Node) error {
	if w.enter != nil {
		err := w.enter(n)
		if errors.Is(err, SkipChildren) {
			return w.leave(n)
		} else if err != nil {
			return err
		}
	}
	for _, child := range Children(n, w.keys) {
		if err := w.walk(child); err != nil {
			return err
		}
	}
	return w.leave(n)
}

func (w *walker) leave(n ast.Node) error {
	if w.exit == nil {
		return nil
	}
	return w.exit(n)
}

func forEachChild(n ast.Node, key string, fn func(ast.Node)) {
	v, _ := ast.Field(n, key)
	switch v := v.(type) {
	case ast.Node:
		if !ast.IsNil(v) {
			fn(v)
		}
	case []ast.Node:
		for _, child := range v {
			if !ast.IsNil(child) {
				fn(child)
			}
		}
	}
}
