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

package scope

import (
	"github.com/bufbuild/svelteast/ast"
)

// Manager is the result of analyzing a program: every scope in it, and the
// scopes each node introduces.
type Manager struct {
	// Every scope, in the order they were opened.
	Scopes []*Scope

	GlobalScope *Scope

	nodeToScope map[ast.Node][]*Scope
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{nodeToScope: make(map[ast.Node][]*Scope)}
}

// Acquire returns the scope introduced by node, or nil. When a node
// introduces several scopes, such as the global and module scopes of a
// program, the outermost is returned unless inner is set.
func (m *Manager) Acquire(node ast.Node, inner bool) *Scope {
	scopes := m.nodeToScope[node]
	if len(scopes) == 0 {
		return nil
	}
	if inner {
		return scopes[len(scopes)-1]
	}
	return scopes[0]
}

// RegisterNodeToScope makes node the block of s, so that acquiring node
// returns s.
//
// The previous block keeps its association with s.
func (m *Manager) RegisterNodeToScope(node ast.Node, s *Scope) {
	if m.nodeToScope == nil {
		// Managers built by hand have no index yet.
		m.nodeToScope = make(map[ast.Node][]*Scope)
	}
	s.Block = node
	m.nodeToScope[node] = append(m.nodeToScope[node], s)
}

func (m *Manager) open(typ Type, block ast.Node, upper *Scope) *Scope {
	s := newScope(typ, block, upper)
	m.Scopes = append(m.Scopes, s)
	m.nodeToScope[block] = append(m.nodeToScope[block], s)
	if typ == Global {
		m.GlobalScope = s
	}
	return s
}
