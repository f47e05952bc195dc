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
	"github.com/bufbuild/svelteast/token"
)

// RestoreFunc moves scope information from the analyzed program onto the
// converted tree.
//
// node is the analyzed program: the node the analyzer saw, which scopes
// produced for the whole component have as their block.
type RestoreFunc func(node ast.Node, tokens *token.Stream, comments []*ast.Comment, r *Restorer)

// Bindings collects the restore phases registered during conversion.
//
// Conversion runs before the code is analyzed, so the converter cannot yet
// attach scopes to the nodes it creates. It registers restore phases here
// instead, which run once analysis is done, in registration order.
type Bindings struct {
	restores []RestoreFunc
}

// AddProgramRestore registers a phase that runs after analysis.
func (b *Bindings) AddProgramRestore(fn RestoreFunc) {
	b.restores = append(b.restores, fn)
}

// Len returns the number of registered restore phases.
func (b *Bindings) Len() int {
	return len(b.restores)
}

// Run runs every restore phase, in registration order, and then every
// post-process phase they registered, also in registration order.
func (b *Bindings) Run(analyzed ast.Node, mgr *Manager, tokens *token.Stream, comments []*ast.Comment) {
	r := &Restorer{ScopeManager: mgr}
	for _, restore := range b.restores {
		restore(analyzed, tokens, comments, r)
	}
	for _, post := range r.post {
		post()
	}
}

// Restorer is passed to each [RestoreFunc].
type Restorer struct {
	ScopeManager *Manager

	post []func()
}

// RegisterNodeToScope makes node the block of s. See
// [Manager.RegisterNodeToScope].
func (r *Restorer) RegisterNodeToScope(node ast.Node, s *Scope) {
	r.ScopeManager.RegisterNodeToScope(node, s)
}

// AddPostProcess registers fn to run after every restore phase has run.
func (r *Restorer) AddPostProcess(fn func()) {
	r.post = append(r.post, fn)
}
