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

// Package ast defines the unified tree produced by converting a Svelte
// compiler AST.
//
// All nodes of the tree implement the [Node] interface. The root of the
// tree is a *[Program]. Markup is represented by the Svelte* node types in
// this package, while code (script bodies and template expressions) is
// represented by generic ESTree nodes, [ESNode], whose shape is whatever the
// code parser produced.
//
// Every node records its byte range and its line/column location. Node
// fields that hold child nodes are tagged with the name generic traversal
// uses for them; see package visitorkeys for the registry that lists them,
// and [Field] for looking them up by name.
//
// Nodes are created by the converter as struct literals over a [Base], then
// finalized with [Adopt], which links every child back to its parent. This
// package defines numerous interfaces; user code should not attempt to
// implement any of them.
package ast
