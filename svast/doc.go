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

// Package svast is a read-only view of the foreign AST: the tree the Svelte
// compiler's parse function produces for a component.
//
// Two schema versions exist. The legacy schema (Svelte 3 and 4, or Svelte 5
// without the modern option) has an "html" fragment whose nodes live under
// "children". The modern schema has a root of type "Root" with a "fragment"
// whose nodes live under "nodes". Package internal/compat papers over the
// differences; this package only decodes and navigates.
//
// Foreign ASTs are usually produced by a JavaScript toolchain and serialized
// as JSON. Since JSON is a subset of YAML, [Decode] also accepts hand-written
// YAML, which is what the test corpus uses.
package svast
