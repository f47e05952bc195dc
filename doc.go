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

// Package svelteast converts the syntax tree a Svelte compiler produces for
// a component into a single ESTree-compatible tree, which generic JavaScript
// tooling such as linters can traverse.
//
// Conversion happens in phases:
//  1. Converting the markup, the code regions and the style region into the
//     unified tree, recording tokens along the way.
//     Also see: the ast and token packages.
//  2. Converting the statements of the code regions.
//  3. Analyzing the scopes of the code.
//     Also see: scope.Analyze
//  4. Attaching the statements to their regions and moving the analyzed
//     scopes onto the unified tree.
//
// The result carries the visitor keys needed to traverse it; see the
// visitorkeys and walk packages.
//
// # Foreign trees
//
// This package does not parse Svelte itself. It consumes the tree the
// compiler emits, in either the legacy or the modern schema, decoded by the
// svast package. Offsets in the compiler's output count UTF-16 code units;
// they must be rewritten into byte offsets before conversion, which the
// resolvers in this package do.
//
// # Parser
//
// A [Parser] converts many files in parallel. Its [Resolver] locates each
// file's source and foreign tree. A minimal Parser, loading App.svelte and
// App.svelte.json from the file system, is:
//
//	parser := svelteast.Parser{
//	    Resolver: &svelteast.SourceResolver{},
//	}
//	results, err := parser.Parse(ctx, "App.svelte")
//
// For a single file already in memory, call [Convert] directly.
package svelteast
