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
	"slices"

	"github.com/bufbuild/svelteast/token"
)

// Program is the root of a converted tree.
//
// Its range always spans the whole source text, regardless of which regions
// the source contains.
type Program struct {
	NodeBase
	Body       []Node        `json:"body"`
	SourceType string        `json:"sourceType"`
	Comments   []*Comment    `json:"comments"`
	Tokens     *token.Stream `json:"tokens"`
}

// Type implements [Node].
func (*Program) Type() string { return "Program" }

// SortBody orders the top-level nodes by their start offsets. The sort is
// stable, so nodes starting at the same offset keep their relative order.
func (p *Program) SortBody() {
	slices.SortStableFunc(p.Body, func(a, b Node) int {
		return a.Range().Start() - b.Range().Start()
	})
}

// Comment is a code comment. Comments are not nodes; they are attached to
// the [Program].
type Comment struct {
	Kind  CommentKind    `json:"type"`
	Value string         `json:"value"`
	Range Range          `json:"range"`
	Loc   SourceLocation `json:"loc"`
}

// CommentKind distinguishes // comments from /* */ comments.
type CommentKind string

const (
	LineComment  CommentKind = "Line"
	BlockComment CommentKind = "Block"
)
