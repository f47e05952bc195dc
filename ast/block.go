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

// IfBlock is {#if}...{/if}, or the {:else if} arm of one when ElseIf is set.
type IfBlock struct {
	NodeBase
	ElseIf     bool       `json:"elseif"`
	Expression Node       `json:"expression"`
	Children   []Node     `json:"children"`
	Else       *ElseBlock `json:"else"`
}

// Type implements [Node].
func (*IfBlock) Type() string { return "SvelteIfBlock" }

// ElseBlock is the {:else} arm of an if or each block. When ElseIf is set,
// its only child is the [IfBlock] for an {:else if}.
type ElseBlock struct {
	NodeBase
	ElseIf   bool   `json:"elseif"`
	Children []Node `json:"children"`
}

// Type implements [Node].
func (*ElseBlock) Type() string { return "SvelteElseBlock" }

// EachBlock is {#each expression as context, index (key)}.
//
// Index is an Identifier [*ESNode] synthesized from the index name.
type EachBlock struct {
	NodeBase
	Expression Node       `json:"expression"`
	Context    Node       `json:"context"`
	Index      Node       `json:"index"`
	Key        Node       `json:"key"`
	Children   []Node     `json:"children"`
	Else       *ElseBlock `json:"else"`
}

// Type implements [Node].
func (*EachBlock) Type() string { return "SvelteEachBlock" }

// AwaitKind records which of the await block's arms appear in the opening
// mustache: {#await p}, {#await p then v} or {#await p catch e}.
type AwaitKind string

const (
	AwaitPlain AwaitKind = "await"
	AwaitThen  AwaitKind = "await-then"
	AwaitCatch AwaitKind = "await-catch"
)

// AwaitBlock is {#await}...{/await}.
type AwaitBlock struct {
	NodeBase
	Kind       AwaitKind          `json:"kind"`
	Expression Node               `json:"expression"`
	Pending    *AwaitPendingBlock `json:"pending"`
	Then       *AwaitThenBlock    `json:"then"`
	Catch      *AwaitCatchBlock   `json:"catch"`
}

// Type implements [Node].
func (*AwaitBlock) Type() string { return "SvelteAwaitBlock" }

// AwaitPendingBlock is the part of an await block shown while pending.
type AwaitPendingBlock struct {
	NodeBase
	Children []Node `json:"children"`
}

// Type implements [Node].
func (*AwaitPendingBlock) Type() string { return "SvelteAwaitPendingBlock" }

// AwaitThenBlock is the {:then value} arm of an await block.
type AwaitThenBlock struct {
	NodeBase
	Kind     AwaitKind `json:"kind"`
	Value    Node      `json:"value"`
	Children []Node    `json:"children"`
}

// Type implements [Node].
func (*AwaitThenBlock) Type() string { return "SvelteAwaitThenBlock" }

// AwaitCatchBlock is the {:catch error} arm of an await block.
type AwaitCatchBlock struct {
	NodeBase
	Kind     AwaitKind `json:"kind"`
	Error    Node      `json:"error"`
	Children []Node    `json:"children"`
}

// Type implements [Node].
func (*AwaitCatchBlock) Type() string { return "SvelteAwaitCatchBlock" }

// KeyBlock is {#key expression}...{/key}.
type KeyBlock struct {
	NodeBase
	Expression Node   `json:"expression"`
	Children   []Node `json:"children"`
}

// Type implements [Node].
func (*KeyBlock) Type() string { return "SvelteKeyBlock" }

// SnippetBlock is {#snippet id(context)}...{/snippet}.
type SnippetBlock struct {
	NodeBase
	ID       Node   `json:"id"`
	Context  Node   `json:"context"`
	Children []Node `json:"children"`
}

// Type implements [Node].
func (*SnippetBlock) Type() string { return "SvelteSnippetBlock" }
