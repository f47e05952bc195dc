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

package compat

import (
	"github.com/bufbuild/svelteast/svast"
)

// Block arms are fragments in the modern schema. In the legacy schema they
// are nodes of their own, or the block's children directly.

// IfTest returns the condition of an if block.
func IfTest(n svast.Node) svast.Node {
	if n.Has("test") {
		return n.Get("test")
	}
	return n.Get("expression")
}

// IfConsequent returns the children of the true arm of an if block.
func IfConsequent(n svast.Node) []svast.Node {
	if n.Has("consequent") {
		return Children(n.Get("consequent"))
	}
	return Children(n)
}

// IfAlternate returns the {:else} arm of an if block: a modern fragment or
// a legacy ElseBlock. It is zero when there is no else arm.
func IfAlternate(n svast.Node) svast.Node {
	if n.Has("alternate") {
		return n.Get("alternate")
	}
	return n.Get("else")
}

// EachBody returns the children of an each block.
func EachBody(n svast.Node) []svast.Node {
	if n.Has("body") {
		return Children(n.Get("body"))
	}
	return Children(n)
}

// EachFallback returns the {:else} arm of an each block, if any.
func EachFallback(n svast.Node) svast.Node {
	if n.Has("fallback") {
		return n.Get("fallback")
	}
	return n.Get("else")
}

// AwaitPending returns the pending arm of an await block, if any.
func AwaitPending(n svast.Node) svast.Node {
	return awaitArm(n, "pending")
}

// AwaitThen returns the {:then} arm of an await block, if any.
func AwaitThen(n svast.Node) svast.Node {
	return awaitArm(n, "then")
}

// AwaitCatch returns the {:catch} arm of an await block, if any.
func AwaitCatch(n svast.Node) svast.Node {
	return awaitArm(n, "catch")
}

func awaitArm(n svast.Node, key string) svast.Node {
	arm := n.Get(key)
	// Legacy arms are always present, and skipped when absent from the
	// source.
	if arm.Bool("skip") {
		return svast.Node{}
	}
	return arm
}

// KeyBody returns the children of a key block.
func KeyBody(n svast.Node) []svast.Node {
	return Children(n)
}

// SnippetBody returns the children of a snippet block.
func SnippetBody(n svast.Node) []svast.Node {
	if n.Has("body") {
		return Children(n.Get("body"))
	}
	return Children(n)
}

// SnippetContext returns the first parameter of a snippet block, if any.
func SnippetContext(n svast.Node) svast.Node {
	if n.Has("context") {
		return n.Get("context")
	}
	if params := n.List("parameters"); len(params) > 0 {
		return params[0]
	}
	return svast.Node{}
}

// ConstDeclaration returns the VariableDeclaration of a const tag.
//
// The legacy schema records {@const a = b} as an assignment expression; it
// is rewritten into the declaration it stands for.
func ConstDeclaration(n svast.Node) svast.Node {
	if n.Has("declaration") {
		return n.Get("declaration")
	}
	expr := n.Get("expression")
	if expr.IsZero() {
		return svast.Node{}
	}
	declarator := svast.New("VariableDeclarator", expr.Start(), expr.End(), map[string]any{
		"id":   expr.Get("left"),
		"init": expr.Get("right"),
	})
	return svast.New("VariableDeclaration", expr.Start(), expr.End(), map[string]any{
		"kind":         "const",
		"declarations": svast.NodeList([]svast.Node{declarator}),
	})
}

// RenderCall returns the callee and first argument of a render tag.
func RenderCall(n svast.Node) (callee, argument svast.Node) {
	expr := n.Get("expression")
	if expr.Type() == "ChainExpression" {
		expr = expr.Get("expression")
	}
	if n.Has("argument") {
		return expr, n.Get("argument")
	}
	callee = expr.Get("callee")
	if args := expr.List("arguments"); len(args) > 0 {
		argument = args[0]
	}
	return callee, argument
}

// MustacheKind classifies a mustache tag node: "text" for {expr}, "raw" for
// {@html expr}, or "" for anything else.
func MustacheKind(typ string) string {
	switch typ {
	case "MustacheTag", "ExpressionTag":
		return "text"
	case "RawMustacheTag", "HtmlTag":
		return "raw"
	}
	return ""
}
