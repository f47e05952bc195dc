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

package convert

import (
	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/internal/compat"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/token"
)

// blockTokens records the tokens of a block's opening {#name and its closing
// {/name}, and returns where the closing tag begins. If the block has no
// closing tag of its own, it returns the block's end.
func (c *Context) blockTokens(n svast.Node, name string) int {
	c.mustacheTokens(n.Start(), n.Start()+1+len(name)+1, "#"+name)

	closeTag := c.File.LastIndex(n.End(), "{/"+name)
	if closeTag < n.Start() {
		return n.End()
	}
	c.mustacheTokens(closeTag, n.End(), "/"+name)
	return closeTag
}

// armStart finds the {:tag that introduces a block arm whose content
// starts at anchor.
func (c *Context) armStart(anchor int, tag string) int {
	return c.File.LastIndex(anchor+len(tag), tag)
}

// armTokens records the brace and keyword of an arm's {:tag at start.
func (c *Context) armTokens(start int, tag string) {
	c.AddToken(token.Punctuator, start, start+1)
	c.AddToken(token.MustacheKeyword, start+1, start+len(tag))
}

func convertIf(n svast.Node, ctx *Context) (*ast.IfBlock, error) {
	elseif := n.Bool("elseif")
	var closeTag int
	if elseif {
		// An {:else if} arm has no tags of its own: its opening belongs to
		// the else block holding it, its closing to the outermost if.
		closeTag = ctx.File.LastIndex(n.End(), "{/if")
		if closeTag < n.Start() {
			closeTag = n.End()
		}
	} else {
		closeTag = ctx.blockTokens(n, "if")
	}

	children, err := convertChildren(compat.IfConsequent(n), ctx)
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.ElseBlock
	if alt := compat.IfAlternate(n); !alt.IsZero() {
		elseBlock, err = convertElse(alt, closeTag, ctx)
		if err != nil {
			return nil, err
		}
	}
	return ast.Adopt(&ast.IfBlock{
		NodeBase:   ast.Base(ctx.ExtentOf(n)),
		ElseIf:     elseif,
		Expression: convertExpression(compat.IfTest(n), ctx),
		Children:   children,
		Else:       elseBlock,
	}), nil
}

// convertElse converts the {:else} arm of an if or each block. end is where
// the arm's content must end: the start of the enclosing block's closing
// tag.
func convertElse(alt svast.Node, end int, ctx *Context) (*ast.ElseBlock, error) {
	nodes := compat.Children(alt)
	elseif := len(nodes) == 1 && nodes[0].Type() == "IfBlock" && nodes[0].Bool("elseif")

	anchor := end
	if len(nodes) > 0 {
		anchor = nodes[0].Start()
	}
	start := ctx.armStart(anchor, "{:else")
	if start < 0 {
		return nil, ctx.Errorf(anchor, end, "cannot find {:else}")
	}
	ctx.armTokens(start, "{:else")

	children, err := convertChildren(nodes, ctx)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		end = max(end, child.Range().End())
	}
	return ast.Adopt(&ast.ElseBlock{
		NodeBase: ast.Base(ctx.Extent(start, end)),
		ElseIf:   elseif,
		Children: children,
	}), nil
}

func convertEach(n svast.Node, ctx *Context) (*ast.EachBlock, error) {
	closeTag := ctx.blockTokens(n, "each")

	expr := convertExpression(n.Get("expression"), ctx)
	context := convertExpression(n.Get("context"), ctx)
	var index ast.Node
	if name := n.Str("index"); name != "" {
		from := n.Get("expression").End()
		if context != nil {
			from = context.Range().End()
		}
		comma := ctx.File.Index(from, ",")
		start := -1
		if comma >= 0 {
			start = ctx.File.Index(comma+1, name)
		}
		if start < 0 {
			return nil, ctx.Errorf(n.Start(), n.End(), "cannot find each block index %q", name)
		}
		index = ast.NewIdentifier(ctx.Extent(start, start+len(name)), name)
	}

	children, err := convertChildren(compat.EachBody(n), ctx)
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.ElseBlock
	if fallback := compat.EachFallback(n); !fallback.IsZero() {
		elseBlock, err = convertElse(fallback, closeTag, ctx)
		if err != nil {
			return nil, err
		}
	}
	return ast.Adopt(&ast.EachBlock{
		NodeBase:   ast.Base(ctx.ExtentOf(n)),
		Expression: expr,
		Context:    context,
		Index:      index,
		Key:        convertExpression(n.Get("key"), ctx),
		Children:   children,
		Else:       elseBlock,
	}), nil
}

func convertAwait(n svast.Node, ctx *Context) (*ast.AwaitBlock, error) {
	closeTag := ctx.blockTokens(n, "await")
	expr := n.Get("expression")
	pending, then, catch := compat.AwaitPending(n), compat.AwaitThen(n), compat.AwaitCatch(n)

	kind := ast.AwaitPlain
	switch {
	case !pending.IsZero():
	case !then.IsZero():
		kind = ast.AwaitThen
	case !catch.IsZero():
		kind = ast.AwaitCatch
	}

	// Locate each arm, working backwards from the closing tag. Arms other
	// than the first are introduced by their own {:then} or {:catch}.
	catchStart, thenStart := closeTag, closeTag
	if !catch.IsZero() {
		if kind == ast.AwaitCatch {
			catchStart = ctx.File.Index(expr.End(), "catch")
		} else {
			catchStart = ctx.armStart(armAnchor(catch, n.Get("error"), closeTag), "{:catch")
			if catchStart < 0 {
				return nil, ctx.Errorf(n.Start(), n.End(), "cannot find {:catch}")
			}
			ctx.armTokens(catchStart, "{:catch")
		}
		thenStart = catchStart
	}
	if !then.IsZero() {
		if kind == ast.AwaitThen {
			thenStart = ctx.File.Index(expr.End(), "then")
		} else {
			thenStart = ctx.armStart(armAnchor(then, n.Get("value"), catchStart), "{:then")
			if thenStart < 0 {
				return nil, ctx.Errorf(n.Start(), n.End(), "cannot find {:then}")
			}
			ctx.armTokens(thenStart, "{:then")
		}
	}
	if thenStart < 0 || catchStart < 0 {
		return nil, ctx.Errorf(n.Start(), n.End(), "cannot find the arms of await block")
	}

	block := &ast.AwaitBlock{
		NodeBase:   ast.Base(ctx.ExtentOf(n)),
		Kind:       kind,
		Expression: convertExpression(expr, ctx),
	}
	if !pending.IsZero() {
		start := ctx.File.Index(expr.End(), "}") + 1
		end := thenStart
		if then.IsZero() {
			end = catchStart
		}
		children, err := convertChildren(compat.Children(pending), ctx)
		if err != nil {
			return nil, err
		}
		block.Pending = ast.Adopt(&ast.AwaitPendingBlock{
			NodeBase: ast.Base(ctx.Extent(start, end)),
			Children: children,
		})
	}
	if !then.IsZero() {
		children, err := convertChildren(compat.Children(then), ctx)
		if err != nil {
			return nil, err
		}
		block.Then = ast.Adopt(&ast.AwaitThenBlock{
			NodeBase: ast.Base(ctx.Extent(thenStart, catchStart)),
			Kind:     kind,
			Value:    convertExpression(n.Get("value"), ctx),
			Children: children,
		})
	}
	if !catch.IsZero() {
		children, err := convertChildren(compat.Children(catch), ctx)
		if err != nil {
			return nil, err
		}
		block.Catch = ast.Adopt(&ast.AwaitCatchBlock{
			NodeBase: ast.Base(ctx.Extent(catchStart, closeTag)),
			Kind:     kind,
			Error:    convertExpression(n.Get("error"), ctx),
			Children: children,
		})
	}
	return ast.Adopt(block), nil
}

// armAnchor returns the earliest offset known to be inside an await arm: its
// binding pattern, its first child, or failing those, the offset the arm
// ends at.
func armAnchor(arm, binding svast.Node, end int) int {
	if !binding.IsZero() {
		return binding.Start()
	}
	if children := compat.Children(arm); len(children) > 0 {
		return children[0].Start()
	}
	return end
}

func convertKey(n svast.Node, ctx *Context) (*ast.KeyBlock, error) {
	ctx.blockTokens(n, "key")
	children, err := convertChildren(compat.KeyBody(n), ctx)
	if err != nil {
		return nil, err
	}
	return ast.Adopt(&ast.KeyBlock{
		NodeBase:   ast.Base(ctx.ExtentOf(n)),
		Expression: convertExpression(n.Get("expression"), ctx),
		Children:   children,
	}), nil
}

func convertSnippet(n svast.Node, ctx *Context) (*ast.SnippetBlock, error) {
	ctx.blockTokens(n, "snippet")
	children, err := convertChildren(compat.SnippetBody(n), ctx)
	if err != nil {
		return nil, err
	}
	return ast.Adopt(&ast.SnippetBlock{
		NodeBase: ast.Base(ctx.ExtentOf(n)),
		ID:       convertExpression(n.Get("expression"), ctx),
		Context:  convertExpression(compat.SnippetContext(n), ctx),
		Children: children,
	}), nil
}
