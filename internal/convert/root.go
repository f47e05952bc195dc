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
	"github.com/bufbuild/svelteast/scope"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/token"
)

// ConvertRoot converts a foreign root into a [*ast.Program].
//
// The program's body holds the converted markup, with <svelte:options>
// restored to its place, followed by the instance script, the module script
// and the style element, each if present. Script bodies are left empty; they
// are filled in once the code has been analyzed.
//
// ConvertRoot registers a restore phase with the context's bindings that
// moves the scopes of the analyzed program onto the returned Program.
func ConvertRoot(root *svast.Root, ctx *Context) (*ast.Program, error) {
	if err := ctx.checkOffsets(root.Node); err != nil {
		return nil, ctx.Errorf(0, 0, "%v", err)
	}

	program := &ast.Program{
		NodeBase:   ast.Base(ctx.Extent(0, len(ctx.Code()))),
		SourceType: "module",
		Tokens:     ctx.Tokens,
	}

	var body []ast.Node
	if fragment := compat.Fragment(root); !fragment.IsZero() {
		children := compat.Children(fragment)
		if options := compat.Options(root); !options.IsZero() {
			children = spliceByPosition(children, options)
		}
		nodes, err := convertChildren(children, ctx)
		if err != nil {
			return nil, err
		}
		body = append(body, nodes...)
	}

	if instance := compat.Instance(root); !instance.IsZero() {
		script, err := convertScriptElement(instance, ast.Instance, ctx)
		if err != nil {
			return nil, err
		}
		body = append(body, script)
	}
	if module := compat.Module(root); !module.IsZero() {
		script, err := convertScriptElement(module, ast.Module, ctx)
		if err != nil {
			return nil, err
		}
		body = append(body, script)
	}
	if css := compat.Style(root); !css.IsZero() {
		style, err := convertStyleElement(css, ctx)
		if err != nil {
			return nil, err
		}
		body = append(body, style)
	}

	program.Body = body
	program.Comments = ctx.Comments
	ast.Adopt(program)

	ctx.Bindings().AddProgramRestore(func(node ast.Node, _ *token.Stream, _ []*ast.Comment, r *scope.Restorer) {
		for _, s := range r.ScopeManager.Scopes {
			if s != nil && s.Block == node {
				r.RegisterNodeToScope(program, s)
			}
		}
		r.AddPostProcess(func() {
			// Reference trackers find a module's imports and exports by
			// matching the global scope's block against the program they
			// analyzed, so the global scope must point back at it. The
			// scope manager is inconsistent as a result, and must stay so.
			r.ScopeManager.GlobalScope.Block = node
		})
	})

	return program, nil
}

// spliceByPosition inserts the options element into the fragment's
// children, which are ordered by position: right before the first child
// that starts at or after the options end, or at the end if there is none.
func spliceByPosition(children []svast.Node, options svast.Node) []svast.Node {
	out := make([]svast.Node, 0, len(children)+1)
	inserted := false
	for _, child := range children {
		if !inserted && !child.IsZero() && options.End() <= child.Start() {
			out = append(out, options)
			inserted = true
		}
		out = append(out, child)
	}
	if !inserted {
		out = append(out, options)
	}
	return out
}

func convertScriptElement(n svast.Node, variant ast.ScriptVariant, ctx *Context) (*ast.ScriptElement, error) {
	stage, err := stageBlock(n, ctx)
	if err != nil {
		return nil, err
	}
	if err := extractElementTags(stage, ctx, nameToken(ctx, "script")); err != nil {
		return nil, err
	}
	return ast.Adopt(&ast.ScriptElement{
		NodeBase: ast.Base(ctx.ExtentOf(n)),
		Variant:  variant,
		Name:     stage.name.(*ast.Name), //nolint:errcheck // Built by nameToken.
		StartTag: stage.startTag(ctx),
		EndTag:   stage.endTag(ctx),
	}), nil
}

func convertStyleElement(n svast.Node, ctx *Context) (*ast.StyleElement, error) {
	stage, err := stageBlock(n, ctx)
	if err != nil {
		return nil, err
	}
	if err := extractElementTags(stage, ctx, nameToken(ctx, "style")); err != nil {
		return nil, err
	}

	var children []*ast.Text
	if stage.hasEndTag && stage.startTagEnd < stage.endTagStart {
		start, end := stage.startTagEnd, stage.endTagStart
		ctx.AddToken(token.HTMLText, start, end)
		children = append(children, &ast.Text{
			NodeBase: ast.Base(ctx.Extent(start, end)),
			Value:    ctx.Code()[start:end],
		})
	}
	return ast.Adopt(&ast.StyleElement{
		NodeBase: ast.Base(ctx.ExtentOf(n)),
		Name:     stage.name.(*ast.Name), //nolint:errcheck // Built by nameToken.
		StartTag: stage.startTag(ctx),
		Children: children,
		EndTag:   stage.endTag(ctx),
	}), nil
}

// stageBlock starts building a script or style element, converting the
// attributes of the block the source has at the element's position.
func stageBlock(n svast.Node, ctx *Context) (*elementStage, error) {
	block, ok := ctx.FindBlock(n.Start())
	if !ok {
		return nil, ctx.Errorf(n.Start(), n.End(), "no <script> or <style> tag at offset %d", n.Start())
	}
	attrs, err := convertAttributes(block.Attrs, ctx)
	if err != nil {
		return nil, err
	}
	return newStage(n.Start(), n.End(), attrs), nil
}
