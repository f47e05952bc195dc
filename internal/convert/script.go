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
)

// Script is the code of one region, converted but not yet attached.
type Script struct {
	Element *ast.ScriptElement
	Body    []ast.Node
}

// ConvertScripts converts the statements of the code regions of root, whose
// elements program already holds.
//
// Top-level `$:` statements of the instance script become
// [*ast.ReactiveStatement] nodes.
func ConvertScripts(root *svast.Root, program *ast.Program, ctx *Context) ([]Script, error) {
	var scripts []Script
	for _, node := range program.Body {
		element, ok := node.(*ast.ScriptElement)
		if !ok {
			continue
		}
		region := compat.Instance(root)
		if element.Variant == ast.Module {
			region = compat.Module(root)
		}
		if region.IsZero() || region.Start() != element.Range().Start() {
			return nil, ctx.Errorf(element.Range().Start(), element.Range().End(), "no %s script at offset %d", element.Variant, element.Range().Start())
		}

		content := region.Get("content")
		ctx.collectComments(content)
		var body []ast.Node
		for _, stmt := range content.List("body") {
			if stmt.IsZero() {
				continue
			}
			converted := ast.Node(convertESTree(stmt, ctx))
			if element.Variant == ast.Instance && isReactive(stmt) {
				converted = reactive(converted.(*ast.ESNode)) //nolint:errcheck // Just converted.
			}
			body = append(body, converted)
		}
		ctx.Logger().Debug("converted script", "variant", element.Variant, "statements", len(body))
		scripts = append(scripts, Script{Element: element, Body: body})
	}
	return scripts, nil
}

// isReactive returns whether stmt is a `$: ...` statement.
func isReactive(stmt svast.Node) bool {
	return stmt.Type() == "LabeledStatement" && stmt.Get("label").Str("name") == "$"
}

func reactive(labeled *ast.ESNode) *ast.ReactiveStatement {
	return ast.Adopt(&ast.ReactiveStatement{
		NodeBase: ast.Base(labeled.Extent()),
		Label:    labeled.GetNode("label"),
		Body:     labeled.GetNode("body"),
	})
}

// Attach makes each script's statements the body of its element.
func Attach(scripts []Script) {
	for _, s := range scripts {
		s.Element.SetBody(s.Body)
	}
}
