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
	"fmt"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/walk"
)

// Analyzer computes the scopes of an ESTree program.
type Analyzer interface {
	Analyze(program ast.Node) (*Manager, error)
}

// AnalyzerFunc is an [Analyzer] implemented by a function.
type AnalyzerFunc func(program ast.Node) (*Manager, error)

// Analyze implements [Analyzer].
func (f AnalyzerFunc) Analyze(program ast.Node) (*Manager, error) {
	return f(program)
}

// Default is the analyzer used when none is configured. It analyzes
// programs as ES modules.
var Default Analyzer = AnalyzerFunc(Analyze)

// Analyze computes the scopes of an ESTree Program analyzed as an ES module:
// a global scope with a module scope inside it, both introduced by program.
//
// Declarations are hoisted to the scope that owns them, so references are
// resolved once their scope has been fully visited.
func Analyze(program ast.Node) (*Manager, error) {
	if program == nil || program.Type() != "Program" {
		return nil, fmt.Errorf("scope: cannot analyze %T, want a Program", program)
	}

	a := &analyzer{mgr: NewManager()}
	global := a.mgr.open(Global, program, nil)
	a.scope = a.mgr.open(Module, program, global)
	for _, stmt := range walk.Children(program, nil) {
		a.visit(stmt)
	}
	a.scope.close()
	global.close()
	return a.mgr, nil
}

type analyzer struct {
	mgr   *Manager
	scope *Scope
}

func (a *analyzer) push(typ Type, block ast.Node) {
	a.scope = a.mgr.open(typ, block, a.scope)
}

func (a *analyzer) pop() {
	a.scope.close()
	a.scope = a.scope.Upper
}

// variableScope returns the scope var declarations in the current scope are
// hoisted to.
func (a *analyzer) variableScope() *Scope {
	s := a.scope
	for !s.IsVariableScope() {
		s = s.Upper
	}
	return s
}

func (a *analyzer) reference(id ast.Node, read, write, init bool) {
	ref := &Reference{Identifier: id, From: a.scope, Read: read, Write: write, Init: init}
	a.scope.References = append(a.scope.References, ref)
	a.scope.pending = append(a.scope.pending, ref)
}

func (a *analyzer) visitAll(nodes []ast.Node) {
	for _, n := range nodes {
		if !ast.IsNil(n) {
			a.visit(n)
		}
	}
}

func (a *analyzer) visitChildren(n ast.Node) {
	a.visitAll(walk.Children(n, nil))
}

func (a *analyzer) visit(n ast.Node) {
	if ast.IsNil(n) {
		return
	}
	es, ok := n.(*ast.ESNode)
	if !ok {
		if rs, ok := n.(*ast.ReactiveStatement); ok {
			// Like a labeled statement: the $ label is not a reference.
			a.visit(rs.Body)
			return
		}
		a.visitChildren(n)
		return
	}

	switch es.Type() {
	case "Identifier":
		a.reference(es, true, false, false)

	case "VariableDeclaration":
		a.variableDeclaration(es)

	case "FunctionDeclaration":
		if id := es.GetNode("id"); id != nil {
			a.scope.declare(name(id), Def{Kind: FunctionNameDef, Name: id, Node: es})
		}
		a.function(es)

	case "FunctionExpression", "ArrowFunctionExpression":
		if id := es.GetNode("id"); id != nil {
			a.push(FunctionExpressionName, es)
			a.scope.declare(name(id), Def{Kind: FunctionNameDef, Name: id, Node: es})
			a.function(es)
			a.pop()
			return
		}
		a.function(es)

	case "ClassDeclaration", "ClassExpression":
		id := es.GetNode("id")
		if id != nil && es.Type() == "ClassDeclaration" {
			a.scope.declare(name(id), Def{Kind: ClassNameDef, Name: id, Node: es})
		}
		a.visit(es.GetNode("superClass"))
		a.push(Class, es)
		if id != nil {
			a.scope.declare(name(id), Def{Kind: ClassNameDef, Name: id, Node: es})
		}
		a.visit(es.GetNode("body"))
		a.pop()

	case "BlockStatement", "StaticBlock":
		a.push(Block, es)
		a.visitAll(es.GetNodes("body"))
		a.pop()

	case "ForStatement", "ForInStatement", "ForOfStatement":
		a.forStatement(es)

	case "CatchClause":
		a.push(Catch, es)
		if param := es.GetNode("param"); param != nil {
			a.pattern(param, func(id ast.Node) {
				a.scope.declare(name(id), Def{Kind: CatchClauseDef, Name: id, Node: es})
			})
		}
		a.visit(es.GetNode("body"))
		a.pop()

	case "SwitchStatement":
		a.visit(es.GetNode("discriminant"))
		a.push(Switch, es)
		a.visitAll(es.GetNodes("cases"))
		a.pop()

	case "AssignmentExpression":
		compound := false
		if op, _ := es.GetString("operator"); op != "=" {
			compound = true
		}
		a.assignTarget(es.GetNode("left"), compound, false)
		a.visit(es.GetNode("right"))

	case "UpdateExpression":
		arg := es.GetNode("argument")
		if arg != nil && arg.Type() == "Identifier" {
			a.reference(arg, true, true, false)
		} else {
			a.visit(arg)
		}

	case "MemberExpression", "MetaProperty":
		a.visit(es.GetNode("object"))
		if computed(es) {
			a.visit(es.GetNode("property"))
		}

	case "Property", "MethodDefinition", "PropertyDefinition":
		if computed(es) {
			a.visit(es.GetNode("key"))
		}
		a.visit(es.GetNode("value"))

	case "LabeledStatement":
		a.visit(es.GetNode("body"))

	case "BreakStatement", "ContinueStatement":

	case "ImportDeclaration":
		for _, spec := range es.GetNodes("specifiers") {
			if local := spec.(*ast.ESNode).GetNode("local"); local != nil { //nolint:errcheck
				a.scope.declare(name(local), Def{Kind: ImportBinding, Name: local, Node: spec})
			}
		}

	case "ExportNamedDeclaration":
		a.visit(es.GetNode("declaration"))
		if es.GetNode("source") == nil {
			for _, spec := range es.GetNodes("specifiers") {
				a.visit(spec.(*ast.ESNode).GetNode("local")) //nolint:errcheck
			}
		}

	case "ExportAllDeclaration":

	default:
		a.visitChildren(es)
	}
}

func (a *analyzer) variableDeclaration(decl *ast.ESNode) {
	target := a.scope
	if kind, _ := decl.GetString("kind"); kind == "var" {
		target = a.variableScope()
	}
	for _, d := range decl.GetNodes("declarations") {
		declarator := d.(*ast.ESNode) //nolint:errcheck
		id := declarator.GetNode("id")
		init := declarator.GetNode("init")
		a.pattern(id, func(ident ast.Node) {
			target.declare(name(ident), Def{Kind: VariableDef, Name: ident, Node: declarator})
			if init != nil {
				a.reference(ident, false, true, true)
			}
		})
		a.visit(init)
	}
}

func (a *analyzer) function(fn *ast.ESNode) {
	a.push(Function, fn)
	for _, param := range fn.GetNodes("params") {
		a.pattern(param, func(id ast.Node) {
			a.scope.declare(name(id), Def{Kind: ParameterDef, Name: id, Node: fn})
		})
	}
	if body := fn.GetNode("body"); body != nil && body.Type() == "BlockStatement" {
		// A function's own block does not open a scope of its own.
		a.visitAll(body.(*ast.ESNode).GetNodes("body")) //nolint:errcheck
	} else {
		a.visit(body)
	}
	a.pop()
}

func (a *analyzer) forStatement(stmt *ast.ESNode) {
	head := stmt.GetNode("init")
	if head == nil {
		head = stmt.GetNode("left")
	}
	lexical := false
	if decl, ok := head.(*ast.ESNode); ok && decl.Type() == "VariableDeclaration" {
		kind, _ := decl.GetString("kind")
		lexical = kind != "var"
	}
	if lexical {
		a.push(For, stmt)
	}

	if stmt.Type() == "ForStatement" {
		a.visit(head)
		a.visit(stmt.GetNode("test"))
		a.visit(stmt.GetNode("update"))
	} else {
		if head != nil && head.Type() != "VariableDeclaration" {
			a.assignTarget(head, false, false)
		} else {
			a.visit(head)
		}
		a.visit(stmt.GetNode("right"))
	}
	a.visit(stmt.GetNode("body"))

	if lexical {
		a.pop()
	}
}

// assignTarget records writes to every identifier a pattern assigns.
func (a *analyzer) assignTarget(target ast.Node, read, init bool) {
	if target == nil {
		return
	}
	if target.Type() == "Identifier" {
		a.reference(target, read, true, init)
		return
	}
	a.pattern(target, func(id ast.Node) {
		a.reference(id, read, true, init)
	})
}

// pattern calls fn for every identifier a binding pattern binds, and visits
// the expressions inside it: default values, computed keys and member
// expression targets.
func (a *analyzer) pattern(n ast.Node, fn func(id ast.Node)) {
	es, ok := n.(*ast.ESNode)
	if !ok || es == nil {
		return
	}
	switch es.Type() {
	case "Identifier":
		fn(es)
	case "ObjectPattern":
		for _, prop := range es.GetNodes("properties") {
			p := prop.(*ast.ESNode) //nolint:errcheck
			if p.Type() == "RestElement" {
				a.pattern(p, fn)
				continue
			}
			if computed(p) {
				a.visit(p.GetNode("key"))
			}
			a.pattern(p.GetNode("value"), fn)
		}
	case "ArrayPattern":
		for _, elem := range es.GetNodes("elements") {
			if !ast.IsNil(elem) {
				a.pattern(elem, fn)
			}
		}
	case "RestElement":
		a.pattern(es.GetNode("argument"), fn)
	case "AssignmentPattern":
		a.pattern(es.GetNode("left"), fn)
		a.visit(es.GetNode("right"))
	default:
		a.visit(es)
	}
}

func name(id ast.Node) string {
	if es, ok := id.(*ast.ESNode); ok {
		s, _ := es.GetString("name")
		return s
	}
	return ""
}

func computed(es *ast.ESNode) bool {
	v, _ := es.Get("computed")
	b, _ := v.(bool)
	return b
}
