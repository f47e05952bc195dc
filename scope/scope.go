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

// Package scope models the variable scopes of the code in a component:
// which names each scope declares, and which declaration each identifier
// refers to.
//
// Scopes are computed by an [Analyzer] over an ESTree program. The resulting
// [Manager] is then re-keyed onto the converted tree by the phases collected
// in a [Bindings].
package scope

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bufbuild/svelteast/ast"
)

// Type is the kind of construct that introduces a scope.
type Type string

const (
	Global                 Type = "global"
	Module                 Type = "module"
	Function               Type = "function"
	FunctionExpressionName Type = "function-expression-name"
	Block                  Type = "block"
	Catch                  Type = "catch"
	For                    Type = "for"
	Switch                 Type = "switch"
	Class                  Type = "class"
)

// Scope is a lexical scope.
type Scope struct {
	Type Type

	// The node that introduces this scope.
	Block ast.Node

	Upper       *Scope
	ChildScopes []*Scope

	// Variables declared directly in this scope, in declaration order.
	Variables []*Variable

	// References made directly in this scope.
	References []*Reference

	// References that this scope could not resolve, including those passed
	// up from child scopes.
	Through []*Reference

	set     map[string]*Variable
	pending []*Reference
}

func newScope(typ Type, block ast.Node, upper *Scope) *Scope {
	s := &Scope{
		Type:  typ,
		Block: block,
		Upper: upper,
		set:   make(map[string]*Variable),
	}
	if upper != nil {
		upper.ChildScopes = append(upper.ChildScopes, s)
	}
	return s
}

// Set returns the variable with the given name declared in this scope,
// without searching enclosing scopes.
func (s *Scope) Set(name string) *Variable {
	return s.set[name]
}

// Lookup searches this scope and then each enclosing one for a variable
// with the given name. It returns the variable and the scope that declares
// it, or nils.
func (s *Scope) Lookup(name string) (*Variable, *Scope) {
	for scope := s; scope != nil; scope = scope.Upper {
		if v := scope.set[name]; v != nil {
			return v, scope
		}
	}
	return nil, nil
}

// IsVariableScope returns whether var declarations in this scope are hoisted
// to it.
func (s *Scope) IsVariableScope() bool {
	switch s.Type {
	case Global, Module, Function:
		return true
	}
	return false
}

// Names returns the names declared in this scope, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.Variables))
	for _, v := range s.Variables {
		names = append(names, v.Name)
	}
	slices.Sort(names)
	return names
}

// String returns a string representation of the scope tree for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	r := s.Block.Range()
	fmt.Fprintf(buf, "%s%s %s [%d, %d] {\n", prefix, s.Type, s.Block.Type(), r.Start(), r.End())
	for _, name := range s.Names() {
		fmt.Fprintf(buf, "%s  %s: %d refs\n", prefix, name, len(s.set[name].References))
	}
	for _, child := range s.ChildScopes {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}

func (s *Scope) declare(name string, def Def) *Variable {
	v := s.set[name]
	if v == nil {
		v = &Variable{Name: name, Scope: s}
		s.set[name] = v
		s.Variables = append(s.Variables, v)
	}
	v.Identifiers = append(v.Identifiers, def.Name)
	v.Defs = append(v.Defs, def)
	return v
}

// close resolves the references made in or passed up to this scope.
// Whatever cannot be resolved here is passed to the enclosing scope.
func (s *Scope) close() {
	for _, ref := range s.pending {
		if v := s.set[ref.Name()]; v != nil {
			ref.Resolved = v
			v.References = append(v.References, ref)
			continue
		}
		s.Through = append(s.Through, ref)
		if s.Upper != nil {
			s.Upper.pending = append(s.Upper.pending, ref)
		}
	}
	s.pending = nil
}

// DefKind is the kind of declaration that defines a variable.
type DefKind string

const (
	VariableDef     DefKind = "Variable"
	FunctionNameDef DefKind = "FunctionName"
	ClassNameDef    DefKind = "ClassName"
	ParameterDef    DefKind = "Parameter"
	ImportBinding   DefKind = "ImportBinding"
	CatchClauseDef  DefKind = "CatchClause"
)

// Def is one declaration of a variable.
type Def struct {
	Kind DefKind
	// The declared Identifier.
	Name ast.Node
	// The declaring node, such as a VariableDeclarator or FunctionDeclaration.
	Node ast.Node
}

// Variable is a declared name.
type Variable struct {
	Name  string
	Scope *Scope

	Identifiers []ast.Node
	References  []*Reference
	Defs        []Def
}

// Reference is an occurrence of an identifier that reads or writes a
// variable.
type Reference struct {
	Identifier ast.Node
	From       *Scope

	// The variable this reference resolves to, or nil if it is unresolved.
	Resolved *Variable

	Read, Write bool
	// Whether this write is the variable's initializer.
	Init bool
}

// Name returns the referenced name.
func (r *Reference) Name() string {
	if id, ok := r.Identifier.(*ast.ESNode); ok {
		name, _ := id.GetString("name")
		return name
	}
	return ""
}
