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

package walk

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/visitorkeys"
)

// Dump writes an indented outline of the tree rooted at n to w: one line per
// node with its type, range and, where it has one, its name or value.
func Dump(w io.Writer, n ast.Node, keys visitorkeys.Keys) error {
	if keys == nil {
		keys = visitorkeys.KEYS
	}
	d := &dumper{w: w, keys: keys}
	d.node("", n, 0)
	return d.err
}

type dumper struct {
	w    io.Writer
	keys visitorkeys.Keys
	err  error
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dumper) node(label string, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	r := n.Range()
	d.printf("%s%s%s [%d, %d]%s\n", indent, label, n.Type(), r.Start(), r.End(), describe(n))

	for _, key := range d.keys.ForNode(n) {
		v, _ := ast.Field(n, key)
		switch v := v.(type) {
		case ast.Node:
			if !ast.IsNil(v) {
				d.node(key+": ", v, depth+1)
			}
		case []ast.Node:
			for i, child := range v {
				if !ast.IsNil(child) {
					d.node(fmt.Sprintf("%s[%d]: ", key, i), child, depth+1)
				}
			}
		}
	}
}

// describe returns the scalar payload shown after a node's range.
func describe(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Name:
		return " " + strconv.Quote(n.Name)
	case *ast.Text:
		return " " + strconv.Quote(n.Value)
	case *ast.Literal:
		return " " + strconv.Quote(n.Value)
	case *ast.HTMLComment:
		return " " + strconv.Quote(n.Value)
	case *ast.ScriptElement:
		return " " + string(n.Variant)
	case *ast.Element:
		return " " + string(n.Kind)
	case *ast.MustacheTag:
		return " " + string(n.Kind)
	case *ast.Directive:
		return " " + string(n.Kind)
	case *ast.ESNode:
		for _, key := range []string{"name", "raw", "operator", "kind"} {
			if s, ok := n.GetString(key); ok {
				return " " + strconv.Quote(s)
			}
		}
	}
	return ""
}
