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

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/visitorkeys"
)

// Verify checks the structural invariants of a converted tree:
//
//   - every node's type has an entry in keys;
//   - every child's Parent is the node that holds it;
//   - every child's range lies within its parent's range.
//
// ESTree nodes outside the registry are allowed when strict is false.
func Verify(root ast.Node, keys visitorkeys.Keys, strict bool) error {
	if keys == nil {
		keys = visitorkeys.KEYS
	}
	return Nodes(root, keys, func(n ast.Node) error {
		if _, ok := keys.Of(n.Type()); !ok {
			if _, es := n.(*ast.ESNode); strict || !es {
				return fmt.Errorf("%s at %v: no visitor keys", n.Type(), n.Range())
			}
		}
		for _, child := range Children(n, keys) {
			if child.Parent() != n {
				return fmt.Errorf("%s at %v: parent is not the enclosing %s", child.Type(), child.Range(), n.Type())
			}
			r, pr := child.Range(), n.Range()
			if r.Start() < pr.Start() || r.End() > pr.End() {
				return fmt.Errorf("%s at %v: outside of parent %s at %v", child.Type(), r, n.Type(), pr)
			}
		}
		return nil
	})
}
