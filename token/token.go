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

package token

import (
	"fmt"

	"github.com/bufbuild/svelteast/source"
)

// Token is a single token in a [Stream].
type Token struct {
	Kind Kind
	source.Span
}

// Value returns the source text this token covers.
func (t Token) Value() string {
	return t.Span.Text()
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%v[%d:%d]%q", t.Kind, t.Start, t.End, t.Value())
}
