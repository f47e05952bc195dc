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

import "fmt"

const (
	Unrecognized Kind = iota // Unrecognized garbage.

	HTMLIdentifier  // A tag name, attribute name or directive key.
	HTMLText        // Raw text: element text, literal attribute values, style contents.
	HTMLComment     // An HTML comment, including its delimiters.
	Punctuator      // Mustache braces and other punctuation.
	MustacheKeyword // A keyword introduced by #, :, / or @ inside a mustache.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// String implements [fmt.Stringer].
//
// The names match the token types that JavaScript linting tools expect.
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case HTMLIdentifier:
		return "HTMLIdentifier"
	case HTMLText:
		return "HTMLText"
	case HTMLComment:
		return "HTMLComment"
	case Punctuator:
		return "Punctuator"
	case MustacheKeyword:
		return "MustacheKeyword"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
