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

package svast

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Version is a foreign AST schema version.
type Version int

const (
	Legacy Version = iota + 1
	Modern
)

// String implements [fmt.Stringer].
func (v Version) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// Root is the root of a foreign AST.
type Root struct {
	Node
	version Version
}

// Decode decodes a foreign AST serialized as JSON or YAML.
func Decode(data []byte) (*Root, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding foreign AST: %w", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("decoding foreign AST: document is not an object")
	}
	return NewRoot(m)
}

// NewRoot wraps an already decoded foreign AST.
func NewRoot(m map[string]any) (*Root, error) {
	root := &Root{Node: Wrap(m)}
	switch {
	case root.Type() == "Root" && root.Has("fragment"):
		root.version = Modern
	case root.Has("html"):
		root.version = Legacy
	default:
		return nil, errors.New("foreign AST is neither a legacy nor a modern Svelte root")
	}
	return root, nil
}

// Version returns the root's schema version.
func (r *Root) Version() Version {
	return r.version
}

// ToByteOffsets rewrites every "start" and "end" offset in the tree, which
// the compiler measures in UTF-16 code units, into a byte offset into text.
//
// This is a no-op when text is ASCII.
func (r *Root) ToByteOffsets(text string) {
	ascii := true
	for i := range len(text) {
		if text[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return
	}

	// table[i] is the byte offset of UTF-16 offset i.
	table := make([]int, 0, len(text)+1)
	for i, r := range text {
		table = append(table, i)
		if utf16.RuneLen(r) == 2 {
			table = append(table, i)
		}
	}
	table = append(table, len(text))

	rebase(r.m, table)
}

func rebase(v any, table []int) {
	switch v := v.(type) {
	case map[string]any:
		for _, key := range [...]string{"start", "end"} {
			if i, ok := toInt(v[key]); ok && i >= 0 && i < len(table) {
				v[key] = table[i]
			}
		}
		for key, child := range v {
			if key == "start" || key == "end" {
				if _, ok := child.(map[string]any); !ok {
					continue
				}
			}
			rebase(child, table)
		}
	case []any:
		for _, child := range v {
			rebase(child, table)
		}
	}
}
