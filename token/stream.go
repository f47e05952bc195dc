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
	"iter"
	"slices"

	"github.com/bufbuild/svelteast/internal/interval"
	"github.com/bufbuild/svelteast/source"
)

// Stream is a token stream over a single [source.File].
//
// Tokens may be added in any order; the stream keeps them sorted by offset.
// Adding a token that overlaps one already present panics, since it means
// two parts of the converter disagree about what a region of the source is.
//
// Streams may be "frozen", meaning that the conversion it was meant for is
// complete, and new tokens cannot be added to it.
type Stream struct {
	// The file this stream is over.
	*source.File

	tokens []Token
	index  interval.Map[int, Kind]
	frozen bool
}

// NewStream creates an empty stream over the given file.
func NewStream(file *source.File) *Stream {
	return &Stream{File: file}
}

// Add adds a token covering [start, end) to the stream.
//
// Panics if the range is empty, out of bounds, overlaps an existing token,
// or if the stream is frozen.
func (s *Stream) Add(kind Kind, start, end int) Token {
	if s.frozen {
		panic("svelteast/token: attempted to mutate frozen stream")
	}
	if start < 0 || end > s.Len() || start >= end {
		panic(fmt.Sprintf("svelteast/token: Add() called with invalid range [%d:%d] for %q (len %d)", start, end, s.Path(), s.Len()))
	}

	if overlap := s.index.Insert(start, end-1, kind); overlap.Value != nil {
		panic(fmt.Sprintf(
			"svelteast/token: %v token [%d:%d] overlaps %v token [%d:%d] in %q",
			kind, start, end, *overlap.Value, overlap.Start, overlap.End+1, s.Path(),
		))
	}

	tok := Token{Kind: kind, Span: s.File.Span(start, end)}
	idx, _ := slices.BinarySearchFunc(s.tokens, start, func(t Token, offset int) int {
		return t.Start - offset
	})
	s.tokens = slices.Insert(s.tokens, idx, tok)
	return tok
}

// Freeze marks this stream as frozen.
func (s *Stream) Freeze() {
	if s != nil {
		s.frozen = true
	}
}

// Count returns the number of tokens in this stream.
func (s *Stream) Count() int {
	if s == nil {
		return 0
	}
	return len(s.tokens)
}

// At returns the nth token in the stream, in offset order.
func (s *Stream) At(n int) Token {
	return s.tokens[n]
}

// All returns an iterator over the tokens in this stream, in offset order.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if s == nil {
			return
		}
		for _, t := range s.tokens {
			if !yield(t) {
				return
			}
		}
	}
}

// Around returns the token containing offset, if there is one.
func (s *Stream) Around(offset int) (Token, bool) {
	iv := s.index.Get(offset)
	if iv.Value == nil {
		return Token{}, false
	}
	idx, _ := slices.BinarySearchFunc(s.tokens, iv.Start, func(t Token, offset int) int {
		return t.Start - offset
	})
	return s.tokens[idx], true
}
