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

package source

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the width a tab is assumed to occupy when measuring in
// [TermWidth].
const TabstopWidth = 4

// Unit is a unit of measurement for columns.
type Unit int

const (
	Bytes     Unit = iota // Columns count bytes.
	UTF16                 // Columns count UTF-16 code units, as JavaScript strings do.
	Runes                 // Columns count Unicode code points.
	TermWidth             // Columns count terminal cells.
)

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "Bytes"
	case UTF16:
		return "UTF16"
	case Runes:
		return "Runes"
	case TermWidth:
		return "TermWidth"
	default:
		return "source.Unit(?)"
	}
}

// File is a source file that a conversion runs over.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is possible
	// to recover which line that offset is on by performing a binary search on this
	// list.
	//
	// Alternatively, this slice can be interpreted as the index after each \n in the
	// original file.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
//
// It doesn't need to be a real path; it is only used in diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}

	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}

	return f.text
}

// Len returns the length of this file, in bytes.
func (f *File) Len() int {
	return len(f.Text())
}

// Slice returns the text between the given byte offsets.
func (f *File) Slice(start, end int) string {
	return f.Text()[start:end]
}

// LineByOffset searches this index to find the zero-based line number for
// the line containing this byte offset.
//
// This operation is O(log n).
func (f *File) LineByOffset(offset int) int {
	lines := f.lines()

	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}
	return line
}

// Location searches this index to build full Location information for the given
// byte offset.
//
// This operation is O(log n).
func (f *File) Location(offset int, units Unit) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()
	line := f.LineByOffset(offset)
	chunk := f.Text()[lines[line]:offset]

	var column int
	switch units {
	case Bytes:
		column = len(chunk)
	case UTF16:
		for _, r := range chunk {
			column += utf16.RuneLen(r)
		}
	case Runes:
		for range chunk {
			column++
		}
	case TermWidth:
		column = termWidth(chunk)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}

	return Span{f, start, end}
}

// IndexFunc returns the offset of the first byte at or after from for which
// p returns true, or -1.
func (f *File) IndexFunc(from int, p func(byte) bool) int {
	text := f.Text()
	for i := from; i < len(text); i++ {
		if p(text[i]) {
			return i
		}
	}
	return -1
}

// LastIndexFunc returns the offset of the last byte strictly before to for
// which p returns true, or -1.
func (f *File) LastIndexFunc(to int, p func(byte) bool) int {
	text := f.Text()
	for i := min(to, len(text)) - 1; i >= 0; i-- {
		if p(text[i]) {
			return i
		}
	}
	return -1
}

// Index returns the offset of the first occurrence of needle at or after
// from, or -1.
func (f *File) Index(from int, needle string) int {
	if from > f.Len() {
		return -1
	}
	i := strings.Index(f.Text()[from:], needle)
	if i < 0 {
		return -1
	}
	return from + i
}

// LastIndex returns the offset of the last occurrence of needle that ends at
// or before to, or -1.
func (f *File) LastIndex(to int, needle string) int {
	return strings.LastIndex(f.Text()[:min(to, f.Len())], needle)
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.Text()
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}

// termWidth measures text in terminal cells, expanding tabs to the next
// multiple of [TabstopWidth].
func termWidth(text string) int {
	var column int
	for text != "" {
		tab := strings.IndexByte(text, '\t')
		if tab < 0 {
			return column + uniseg.StringWidth(text)
		}
		column += uniseg.StringWidth(text[:tab])
		column += TabstopWidth - column%TabstopWidth
		text = text[tab+1:]
	}
	return column
}
