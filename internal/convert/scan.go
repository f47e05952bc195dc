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
	"strings"

	"golang.org/x/net/html"

	"github.com/bufbuild/svelteast/source"
	"github.com/bufbuild/svelteast/svast"
)

// Block is a top-level <script> or <style> element, found by tokenizing the
// source text.
//
// The compiler reports where code and style regions are but not the
// attributes on their tags in a uniform way, so the converter reads them
// back out of the source.
type Block struct {
	Tag string

	// The whole element, from < to the end of the closing tag.
	Start, End int

	// Where the start tag ends and the content begins. ContentEnd is where
	// the end tag begins.
	ContentStart, ContentEnd int

	// The start tag's attributes, as legacy Attribute nodes.
	Attrs []svast.Node
}

// rawTextTags are the elements whose content the tokenizer reads as raw
// text, up to the matching end tag.
var rawTextTags = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"xmp":       true,
}

// tokenizer is an [html.Tokenizer] over a suffix of the source that tracks
// the offsets of the tokens it reads within the whole source.
type tokenizer struct {
	*html.Tokenizer
	text       string
	start, end int
}

func newTokenizer(text string, offset int) *tokenizer {
	return &tokenizer{
		Tokenizer: html.NewTokenizer(strings.NewReader(text[offset:])),
		text:      text,
		start:     offset,
		end:       offset,
	}
}

// Next reads the next token. Tokens are contiguous, so each one ends where
// the next begins.
func (z *tokenizer) Next() html.TokenType {
	tt := z.Tokenizer.Next()
	z.start = z.end
	z.end += len(z.Raw())
	return tt
}

// scanBlocks finds the <script> and <style> elements in file. Comments are
// skipped. A start tag with no matching end tag is not an element: the scan
// resumes right after its <.
func scanBlocks(file *source.File) []*Block {
	text := file.Text()
	var blocks []*Block
	z := newTokenizer(text, 0)
	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			return blocks
		case html.StartTagToken, html.SelfClosingTagToken:
			block, resume := readBlock(z, tt)
			if block != nil {
				blocks = append(blocks, block)
			}
			if resume >= 0 {
				z = newTokenizer(text, resume)
			}
		}
	}
}

// scanBlockAt reads the <script> or <style> element starting exactly at
// start, if there is one.
func scanBlockAt(file *source.File, start int) (*Block, bool) {
	if start < 0 || start >= file.Len() {
		return nil, false
	}
	z := newTokenizer(file.Text(), start)
	tt := z.Next()
	if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
		return nil, false
	}
	block, _ := readBlock(z, tt)
	return block, block != nil
}

// readBlock reads the element whose start tag z has just read. It returns
// the element if it is a <script> or <style>, along with the offset to
// resume tokenizing from, or -1 to carry on with z.
func readBlock(z *tokenizer, tt html.TokenType) (*Block, int) {
	name, hasAttr := z.TagName()
	tag := string(name)
	if !rawTextTags[tag] {
		return nil, -1
	}

	start, tagEnd := z.start, z.end
	var block *Block
	if tag == "script" || tag == "style" {
		block = &Block{
			Tag:          tag,
			Start:        start,
			ContentStart: tagEnd,
			Attrs:        readAttrs(z, len(tag), hasAttr),
		}
	}

	if tt == html.SelfClosingTagToken || tag == "plaintext" {
		// The tokenizer would read everything after the tag as raw text.
		if block != nil {
			block.ContentEnd, block.End = tagEnd, tagEnd
		}
		return block, tagEnd
	}

	tt = z.Next()
	if tt == html.TextToken {
		tt = z.Next()
	}
	if tt != html.EndTagToken {
		return nil, start + 1
	}
	if block != nil {
		block.ContentEnd, block.End = z.start, z.end
	}
	return block, -1
}

// readAttrs reads the attributes of the start tag z has just read, whose
// name is nameLen bytes long, as legacy Attribute nodes.
//
// The tokenizer does not report where attributes are, so each one is found
// again in the tag's source text, in order.
func readAttrs(z *tokenizer, nameLen int, more bool) []svast.Node {
	raw := z.text[z.start:z.end]
	base := z.start

	var attrs []svast.Node
	i := 1 + nameLen
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()

		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		nameStart := i
		nameEnd := min(i+len(key), len(raw))
		i = nameEnd

		j := skipSpace(raw, i)
		if j >= len(raw) || raw[j] != '=' {
			attrs = append(attrs, svast.New("Attribute", base+nameStart, base+nameEnd, map[string]any{
				"name":  raw[nameStart:nameEnd],
				"value": true,
			}))
			continue
		}

		j = skipSpace(raw, j+1)
		valueStart, valueEnd := j, j
		if j < len(raw) && (raw[j] == '"' || raw[j] == '\'') {
			valueStart++
			valueEnd = len(raw)
			if k := strings.IndexByte(raw[valueStart:], raw[j]); k >= 0 {
				valueEnd = valueStart + k
			}
			i = min(valueEnd+1, len(raw))
		} else {
			for valueEnd < len(raw) && !isSpace(raw[valueEnd]) && raw[valueEnd] != '>' {
				valueEnd++
			}
			i = valueEnd
		}

		attrs = append(attrs, svast.New("Attribute", base+nameStart, base+i, map[string]any{
			"name": raw[nameStart:nameEnd],
			"value": svast.NodeList([]svast.Node{
				svast.New("Text", base+valueStart, base+valueEnd, map[string]any{
					"data": string(val),
					"raw":  raw[valueStart:valueEnd],
				}),
			}),
		}))
	}
	return attrs
}

func skipSpace(text string, i int) int {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
