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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/svelteast/internal/compat"
	"github.com/bufbuild/svelteast/source"
	"github.com/bufbuild/svelteast/svast"
)

func TestScanBlocks(t *testing.T) {
	t.Parallel()

	text := `<!-- <script>no</script> --><Script lang="ts" defer>x</sCRIPT><p>a</p><style/>`
	blocks := scanBlocks(source.NewFile("App.svelte", text))
	require.Len(t, blocks, 2)

	script := blocks[0]
	assert.Equal(t, "script", script.Tag)
	assert.Equal(t, 28, script.Start)
	assert.Equal(t, "x", text[script.ContentStart:script.ContentEnd])
	assert.Equal(t, `<Script lang="ts" defer>x</sCRIPT>`, text[script.Start:script.End])

	require.Len(t, script.Attrs, 2)
	lang := script.Attrs[0]
	assert.Equal(t, "Attribute", lang.Type())
	assert.Equal(t, "lang", lang.Str("name"))
	assert.Equal(t, `lang="ts"`, text[lang.Start():lang.End()])
	parts, boolean := compat.AttributeValue(lang)
	assert.False(t, boolean)
	require.Len(t, parts, 1)
	assert.Equal(t, "ts", text[parts[0].Start():parts[0].End()])

	deferAttr := script.Attrs[1]
	assert.Equal(t, "defer", deferAttr.Str("name"))
	_, boolean = compat.AttributeValue(deferAttr)
	assert.True(t, boolean)

	style := blocks[1]
	assert.Equal(t, "style", style.Tag)
	assert.Equal(t, "<style/>", text[style.Start:style.End])
	assert.Equal(t, style.End, style.ContentStart)
	assert.Equal(t, style.End, style.ContentEnd)
	assert.Empty(t, style.Attrs)
}

func TestScanBlocksUnterminated(t *testing.T) {
	t.Parallel()

	text := `<style>a{}</style><script>let x`
	blocks := scanBlocks(source.NewFile("App.svelte", text))
	require.Len(t, blocks, 1)
	assert.Equal(t, "style", blocks[0].Tag)

	assert.Empty(t, scanBlocks(source.NewFile("App.svelte", `<scripts></scripts><script a="`)))

	// A tag with no end tag is skipped, and the scan goes on.
	text = `<p>{"<style>"}</p><title>x<script>let x=1;</script>`
	blocks = scanBlocks(source.NewFile("App.svelte", text))
	require.Len(t, blocks, 1)
	assert.Equal(t, "script", blocks[0].Tag)
	assert.Equal(t, 26, blocks[0].Start)
	assert.Equal(t, "let x=1;", text[blocks[0].ContentStart:blocks[0].ContentEnd])
}

func TestScanBlocksAttributes(t *testing.T) {
	t.Parallel()

	text := `<script context='module' lang=ts /><style title="a&amp;b"></style>`
	blocks := scanBlocks(source.NewFile("App.svelte", text))
	require.Len(t, blocks, 2)

	script := blocks[0]
	assert.Equal(t, script.End, script.ContentStart)
	require.Len(t, script.Attrs, 2)
	assert.Equal(t, "context='module'", text[script.Attrs[0].Start():script.Attrs[0].End()])
	assert.Equal(t, "lang=ts", text[script.Attrs[1].Start():script.Attrs[1].End()])
	parts, _ := compat.AttributeValue(script.Attrs[1])
	require.Len(t, parts, 1)
	assert.Equal(t, "ts", parts[0].Str("data"))

	style := blocks[1]
	assert.Equal(t, style.ContentStart, style.ContentEnd)
	require.Len(t, style.Attrs, 1)
	parts, _ = compat.AttributeValue(style.Attrs[0])
	require.Len(t, parts, 1)
	assert.Equal(t, "a&b", parts[0].Str("data"))
	assert.Equal(t, "a&amp;b", parts[0].Str("raw"))
	assert.Equal(t, "a&amp;b", text[parts[0].Start():parts[0].End()])
}

func TestFindBlock(t *testing.T) {
	t.Parallel()

	ctx := NewContext(source.NewFile("App.svelte", "<div></div><script></script>"), nil, nil)
	block, ok := ctx.FindBlock(11)
	require.True(t, ok)
	assert.Equal(t, 28, block.End)

	_, ok = ctx.FindBlock(12)
	assert.False(t, ok)
	_, ok = ctx.FindBlock(0)
	assert.False(t, ok)

	// The string's <script> runs up to the real end tag, hiding the real
	// start tag from the scan.
	text := `<p>{"<script>"}</p><script>let x=1;</script>`
	ctx = NewContext(source.NewFile("App.svelte", text), nil, nil)
	block, ok = ctx.FindBlock(19)
	require.True(t, ok)
	assert.Equal(t, "script", block.Tag)
	assert.Equal(t, len(text), block.End)
	assert.Equal(t, "let x=1;", text[block.ContentStart:block.ContentEnd])
}

func TestSpliceByPosition(t *testing.T) {
	t.Parallel()

	a := svast.New("Text", 0, 5, nil)
	b := svast.New("Text", 10, 20, nil)
	starts := func(nodes []svast.Node) []int {
		var out []int
		for _, n := range nodes {
			out = append(out, n.Start())
		}
		return out
	}

	// Ending right where a child begins goes before it.
	options := svast.New("SvelteOptions", 5, 10, nil)
	assert.Equal(t, []int{0, 5, 10}, starts(spliceByPosition([]svast.Node{a, b}, options)))

	options = svast.New("SvelteOptions", 20, 30, nil)
	assert.Equal(t, []int{0, 10, 20}, starts(spliceByPosition([]svast.Node{a, b}, options)))

	options = svast.New("SvelteOptions", 0, 0, nil)
	assert.Equal(t, []int{0, 0, 10}, starts(spliceByPosition([]svast.Node{a, b}, options)))
	assert.Equal(t, []int{0}, starts(spliceByPosition(nil, options)))
}

func TestExtractElementTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		end         int
		startTagEnd int
		selfClosing bool
		endTag      []int
	}{
		{name: "pair", text: "<p>x</p>", end: 8, startTagEnd: 3, endTag: []int{4, 8}},
		{name: "void", text: "<br><p></p>", end: 4, startTagEnd: 4},
		{name: "self-closing", text: "<p />", end: 5, startTagEnd: 5, selfClosing: true},
		{name: "implicitly-closed", text: "<li>a<li>b", end: 5, startTagEnd: 4},
		{name: "spaced-end-tag", text: "<p></p >", end: 8, startTagEnd: 3, endTag: []int{3, 8}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx := NewContext(source.NewFile("App.svelte", test.text), nil, nil)
			stage := newStage(0, test.end, nil)
			require.NoError(t, extractElementTags(stage, ctx, nameToken(ctx, "p")))

			assert.Equal(t, test.startTagEnd, stage.startTagEnd)
			assert.Equal(t, test.selfClosing, stage.selfClosing)
			if test.endTag == nil {
				assert.False(t, stage.hasEndTag)
				assert.Nil(t, stage.endTag(ctx))
			} else {
				assert.True(t, stage.hasEndTag)
				assert.Equal(t, test.endTag, []int{stage.endTagStart, stage.endTagEnd})
			}
		})
	}

	ctx := NewContext(source.NewFile("App.svelte", "<p"), nil, nil)
	assert.Error(t, extractElementTags(newStage(0, 2, nil), ctx, nameToken(ctx, "p")))
}
