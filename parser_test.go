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

package svelteast_test

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/svelteast"
	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/reporter"
)

// Offsets in compiler output count UTF-16 code units.
var files = map[string]string{
	"a.svelte":        "<p>é</p>",
	"a.svelte.json":   `{"html":{"type":"Fragment","start":0,"end":8,"children":[{"type":"Element","name":"p","start":0,"end":8,"attributes":[],"children":[{"type":"Text","start":3,"end":4,"data":"é"}]}]}}`,
	"b.svelte":        "<b/>",
	"b.svelte.json":   `{"html":{"type":"Fragment","start":0,"end":4,"children":[{"type":"Element","name":"b","start":0,"end":4,"attributes":[],"children":[]}]}}`,
	"bad.svelte":      "<x>",
	"bad.svelte.json": `{"html":{"type":"Fragment","start":0,"end":3,"children":[{"type":"Mystery","start":0,"end":3}]}}`,
}

func accessor(prefix string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		data, ok := files[strings.TrimPrefix(path, prefix)]
		if !ok || !strings.HasPrefix(path, prefix) {
			return nil, fs.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(data)), nil
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	resolver := svelteast.ResolverFunc(func(path string) (svelteast.SearchResult, error) {
		calls.Add(1)
		return (&svelteast.SourceResolver{Accessor: accessor("")}).FindFileByPath(path)
	})
	parser := svelteast.Parser{Resolver: resolver, MaxParallelism: 2}

	results, err := parser.Parse(context.Background(), "a.svelte", "b.svelte", "a.svelte")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Same(t, results[0], results[2])
	assert.Equal(t, int32(2), calls.Load())

	a := results[0].Program
	assert.Equal(t, "a.svelte", a.Tokens.Path())
	assert.Equal(t, ast.Range{0, 9}, a.Range())
	p := a.Body[0].(*ast.Element) //nolint:errcheck
	assert.Equal(t, ast.Range{0, 9}, p.Range())
	text := p.Children[0].(*ast.Text) //nolint:errcheck
	assert.Equal(t, "é", text.Value)
	assert.Equal(t, ast.Range{3, 5}, text.Range())
	assert.Equal(t, ast.Position{Line: 1, Column: 4}, text.Loc().End)

	b := results[1].Program
	assert.Equal(t, "b", b.Body[0].(*ast.Element).TagName()) //nolint:errcheck
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	parser := svelteast.Parser{Resolver: &svelteast.SourceResolver{Accessor: accessor("")}}
	results, err := parser.Parse(context.Background())
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	parser := svelteast.Parser{Resolver: &svelteast.SourceResolver{Accessor: accessor("")}}

	_, err := parser.Parse(context.Background(), "a.svelte", "missing.svelte")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = parser.Parse(context.Background(), "bad.svelte", "a.svelte")
	require.Error(t, err)
	assert.Equal(t, `bad.svelte:1:1: unknown markup node type "Mystery"`, err.Error())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = parser.Parse(ctx, "a.svelte")
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseReporter(t *testing.T) {
	t.Parallel()

	var reported []reporter.ErrorWithPos
	parser := svelteast.Parser{
		Resolver: &svelteast.SourceResolver{Accessor: accessor("")},
		Reporter: reporter.NewReporter(func(err reporter.ErrorWithPos) error {
			reported = append(reported, err)
			return nil
		}, nil),
		MaxParallelism: 1,
	}

	_, err := parser.Parse(context.Background(), "bad.svelte")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.Len(t, reported, 1)
	assert.Equal(t, "bad.svelte", reported[0].GetPosition().Path())
}

func TestParseLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	parser := svelteast.Parser{
		Resolver: &svelteast.SourceResolver{Accessor: accessor("")},
		Logger:   slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	_, err := parser.Parse(context.Background(), "b.svelte")
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "msg=\"resolved file\" path=b.svelte version=legacy")
	assert.Contains(t, logs, "msg=\"converted root\" path=b.svelte nodes=1 tokens=1")
	assert.Contains(t, logs, "msg=\"analyzed scopes\" path=b.svelte scopes=2")
}

func TestSourceResolver(t *testing.T) {
	t.Parallel()

	resolver := &svelteast.SourceResolver{
		ImportPaths: []string{"lib", "src"},
		Accessor:    accessor("src/"),
	}
	res, err := resolver.FindFileByPath("b.svelte")
	require.NoError(t, err)
	src, err := io.ReadAll(res.Source)
	require.NoError(t, err)
	assert.Equal(t, "<b/>", string(src))
	tree, err := io.ReadAll(res.AST)
	require.NoError(t, err)
	assert.Equal(t, files["b.svelte.json"], string(tree))

	_, err = resolver.FindFileByPath("c.svelte")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	_, err := svelteast.CompositeResolver(nil).FindFileByPath("a.svelte")
	require.ErrorIs(t, err, fs.ErrNotExist)

	failing := svelteast.ResolverFunc(func(string) (svelteast.SearchResult, error) {
		return svelteast.SearchResult{}, assert.AnError
	})
	resolver := svelteast.CompositeResolver{failing, &svelteast.SourceResolver{Accessor: accessor("")}}
	res, err := resolver.FindFileByPath("a.svelte")
	require.NoError(t, err)
	assert.NotNil(t, res.Source)

	_, err = resolver.FindFileByPath("missing.svelte")
	require.ErrorIs(t, err, assert.AnError)
}
