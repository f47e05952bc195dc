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

// Package convert turns a foreign Svelte AST into the unified tree.
package convert

import (
	"fmt"
	"log/slog"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/internal/interval"
	"github.com/bufbuild/svelteast/reporter"
	"github.com/bufbuild/svelteast/scope"
	"github.com/bufbuild/svelteast/source"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/token"
)

// Context is the state shared by one conversion pass over one file.
//
// It is not safe for concurrent use.
type Context struct {
	File     *source.File
	Tokens   *token.Stream
	Comments []*ast.Comment

	bindings *scope.Bindings
	handler  *reporter.Handler
	logger   *slog.Logger

	blocks   interval.Map[int, *Block]
	comments map[int]bool
}

// NewContext creates the context for converting file. A nil handler fails on
// the first error; a nil logger discards.
func NewContext(file *source.File, handler *reporter.Handler, logger *slog.Logger) *Context {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx := &Context{
		File:     file,
		Tokens:   token.NewStream(file),
		bindings: new(scope.Bindings),
		handler:  handler,
		logger:   logger,
		comments: make(map[int]bool),
	}
	for _, block := range scanBlocks(file) {
		ctx.blocks.Insert(block.Start, block.End-1, block)
	}
	return ctx
}

// Code returns the source text.
func (c *Context) Code() string {
	return c.File.Text()
}

// Bindings returns the restore phases registered during this pass.
func (c *Context) Bindings() *scope.Bindings {
	return c.bindings
}

// Logger returns the logger for this pass.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Location converts a byte range into line/column positions. Lines are
// 1-based; columns are 0-based and counted in UTF-16 code units.
func (c *Context) Location(start, end int) ast.SourceLocation {
	return ast.SourceLocation{
		Start: c.position(start),
		End:   c.position(end),
	}
}

func (c *Context) position(offset int) ast.Position {
	loc := c.File.Location(offset, source.UTF16)
	return ast.Position{Line: loc.Line, Column: loc.Column - 1}
}

// Extent returns the range and location of [start, end).
func (c *Context) Extent(start, end int) ast.Extent {
	return ast.Extent{
		Range: ast.Range{start, end},
		Loc:   c.Location(start, end),
	}
}

// ExtentOf returns the extent of a foreign node.
func (c *Context) ExtentOf(n svast.Node) ast.Extent {
	return c.Extent(n.Start(), n.End())
}

// AddToken records a token. Empty ranges are ignored.
func (c *Context) AddToken(kind token.Kind, start, end int) {
	if start >= end {
		return
	}
	c.Tokens.Add(kind, start, end)
}

// AddComment records a code comment. A comment seen twice, because it is
// attached to two nodes, is only recorded once.
func (c *Context) AddComment(kind ast.CommentKind, value string, start, end int) {
	if c.comments[start] {
		return
	}
	c.comments[start] = true
	c.Comments = append(c.Comments, &ast.Comment{
		Kind:  kind,
		Value: value,
		Range: ast.Range{start, end},
		Loc:   c.Location(start, end),
	})
}

// FindBlock returns the top-level <script> or <style> block whose start tag
// begins at start.
//
// Blocks found by the initial scan are looked up first. A tag that scan
// misread, such as one inside a string that swallowed the real tag as raw
// text, is read again from start.
func (c *Context) FindBlock(start int) (*Block, bool) {
	if iv := c.blocks.Get(start); iv.Value != nil && iv.Start == start {
		return *iv.Value, true
	}
	return scanBlockAt(c.File, start)
}

// Errorf reports an error about [start, end) through the context's handler.
//
// The returned error is never nil: conversion cannot continue past a
// malformed node even when the reporter swallows the error.
func (c *Context) Errorf(start, end int, format string, args ...any) error {
	if err := c.handler.HandleErrorf(c.File.Span(start, end), format, args...); err != nil {
		return err
	}
	return reporter.ErrInvalidSource
}

// Warnf reports a warning about [start, end).
func (c *Context) Warnf(start, end int, format string, args ...any) {
	c.handler.HandleWarningf(c.File.Span(start, end), format, args...)
}

// checkOffsets verifies that every offset in the foreign tree lies within
// the source, so that the rest of conversion may slice the source freely.
func (c *Context) checkOffsets(n svast.Node) error {
	if n.IsZero() {
		return nil
	}
	start, hasStart := n.Int("start")
	end, hasEnd := n.Int("end")
	if hasStart && hasEnd && (start < 0 || start > end || end > c.File.Len()) {
		return fmt.Errorf("%s node has range [%d, %d] outside of source of length %d", n.Type(), start, end, c.File.Len())
	}
	for _, key := range n.Keys() {
		if n.IsNode(key) {
			if err := c.checkOffsets(n.Get(key)); err != nil {
				return err
			}
		} else if n.IsList(key) {
			for _, child := range n.List(key) {
				if err := c.checkOffsets(child); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
