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

package svelteast

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bufbuild/svelteast/ast"
	"github.com/bufbuild/svelteast/internal/convert"
	"github.com/bufbuild/svelteast/internal/ctxlog"
	"github.com/bufbuild/svelteast/internal/slicesx"
	"github.com/bufbuild/svelteast/reporter"
	"github.com/bufbuild/svelteast/scope"
	"github.com/bufbuild/svelteast/source"
	"github.com/bufbuild/svelteast/svast"
	"github.com/bufbuild/svelteast/token"
	"github.com/bufbuild/svelteast/visitorkeys"
)

// Options configures [Convert]. The zero value is usable.
type Options struct {
	// The path of the component, used in error messages.
	Path string
	// Computes the scopes of the component's code. If unspecified,
	// [scope.Default] is used.
	Analyzer scope.Analyzer
	// A custom error and warning reporter. If unspecified, conversion fails
	// on the first error and warnings are dropped.
	Reporter reporter.Reporter
	// Receives debug records for each phase of conversion. If unspecified,
	// nothing is logged.
	Logger *slog.Logger
}

// Result is a converted component.
type Result struct {
	// The converted component. Its top-level body is in source order, so
	// a module script written before the instance script comes first.
	Program *ast.Program

	Tokens   *token.Stream
	Comments []*ast.Comment

	// The scopes of the component's code. The module scope, and every other
	// scope of the component as a whole, has Program as its block; the
	// global scope keeps the analyzed program, for reference trackers that
	// look up imports through it.
	ScopeManager *scope.Manager

	// The keys for traversing Program. This is always [visitorkeys.KEYS].
	VisitorKeys visitorkeys.Keys
}

// Convert converts the foreign tree of a single component, whose source is
// text. Offsets in root must be byte offsets; see [svast.Root.ToByteOffsets].
func Convert(ctx context.Context, text string, root *svast.Root, opts Options) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, opts.Logger)
	h := reporter.NewHandler(opts.Reporter)
	res, err := convertFile(ctx, source.NewFile(opts.Path, text), root, h, opts.Analyzer)
	if err != nil {
		return nil, err
	}
	// A reporter may have swallowed some errors.
	if err := h.Error(); err != nil {
		return nil, err
	}
	return res, nil
}

func convertFile(ctx context.Context, file *source.File, root *svast.Root, h *reporter.Handler, analyzer scope.Analyzer) (*Result, error) {
	if analyzer == nil {
		analyzer = scope.Default
	}
	logger := ctxlog.FromContext(ctx).With("path", file.Path())

	c := convert.NewContext(file, h, logger)
	program, err := convert.ConvertRoot(root, c)
	if err != nil {
		return nil, err
	}
	logger.Debug("converted root", "nodes", len(program.Body), "tokens", c.Tokens.Count())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scripts, err := convert.ConvertScripts(root, program, c)
	if err != nil {
		return nil, err
	}
	analyzed := analyzedProgram(c, scripts)
	mgr, err := analyzer.Analyze(analyzed)
	if err != nil {
		return nil, h.HandleError(fmt.Errorf("%s: %w", file.Path(), err))
	}
	if mgr == nil || mgr.GlobalScope == nil {
		return nil, h.HandleError(fmt.Errorf("%s: analyzer returned no global scope", file.Path()))
	}
	logger.Debug("analyzed scopes", "scopes", len(mgr.Scopes))

	convert.Attach(scripts)
	c.Bindings().Run(analyzed, mgr, c.Tokens, c.Comments)
	logger.Debug("restored scopes", "phases", c.Bindings().Len())

	program.SortBody()
	slices.SortStableFunc(c.Comments, func(a, b *ast.Comment) int {
		return a.Range.Start() - b.Range.Start()
	})
	program.Comments = c.Comments
	c.Tokens.Freeze()

	return &Result{
		Program:      program,
		Tokens:       c.Tokens,
		Comments:     program.Comments,
		ScopeManager: mgr,
		VisitorKeys:  visitorkeys.KEYS,
	}, nil
}

// analyzedProgram builds the program the analyzer sees: every statement of
// every code region, in source order, in a Program spanning the whole
// source. It stands in for the foreign root as the block of the scopes of
// the component as a whole.
func analyzedProgram(c *convert.Context, scripts []convert.Script) *ast.ESNode {
	// Each region's statements are already in source order, and regions
	// never overlap.
	bodies := make([][]ast.Node, 0, len(scripts))
	for _, s := range scripts {
		bodies = append(bodies, s.Body)
	}
	body := slicesx.MergeKey(bodies, func(n *ast.Node) int { return (*n).Range().Start() })
	return ast.NewESNode("Program", c.Extent(0, c.File.Len()),
		ast.ESField{Key: "body", Value: body},
		ast.ESField{Key: "sourceType", Value: "module"},
	)
}
