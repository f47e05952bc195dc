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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/svelteast/internal/ctxlog"
	"github.com/bufbuild/svelteast/reporter"
	"github.com/bufbuild/svelteast/scope"
	"github.com/bufbuild/svelteast/source"
	"github.com/bufbuild/svelteast/svast"
)

// Parser converts many components, in parallel.
//
// Each component is converted in its own pass: its inputs are located by
// the resolver, its foreign tree is decoded, and it is converted as by
// [Convert].
type Parser struct {
	// Resolves paths into component sources and compiler output. This is
	// the only required field.
	Resolver Resolver
	// The maximum parallelism to use when converting. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the whole parse after encountering
	// any error and ignores all warnings.
	Reporter reporter.Reporter
	// Computes the scopes of each component's code. If unspecified,
	// [scope.Default] is used.
	Analyzer scope.Analyzer
	// Receives debug records for each file and phase. If unspecified,
	// nothing is logged.
	Logger *slog.Logger
}

// Parse converts the given components. Results are returned in the order of
// files; a path given twice is converted once.
func (p *Parser) Parse(ctx context.Context, files ...string) ([]*Result, error) {
	if len(files) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = ctxlog.WithLogger(ctx, p.Logger)

	par := p.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		p:       p,
		h:       reporter.NewHandler(p.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.parse(ctx, f)
	}

	// Every task finishes promptly once ctx is done, so there is no need to
	// select on it here.
	out := make([]*Result, len(files))
	var firstErr error
	for i, r := range results {
		<-r.ready
		switch {
		case r.err == nil:
			out[i] = r.res
		case firstErr == nil, errors.Is(firstErr, context.Canceled):
			// Files cancelled because another one failed report the
			// failure, not the cancellation.
			firstErr = r.err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	// A reporter may have swallowed some errors.
	if err := e.h.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

type result struct {
	ready chan struct{}
	res   *Result
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(res *Result) {
	r.res = res
	close(r.ready)
}

type executor struct {
	p      *Parser
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) parse(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doParse(ctx, file, r)
	}()
	return r
}

func (e *executor) doParse(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	res, err := e.convert(ctx, file)
	if err != nil {
		// The first failure aborts every other file.
		e.cancel()
		r.fail(err)
		return
	}
	r.complete(res)
}

func (e *executor) convert(ctx context.Context, file string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	sr, err := e.p.Resolver.FindFileByPath(file)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Don't leave readers open if they can be closed.
		for _, rd := range []io.Reader{sr.Source, sr.AST} {
			if c, ok := rd.(io.Closer); ok {
				_ = c.Close()
			}
		}
	}()

	if sr.Source == nil {
		return nil, fmt.Errorf("search result for %q has no source", file)
	}
	text, err := io.ReadAll(sr.Source)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", file, err)
	}

	root := sr.Root
	if root == nil {
		if sr.AST == nil {
			return nil, fmt.Errorf("search result for %q has no compiler output", file)
		}
		data, err := io.ReadAll(sr.AST)
		if err != nil {
			return nil, fmt.Errorf("reading compiler output for %q: %w", file, err)
		}
		root, err = svast.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding compiler output for %q: %w", file, err)
		}
		root.ToByteOffsets(string(text))
	}
	logger.Debug("resolved file", "path", file, "version", root.Version())

	return convertFile(ctx, source.NewFile(file, string(text)), root, e.h, e.p.Analyzer)
}
