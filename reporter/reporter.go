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

// Package reporter contains the types used for reporting errors from
// conversion. The reporter can decide whether to abort on the first error or
// to keep going and collect more.
package reporter

import (
	"sync"

	"github.com/bufbuild/svelteast/source"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, conversion of the file aborts with that error. If
// the reporter returns nil, conversion continues, which allows several
// problems in the same file to be reported at once.
type ErrorReporter func(ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// are problems that do not prevent a tree from being produced, such as a
// this={...} attribute that cannot be located in the source.
type WarningReporter func(ErrorWithPos)

// Reporter is a sink for errors and warnings.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter creates a new reporter that invokes the given functions on
// error or warning. Either may be nil: a nil ErrorReporter returns every
// error as-is, so the first error aborts.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler is used by the converter to report problems for a single file.
//
// Once the reporter returns an error, every later call returns that same
// error, so callers can simply propagate whatever they are handed.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler wraps rep. A nil rep aborts on the first error and drops
// warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports an error at the given span.
func (h *Handler) HandleErrorf(span source.Spanner, format string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err := h.reporter.Error(Errorf(span, format, args...))
	h.err = err
	return err
}

// HandleError reports err. Errors without a position are not passed to the
// reporter; they abort immediately.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok { //nolint:errorlint
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarningf reports a warning at the given span.
func (h *Handler) HandleWarningf(span source.Spanner, format string, args ...any) {
	// Warnings don't interact with mutable fields.
	h.reporter.Warning(Errorf(span, format, args...))
}

// Error returns the handler's result. It is [ErrInvalidSource] if errors
// were reported but the reporter swallowed all of them.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error the reporter returned, if any.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
