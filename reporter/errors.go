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

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/svelteast/source"
)

// ErrInvalidSource is a sentinel error that is returned by conversion when
// errors were reported but the configured reporter chose not to abort.
var ErrInvalidSource = errors.New("conversion failed: invalid Svelte source")

// ErrorWithPos is an error about a Svelte source file that includes
// information about the location in the file that caused the error.
//
// The value of Error() will contain both the position and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() source.Span
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and span.
func Error(span source.Spanner, err error) ErrorWithPos {
	return errorWithSpan{span: source.GetSpan(span), underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(span source.Spanner, format string, args ...any) ErrorWithPos {
	return errorWithSpan{span: source.GetSpan(span), underlying: fmt.Errorf(format, args...)}
}

type errorWithSpan struct {
	underlying error
	span       source.Span
}

func (e errorWithSpan) Error() string {
	if e.span.IsZero() {
		return e.underlying.Error()
	}
	// Columns are counted the way a terminal displays the line.
	start := e.span.StartLoc()
	return fmt.Sprintf("%s:%d:%d: %v", e.span.Path(), start.Line, start.Column, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying the span of
// source that caused the error.
func (e errorWithSpan) GetPosition() source.Span {
	return e.span
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSpan) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSpan{}
