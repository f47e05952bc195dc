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

package reporter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/svelteast/reporter"
	"github.com/bufbuild/svelteast/source"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	file := source.NewFile("App.svelte", "<div>\n  <p>{x}</p>\n</div>")
	err := reporter.Errorf(file.Span(11, 14), "unexpected %s", "mustache")
	assert.Equal(t, "App.svelte:2:6: unexpected mustache", err.Error())
	assert.Equal(t, "{x}", err.GetPosition().Text())
	assert.Equal(t, "unexpected mustache", err.Unwrap().Error())

	// Wide characters take two columns.
	file = source.NewFile("App.svelte", "<p>日本</p><x>")
	err = reporter.Errorf(file.Span(13, 16), "unknown element")
	assert.Equal(t, "App.svelte:1:12: unknown element", err.Error())

	base := errors.New("boom")
	err = reporter.Error(source.Span{}, base)
	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestHandlerAbortsOnFirstError(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.svelte", "<script>")
	h := reporter.NewHandler(nil)
	first := h.HandleErrorf(file.Span(0, 8), "unterminated script")
	require.Error(t, first)
	second := h.HandleErrorf(file.Span(0, 1), "something else")
	assert.Equal(t, first, second)
	assert.Equal(t, first, h.Error())
}

func TestHandlerCollects(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.svelte", "<a></b>")
	var errs, warnings []string
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			errs = append(errs, err.Error())
			return nil
		},
		func(err reporter.ErrorWithPos) {
			warnings = append(warnings, err.Error())
		},
	)
	h := reporter.NewHandler(rep)
	require.NoError(t, h.HandleErrorf(file.Span(3, 7), "mismatched end tag"))
	require.NoError(t, h.HandleErrorf(file.Span(0, 3), "unclosed element"))
	h.HandleWarningf(file.Span(1, 2), "unknown node")

	assert.Equal(t, []string{
		"a.svelte:1:4: mismatched end tag",
		"a.svelte:1:1: unclosed element",
	}, errs)
	assert.Equal(t, []string{"a.svelte:1:2: unknown node"}, warnings)
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
	assert.NoError(t, h.ReporterError())
}

func TestHandlerPlainError(t *testing.T) {
	t.Parallel()

	called := false
	h := reporter.NewHandler(reporter.NewReporter(func(reporter.ErrorWithPos) error {
		called = true
		return nil
	}, nil))
	base := errors.New("io failure")
	assert.Equal(t, base, h.HandleError(base))
	assert.False(t, called)
	assert.Equal(t, base, h.Error())
}
