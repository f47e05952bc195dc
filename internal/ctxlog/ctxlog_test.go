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

package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/svelteast/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Debug("converted", "path", "App.svelte")
	assert.Contains(t, buf.String(), "msg=converted path=App.svelte")
}

func TestFromContextMissing(t *testing.T) {
	t.Parallel()

	logger := ctxlog.FromContext(context.Background())
	assert.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))

	logger = ctxlog.FromContext(ctxlog.WithLogger(context.Background(), nil))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
