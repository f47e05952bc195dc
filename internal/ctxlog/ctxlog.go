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

// Package ctxlog passes a [slog.Logger] through a [context.Context].
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to prevent collisions with context keys from other
// packages.
type key struct{}

var loggerKey = key{}

// discard is returned when a context carries no logger.
var discard = slog.New(slog.DiscardHandler)

// WithLogger returns a new context with the provided logger embedded. A nil
// logger embeds one that discards every record.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = discard
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. If there is none, the
// returned logger discards every record.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return discard
}
