// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

// Package logging provides structured logging for the build tools.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// toolHandler wraps a slog.Handler to stamp every record with the tool
// identity, so piped build logs from several tools stay attributable.
type toolHandler struct {
	handler slog.Handler
	service string
	version string
}

// Handle adds the tool identity to the log record.
func (h *toolHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(
		slog.String("service", h.service),
		slog.String("version", h.version),
	)

	//nolint:wrapcheck // Handler interface requires unwrapped error passthrough
	return h.handler.Handle(ctx, r)
}

// Enabled returns true if the level is enabled.
func (h *toolHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs returns a new handler with the given attributes.
func (h *toolHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &toolHandler{
		handler: h.handler.WithAttrs(attrs),
		service: h.service,
		version: h.version,
	}
}

// WithGroup returns a new handler with the given group.
func (h *toolHandler) WithGroup(name string) slog.Handler {
	return &toolHandler{
		handler: h.handler.WithGroup(name),
		service: h.service,
		version: h.version,
	}
}

// Setup creates a configured slog.Logger.
// format: "text" or "json" (defaults to "text" if empty, the right default
// for an interactive build tool).
// If w is nil, writes to os.Stderr.
func Setup(service, version, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var baseHandler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if format == "json" {
		baseHandler = slog.NewJSONHandler(w, opts)
	} else {
		baseHandler = slog.NewTextHandler(w, opts)
	}

	handler := &toolHandler{
		handler: baseHandler,
		service: service,
		version: version,
	}

	return slog.New(handler)
}

// SetDefault sets up and configures the default logger.
func SetDefault(service, version, format string) {
	logger := Setup(service, version, format, nil)
	slog.SetDefault(logger)
}
