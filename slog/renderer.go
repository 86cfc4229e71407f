package slog

import (
	"log/slog"
	"time"

	"github.com/erayd/readable"
)

// Ensure LoggingRenderer implements readable.Renderer.
var _ readable.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   readable.Renderer
	kind   readable.RendererKind
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next readable.Renderer, kind readable.RendererKind, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, kind: kind, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(c *readable.Content, flags readable.RenderFlag) (out string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render",
			"renderer", r.kind,
			"flags", flags,
			"runs", c.Len(),
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(c, flags)
}

// MimeType delegates to the wrapped renderer.
func (r *LoggingRenderer) MimeType() string {
	return r.next.MimeType()
}
