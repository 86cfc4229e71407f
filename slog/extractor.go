// Package slog provides logging decorators for readable services.
package slog

import (
	"log/slog"
	"time"

	"github.com/erayd/readable"
)

// Ensure LoggingExtractor implements readable.Extractor.
var _ readable.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   readable.Extractor
	kind   readable.ExtractorKind
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next readable.Extractor, kind readable.ExtractorKind, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, kind: kind, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, opts readable.ExtractOptions) (c *readable.Content, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"extractor", e.kind,
			"container", opts.ContainerPath(),
			"bytes", len(html),
			"runs", c.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, opts)
}
