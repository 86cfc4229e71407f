package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/erayd/readable"
)

// Ensure LoggingContentService implements readable.ContentService.
var _ readable.ContentService = (*LoggingContentService)(nil)

// LoggingContentService wraps a ContentService with logging.
type LoggingContentService struct {
	next   readable.ContentService
	logger *slog.Logger
}

// NewLoggingContentService creates a new LoggingContentService.
func NewLoggingContentService(next readable.ContentService, logger *slog.Logger) *LoggingContentService {
	return &LoggingContentService{next: next, logger: logger}
}

// CreateContent delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) CreateContent(ctx context.Context, address string, c *readable.Content) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create content",
			"address", address,
			"runs", c.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateContent(ctx, address, c)
}

// FindContent delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) FindContent(ctx context.Context, address string) (c *readable.Content, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find content",
			"address", address,
			"code", readable.ErrorCode(err),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindContent(ctx, address)
}

// Addresses delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) Addresses(ctx context.Context) (addresses []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list addresses",
			"count", len(addresses),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Addresses(ctx)
}
