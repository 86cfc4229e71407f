package mock

import (
	"context"

	"github.com/erayd/readable"
)

var _ readable.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of readable.ContentService.
type ContentService struct {
	CreateContentFn func(ctx context.Context, address string, c *readable.Content) error
	FindContentFn   func(ctx context.Context, address string) (*readable.Content, error)
	AddressesFn     func(ctx context.Context) ([]string, error)
}

func (s *ContentService) CreateContent(ctx context.Context, address string, c *readable.Content) error {
	return s.CreateContentFn(ctx, address, c)
}

func (s *ContentService) FindContent(ctx context.Context, address string) (*readable.Content, error) {
	return s.FindContentFn(ctx, address)
}

func (s *ContentService) Addresses(ctx context.Context) ([]string, error) {
	return s.AddressesFn(ctx)
}
