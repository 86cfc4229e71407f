package bloom

import (
	"context"

	"github.com/erayd/readable"
)

// Ensure ContentService implements readable.ContentService at compile time.
var _ readable.ContentService = (*ContentService)(nil)

// ContentService decorates a readable.ContentService. Lookups for addresses
// the filter has never seen fail with ENOTFOUND without reaching the store.
//
// The filter only learns about writes made through this service, so it must
// be seeded from the store before use and the store must not be written to
// by anything else.
type ContentService struct {
	next   readable.ContentService
	filter *Filter
}

// NewContentService creates a new ContentService in front of next.
func NewContentService(next readable.ContentService, filter *Filter) *ContentService {
	return &ContentService{next: next, filter: filter}
}

// Seed adds every address already in the store to the filter.
func (s *ContentService) Seed(ctx context.Context) error {
	addresses, err := s.next.Addresses(ctx)
	if err != nil {
		return err
	}
	for _, a := range addresses {
		s.filter.Add(a)
	}
	return nil
}

// CreateContent stores c and records its address.
func (s *ContentService) CreateContent(ctx context.Context, address string, c *readable.Content) error {
	if err := s.next.CreateContent(ctx, address, c); err != nil {
		return err
	}
	s.filter.Add(address)
	return nil
}

// FindContent retrieves content, skipping the store on a definite miss.
func (s *ContentService) FindContent(ctx context.Context, address string) (*readable.Content, error) {
	if err := readable.ValidateAddress(address); err != nil {
		return nil, err
	}
	if !s.filter.Test(address) {
		return nil, readable.Errorf(readable.ENOTFOUND, "content not found")
	}
	return s.next.FindContent(ctx, address)
}

// Addresses returns every stored address.
func (s *ContentService) Addresses(ctx context.Context) ([]string, error) {
	return s.next.Addresses(ctx)
}
