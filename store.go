package readable

import (
	"context"
	"regexp"
)

var addressRe = regexp.MustCompile(`^[0-9a-f]{16}$`)

// ValidateAddress returns EINVALID unless address is a content address.
func ValidateAddress(address string) error {
	if !addressRe.MatchString(address) {
		return Errorf(EINVALID, "invalid content address %q", address)
	}
	return nil
}

// ContentService stores extracted content under its content address.
type ContentService interface {
	// CreateContent stores content under address. Storing the same address
	// twice replaces the earlier entry.
	CreateContent(ctx context.Context, address string, c *Content) error

	// FindContent retrieves stored content.
	// Returns ENOTFOUND if nothing is stored under address.
	FindContent(ctx context.Context, address string) (*Content, error)

	// Addresses returns every stored address.
	Addresses(ctx context.Context) ([]string, error)
}
