// Package fs provides file-based storage for extracted content.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erayd/readable"
)

const ext = ".json"

// Ensure ContentService implements readable.ContentService at compile time.
var _ readable.ContentService = (*ContentService)(nil)

// ContentService implements readable.ContentService with one JSON file per
// address in a single directory. Files are written to a temporary file and
// renamed into place, so readers never see a partial entry.
type ContentService struct {
	dir string
}

// NewContentService creates a new ContentService storing files in dir.
func NewContentService(dir string) *ContentService {
	return &ContentService{dir: dir}
}

func (s *ContentService) path(address string) string {
	return filepath.Join(s.dir, address+ext)
}

// CreateContent writes c to <dir>/<address>.json, replacing any earlier entry.
func (s *ContentService) CreateContent(ctx context.Context, address string, c *readable.Content) error {
	if err := readable.ValidateAddress(address); err != nil {
		return err
	}
	if c == nil {
		return readable.Errorf(readable.EINVALID, "content required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, address+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(address))
}

// FindContent reads the content stored under address.
func (s *ContentService) FindContent(ctx context.Context, address string) (*readable.Content, error) {
	if err := readable.ValidateAddress(address); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := os.ReadFile(s.path(address))
	if errors.Is(err, os.ErrNotExist) {
		return nil, readable.Errorf(readable.ENOTFOUND, "content not found")
	}
	if err != nil {
		return nil, err
	}
	return readable.DecodeContent(body)
}

// Addresses lists the stored addresses in lexical order. Files that are not
// content entries are ignored.
func (s *ContentService) Addresses(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var addresses []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		address := strings.TrimSuffix(e.Name(), ext)
		if readable.ValidateAddress(address) != nil {
			continue
		}
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses, nil
}
