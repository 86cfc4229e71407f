package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/erayd/readable"
)

// Compile-time interface verification.
var _ readable.ContentService = (*ContentService)(nil)

// ContentService implements readable.ContentService using SQLite. Content is
// stored in its JSON form.
type ContentService struct {
	db *DB
}

// NewContentService creates a new ContentService.
func NewContentService(db *DB) *ContentService {
	return &ContentService{db: db}
}

// CreateContent stores c under address, replacing any earlier entry.
func (s *ContentService) CreateContent(ctx context.Context, address string, c *readable.Content) error {
	if err := readable.ValidateAddress(address); err != nil {
		return err
	}
	if c == nil {
		return readable.Errorf(readable.EINVALID, "content required")
	}

	body, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	_, err = s.db.db.ExecContext(ctx, `
		INSERT INTO contents (address, body, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(address) DO UPDATE SET body = excluded.body
	`, address, string(body), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store content: %w", err)
	}
	return nil
}

// FindContent retrieves the content stored under address.
func (s *ContentService) FindContent(ctx context.Context, address string) (*readable.Content, error) {
	if err := readable.ValidateAddress(address); err != nil {
		return nil, err
	}

	var body string
	err := s.db.db.QueryRowContext(ctx, `
		SELECT body FROM contents WHERE address = ?
	`, address).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, readable.Errorf(readable.ENOTFOUND, "content not found")
	}
	if err != nil {
		return nil, err
	}

	return readable.DecodeContent([]byte(body))
}

// Addresses returns every stored address, oldest first.
func (s *ContentService) Addresses(ctx context.Context) ([]string, error) {
	rows, err := s.db.db.QueryContext(ctx, `
		SELECT address FROM contents ORDER BY created_at ASC, address ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []string
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}
