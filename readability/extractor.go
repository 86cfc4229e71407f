// Package readability implements a pre-cleaning extractor backed by
// go-readability.
package readability

import (
	"strings"

	"github.com/erayd/readable"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor strips boilerplate with go-readability and passes the cleaned
// article to another extractor for run extraction.
type Extractor struct {
	next readable.Extractor
}

// NewExtractor creates a new Extractor that hands the cleaned article to next.
func NewExtractor(next readable.Extractor) *Extractor {
	return &Extractor{next: next}
}

// Extract cleans rawHTML and extracts runs from the article body. The
// container hint is applied to the cleaned document.
func (e *Extractor) Extract(rawHTML string, opts readable.ExtractOptions) (*readable.Content, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, readable.Errorf(readable.ENOTEXT, "readability: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, readable.Errorf(readable.ENOTEXT, "readability found no article")
	}

	return e.next.Extract(article.Content, opts)
}
