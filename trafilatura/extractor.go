// Package trafilatura implements a pre-cleaning extractor backed by
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/erayd/readable"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor isolates the main content with go-trafilatura and passes it to
// another extractor for run extraction.
type Extractor struct {
	next readable.Extractor
}

// NewExtractor creates a new Extractor that hands the main content to next.
func NewExtractor(next readable.Extractor) *Extractor {
	return &Extractor{next: next}
}

// Extract cleans rawHTML and extracts runs from the main content node. The
// container hint is applied to the cleaned document.
func (e *Extractor) Extract(rawHTML string, opts readable.ExtractOptions) (*readable.Content, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, readable.Errorf(readable.ENOTEXT, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, readable.Errorf(readable.ENOTEXT, "trafilatura found no content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}
	return e.next.Extract(contentHTML, opts)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", readable.Errorf(readable.EINTERNAL, "render content node: %v", err)
	}
	return buf.String(), nil
}
