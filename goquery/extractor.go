// Package goquery implements the HTML extractor: it parses markup into a
// node tree, locates the container of the main content and converts that
// container's text into styled runs.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/erayd/readable"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor extracts styled runs from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns the runs of its main content.
// Malformed markup is tolerated; only a missing container or missing text
// is an error.
func (e *Extractor) Extract(rawHTML string, opts readable.ExtractOptions) (*readable.Content, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "failed to parse HTML: %v", err)
	}

	container, err := locateContainer(doc.Get(0), opts.ContainerPath())
	if err != nil {
		return nil, err
	}

	runs, err := extractRuns(container)
	if err != nil {
		return nil, err
	}
	return readable.NewContent(runs), nil
}
