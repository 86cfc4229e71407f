package mock

import "github.com/erayd/readable"

var _ readable.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readable.Extractor.
type Extractor struct {
	ExtractFn func(html string, opts readable.ExtractOptions) (*readable.Content, error)
}

func (e *Extractor) Extract(html string, opts readable.ExtractOptions) (*readable.Content, error) {
	return e.ExtractFn(html, opts)
}
