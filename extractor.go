package readable

import "strings"

// DefaultContainer is the XPath of the node where the search for the main
// content starts.
const DefaultContainer = "/html/body"

// ExtractOptions configures an extraction.
type ExtractOptions struct {
	// Container is an XPath naming the node that bounds the search for the
	// main content. Defaults to DefaultContainer.
	Container string
}

// ContainerPath returns the configured container or DefaultContainer.
func (o ExtractOptions) ContainerPath() string {
	if strings.TrimSpace(o.Container) == "" {
		return DefaultContainer
	}
	return o.Container
}

// Extractor extracts the main readable content of a document.
type Extractor interface {
	// Extract parses raw HTML and returns its main content as styled runs.
	// Returns ENOCONTAINER if the container cannot be resolved and ENOTEXT
	// if it holds no usable text.
	Extract(html string, opts ExtractOptions) (*Content, error)
}

// ExtractorKind identifies an extractor implementation.
type ExtractorKind int

// Extractor kinds.
const (
	ExtractorHTML ExtractorKind = iota
	ExtractorReadability
	ExtractorTrafilatura
)

// String returns the identifier of the kind.
func (k ExtractorKind) String() string {
	switch k {
	case ExtractorHTML:
		return "html"
	case ExtractorReadability:
		return "readability"
	case ExtractorTrafilatura:
		return "trafilatura"
	}
	return "unknown"
}

// ParseExtractorKind returns the extractor kind named by s.
// Returns EUNSUPPORTED if no extractor has that name.
func ParseExtractorKind(s string) (ExtractorKind, error) {
	switch strings.ToLower(s) {
	case "html":
		return ExtractorHTML, nil
	case "readability":
		return ExtractorReadability, nil
	case "trafilatura":
		return ExtractorTrafilatura, nil
	}
	return 0, Errorf(EUNSUPPORTED, "unsupported extractor %q", s)
}

// Extractors is a lookup table from extractor kind to implementation. It is
// owned by the caller that dispatches requests.
type Extractors map[ExtractorKind]Extractor

// Get returns the extractor for kind.
// Returns EUNSUPPORTED if no extractor is registered.
func (m Extractors) Get(kind ExtractorKind) (Extractor, error) {
	e, ok := m[kind]
	if !ok {
		return nil, Errorf(EUNSUPPORTED, "no extractor registered for %s", kind)
	}
	return e, nil
}
