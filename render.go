package readable

import "strings"

// RenderFlag is a set of options that toggle rendering behaviour.
type RenderFlag uint8

// Render flags.
const (
	// RenderMarkup uses HTML tags instead of Markdown delimiters for styles.
	RenderMarkup RenderFlag = 1 << iota

	// RenderParagraphMarkup wraps paragraphs in <p> tags. Requires RenderMarkup.
	RenderParagraphMarkup

	// RenderIndent indents the body of a complete HTML document.
	RenderIndent

	// RenderComplete wraps HTML output in a minimal document.
	RenderComplete

	// RenderPretty indents JSON output.
	RenderPretty

	// RenderFancy is accepted for compatibility with older option strings.
	// Typography is always applied to text output.
	RenderFancy
)

// RenderNone selects the default rendering.
const RenderNone RenderFlag = 0

var renderFlagNames = []struct {
	flag RenderFlag
	name string
}{
	{RenderMarkup, "markup"},
	{RenderParagraphMarkup, "paragraph-markup"},
	{RenderIndent, "indent"},
	{RenderComplete, "complete"},
	{RenderPretty, "pretty"},
	{RenderFancy, "fancy"},
}

// String returns the option names joined with "|", or "none".
func (f RenderFlag) String() string {
	var names []string
	for _, n := range renderFlagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseRenderFlags parses render option names as used in request paths.
// Returns EINVALID for unknown names.
func ParseRenderFlags(names []string) (RenderFlag, error) {
	var flags RenderFlag
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "markup":
			flags |= RenderMarkup
		case "paragraph-markup", "p":
			flags |= RenderParagraphMarkup
		case "indent":
			flags |= RenderIndent
		case "complete":
			flags |= RenderComplete
		case "pretty":
			flags |= RenderPretty
		case "fancy":
			flags |= RenderFancy
		default:
			return RenderNone, Errorf(EINVALID, "unknown render option %q", name)
		}
	}
	return flags, nil
}

// Renderer turns content into an output document.
type Renderer interface {
	// Render returns the rendered document.
	Render(c *Content, flags RenderFlag) (string, error)

	// MimeType returns the media type of rendered documents.
	MimeType() string
}

// RendererKind identifies a renderer implementation.
type RendererKind int

// Renderer kinds.
const (
	RendererMarkdown RendererKind = iota
	RendererHTML
	RendererJSON
	RendererCommonMark
)

// String returns the identifier of the kind.
func (k RendererKind) String() string {
	switch k {
	case RendererMarkdown:
		return "markdown"
	case RendererHTML:
		return "html"
	case RendererJSON:
		return "json"
	case RendererCommonMark:
		return "commonmark"
	}
	return "unknown"
}

// ParseRendererKind returns the renderer kind named by s.
// Returns EUNSUPPORTED if no renderer has that name.
func ParseRendererKind(s string) (RendererKind, error) {
	switch strings.ToLower(s) {
	case "markdown":
		return RendererMarkdown, nil
	case "html":
		return RendererHTML, nil
	case "json":
		return RendererJSON, nil
	case "commonmark":
		return RendererCommonMark, nil
	}
	return 0, Errorf(EUNSUPPORTED, "unsupported renderer %q", s)
}

// Renderers is a lookup table from renderer kind to implementation. It is
// owned by the caller that dispatches requests.
type Renderers map[RendererKind]Renderer

// Get returns the renderer for kind.
// Returns EUNSUPPORTED if no renderer is registered.
func (m Renderers) Get(kind RendererKind) (Renderer, error) {
	r, ok := m[kind]
	if !ok {
		return nil, Errorf(EUNSUPPORTED, "no renderer registered for %s", kind)
	}
	return r, nil
}
