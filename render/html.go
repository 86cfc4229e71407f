package render

import (
	"github.com/erayd/readable"
	"github.com/muesli/reflow/indent"
)

const (
	documentHead = "<!DOCTYPE html>\n<html>\n  <head></head>\n  <body>\n"
	documentTail = "\n  </body>\n</html>\n"
	bodyIndent   = 4
)

// Ensure HTMLRenderer implements readable.Renderer at compile time.
var _ readable.Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer renders content as HTML paragraphs. With RenderComplete the
// paragraphs are wrapped in a minimal document.
type HTMLRenderer struct {
	markdown *MarkdownRenderer
}

// NewHTMLRenderer creates a new HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{markdown: NewMarkdownRenderer()}
}

// MimeType returns the media type of rendered documents.
func (r *HTMLRenderer) MimeType() string {
	return HTMLMimeType
}

// Render always emits markup and paragraph markup.
func (r *HTMLRenderer) Render(c *readable.Content, flags readable.RenderFlag) (string, error) {
	body, err := r.markdown.Render(c, flags|readable.RenderMarkup|readable.RenderParagraphMarkup)
	if err != nil {
		return "", err
	}
	if flags&readable.RenderComplete == 0 {
		return body, nil
	}
	if flags&readable.RenderIndent != 0 {
		body = indent.String(body, bodyIndent)
	}
	return documentHead + body + documentTail, nil
}
