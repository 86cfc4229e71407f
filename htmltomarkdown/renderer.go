// Package htmltomarkdown implements the CommonMark renderer: content is
// rendered to HTML paragraphs and converted with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/erayd/readable"
	"github.com/erayd/readable/render"
)

// Ensure Renderer implements readable.Renderer at compile time.
var _ readable.Renderer = (*Renderer)(nil)

// Renderer renders content as CommonMark.
type Renderer struct {
	html *render.HTMLRenderer
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)
	return &Renderer{html: render.NewHTMLRenderer(), conv: conv}
}

// MimeType returns the media type of rendered documents.
func (r *Renderer) MimeType() string {
	return render.MarkdownMimeType
}

// Render converts the HTML rendering of c. Document flags are ignored.
func (r *Renderer) Render(c *readable.Content, flags readable.RenderFlag) (string, error) {
	fragment, err := r.html.Render(c, flags&^(readable.RenderComplete|readable.RenderIndent))
	if err != nil {
		return "", err
	}
	if fragment == "" {
		return "", nil
	}

	result, err := r.conv.ConvertString(fragment)
	if err != nil {
		return "", readable.Errorf(readable.EINTERNAL, "convert to commonmark: %v", err)
	}
	return strings.TrimSpace(result), nil
}
