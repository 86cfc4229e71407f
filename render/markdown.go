// Package render implements the Markdown, HTML and JSON renderers.
package render

import (
	"strings"

	"github.com/erayd/readable"
	"github.com/erayd/readable/typography"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Mime types of rendered documents.
const (
	MarkdownMimeType = "text/markdown"
	HTMLMimeType     = "text/html"
	JSONMimeType     = "application/json+context"
)

// Output is soft-wrapped at lineWidth; words longer than hardWidth are cut.
const (
	lineWidth = 75
	hardWidth = 100
)

// styleToken is how one style flag is written in each output mode.
type styleToken struct {
	flag     readable.Format
	markdown string
	tag      string
}

// styleTable fixes the nesting order of styles: opened top to bottom,
// closed bottom to top. Center has no Markdown form.
var styleTable = []styleToken{
	{readable.FormatItalic, "*", "em"},
	{readable.FormatBold, "**", "strong"},
	{readable.FormatUnderline, "__", "u"},
	{readable.FormatStrike, "~~", "s"},
	{readable.FormatCenter, "", "center"},
}

func openStyles(f readable.Format, markup bool) string {
	var b strings.Builder
	for _, t := range styleTable {
		if f&t.flag == 0 {
			continue
		}
		if markup {
			b.WriteString("<" + t.tag + ">")
		} else {
			b.WriteString(t.markdown)
		}
	}
	return b.String()
}

func closeStyles(f readable.Format, markup bool) string {
	var b strings.Builder
	for i := len(styleTable) - 1; i >= 0; i-- {
		t := styleTable[i]
		if f&t.flag == 0 {
			continue
		}
		if markup {
			b.WriteString("</" + t.tag + ">")
		} else {
			b.WriteString(t.markdown)
		}
	}
	return b.String()
}

// restyle returns the tokens that move the open styles from mode to f.
// Open spans always nest in table order, so every span inside the first
// style that changes is closed and reopened.
func restyle(mode, f readable.Format, markup bool) (closing, opening string) {
	var outer readable.Format
	for _, t := range styleTable {
		if mode&t.flag != f&t.flag {
			return closeStyles(mode&^outer, markup), openStyles(f&^outer, markup)
		}
		outer |= t.flag
	}
	return "", ""
}

// Ensure MarkdownRenderer implements readable.Renderer at compile time.
var _ readable.Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer renders content as Markdown, or as an HTML fragment when
// RenderMarkup is set.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a new MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// MimeType returns the media type of rendered documents.
func (r *MarkdownRenderer) MimeType() string {
	return MarkdownMimeType
}

// Render walks the runs in order, opening and closing style spans as the
// flags change and starting a new paragraph on every break or rule.
func (r *MarkdownRenderer) Render(c *readable.Content, flags readable.RenderFlag) (string, error) {
	markup := flags&readable.RenderMarkup != 0
	w := &writer{
		markup:    markup,
		paragraph: markup && flags&readable.RenderParagraphMarkup != 0,
	}

	mode := readable.FormatNone
	for _, run := range c.All() {
		f := run.Format
		text := run.Text
		if f&(readable.FormatBreak|readable.FormatNewline) != 0 {
			text = strings.TrimLeft(text, " ")
		}

		newline := false
		if w.started() {
			if f&(readable.FormatRule|readable.FormatBreak) != 0 {
				w.endParagraph(closeStyles(mode, markup))
				if f&readable.FormatRule != 0 {
					w.rule()
				}
				mode = readable.FormatNone
			} else if f&readable.FormatNewline != 0 {
				newline = true
			}
		}

		// Whitespace between spans does not open or close anything.
		if f&readable.FormatStructureMask == 0 && strings.TrimSpace(text) == "" {
			w.write(text)
			continue
		}

		closing, opening := restyle(mode, f.Style(), markup)
		if newline {
			// Spans ending at a line break close on the line they started.
			w.emit(closing, "", "")
			w.lineBreak()
			closing = ""
		}
		w.emit(closing, opening, text)
		mode = f.Style()
	}
	w.endParagraph(closeStyles(mode, markup))

	return strings.Join(w.blocks, "\n\n"), nil
}

// writer collects paragraphs as lines of text and emits finished blocks.
type writer struct {
	markup    bool
	paragraph bool

	lines  []string
	line   strings.Builder
	blocks []string
}

// started reports whether the current paragraph holds any output.
func (w *writer) started() bool {
	return len(w.lines) > 0 || w.line.Len() > 0
}

func (w *writer) write(s string) {
	w.line.WriteString(s)
}

// emit writes closing tokens before any trailing spaces of the line and
// opening tokens after any leading spaces of text.
func (w *writer) emit(closing, opening, text string) {
	if closing != "" {
		line := w.line.String()
		trimmed := strings.TrimRight(line, " ")
		w.line.Reset()
		w.line.WriteString(trimmed)
		w.line.WriteString(closing)
		w.line.WriteString(line[len(trimmed):])
	}
	if opening != "" {
		body := strings.TrimLeft(text, " ")
		w.line.WriteString(text[:len(text)-len(body)])
		w.line.WriteString(opening)
		text = body
	}
	w.line.WriteString(text)
}

func (w *writer) lineBreak() {
	w.lines = append(w.lines, w.line.String())
	w.line.Reset()
}

func (w *writer) rule() {
	if w.markup {
		w.blocks = append(w.blocks, "<hr />")
	} else {
		w.blocks = append(w.blocks, "***")
	}
}

// endParagraph closes the open styles, applies typography to each line of
// the paragraph and appends it as a block. Empty paragraphs are dropped.
func (w *writer) endParagraph(closing string) {
	last := strings.TrimRight(w.line.String(), " ")
	lines := append(w.lines, last+closing)
	w.lines = nil
	w.line.Reset()

	empty := true
	for i, l := range lines {
		lines[i] = typography.Apply(l)
		if lines[i] != "" {
			empty = false
		}
	}
	if empty {
		return
	}

	if w.paragraph {
		lines[0] = "<p>" + lines[0]
		lines[len(lines)-1] += "</p>"
	}

	sep := "\n"
	if w.markup {
		sep = "<br />\n"
	}
	for i, l := range lines {
		lines[i] = wrap.String(wordwrap.String(l, lineWidth), hardWidth)
	}
	w.blocks = append(w.blocks, strings.Join(lines, sep))
}
