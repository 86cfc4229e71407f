package render

import (
	"bytes"
	"encoding/json"

	"github.com/erayd/readable"
)

// Ensure JSONRenderer implements readable.Renderer at compile time.
var _ readable.Renderer = (*JSONRenderer)(nil)

// JSONRenderer renders content in its stored [[flags, text], ...] form.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// MimeType returns the media type of rendered documents.
func (r *JSONRenderer) MimeType() string {
	return JSONMimeType
}

// Render emits compact JSON, or indented JSON with RenderPretty.
func (r *JSONRenderer) Render(c *readable.Content, flags readable.RenderFlag) (string, error) {
	data, err := c.MarshalJSON()
	if err != nil {
		return "", readable.Errorf(readable.EINTERNAL, "encode content: %v", err)
	}
	if flags&readable.RenderPretty == 0 {
		return string(data), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "    "); err != nil {
		return "", readable.Errorf(readable.EINTERNAL, "indent content: %v", err)
	}
	return buf.String(), nil
}
