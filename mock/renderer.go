package mock

import "github.com/erayd/readable"

var _ readable.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of readable.Renderer.
type Renderer struct {
	RenderFn   func(c *readable.Content, flags readable.RenderFlag) (string, error)
	MimeTypeFn func() string
}

func (r *Renderer) Render(c *readable.Content, flags readable.RenderFlag) (string, error) {
	return r.RenderFn(c, flags)
}

func (r *Renderer) MimeType() string {
	return r.MimeTypeFn()
}
