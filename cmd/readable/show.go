package main

import (
	"fmt"
	"strings"

	"github.com/erayd/readable"
	"github.com/erayd/readable/http"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	address, ext, ok := strings.Cut(c.Target, ".")
	if !ok {
		return readable.Errorf(readable.EINVALID, "expected ADDRESS.EXT, got %q", c.Target)
	}
	kind, err := http.RendererForExtension(ext)
	if err != nil {
		return err
	}

	content, err := deps.Contents.FindContent(deps.Ctx, address)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}
	return renderKind(deps, kind, c.Flags, content)
}
