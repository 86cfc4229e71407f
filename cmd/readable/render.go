package main

import (
	"fmt"

	"github.com/erayd/readable"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	data, err := readInput(c.File, deps.Stdin)
	if err != nil {
		return err
	}
	content, err := readable.DecodeContent(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}
	return renderTo(deps, c.Format, c.Flags, content)
}

// renderTo renders content with the named renderer and writes it to stdout.
func renderTo(deps *Dependencies, format string, flagNames []string, content *readable.Content) error {
	kind, err := readable.ParseRendererKind(format)
	if err != nil {
		return err
	}
	return renderKind(deps, kind, flagNames, content)
}

func renderKind(deps *Dependencies, kind readable.RendererKind, flagNames []string, content *readable.Content) error {
	renderer, err := deps.Renderers.Get(kind)
	if err != nil {
		return err
	}
	flags, err := readable.ParseRenderFlags(flagNames)
	if err != nil {
		return err
	}
	out, err := renderer.Render(content, flags)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}
