package main

import (
	"fmt"

	"github.com/erayd/readable"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	kind, err := readable.ParseExtractorKind(c.Extractor)
	if err != nil {
		return err
	}
	extractor, err := deps.Extractors.Get(kind)
	if err != nil {
		return err
	}

	body, err := readInput(c.File, deps.Stdin)
	if err != nil {
		return err
	}

	opts := readable.ExtractOptions{Container: c.Container}
	if opts.Container == "" {
		opts.Container = deps.Config.Extract.Container
	}
	content, err := extractor.Extract(string(body), opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}
	return renderTo(deps, c.Format, c.Flags, content)
}
