package main

import (
	"fmt"
	"io"
	"os"

	"github.com/erayd/readable"
	"github.com/erayd/readable/xxhash"
	"golang.org/x/sync/errgroup"
)

// extracted is the outcome of one input file.
type extracted struct {
	address string
	content *readable.Content
}

// Run executes the extract command. Files are extracted concurrently and
// reported in argument order: one content JSON line per file, or the
// address and file name with --store.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	kind, err := readable.ParseExtractorKind(c.Extractor)
	if err != nil {
		return err
	}
	extractor, err := deps.Extractors.Get(kind)
	if err != nil {
		return err
	}
	opts := readable.ExtractOptions{Container: c.Container}
	if opts.Container == "" {
		opts.Container = deps.Config.Extract.Container
	}

	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]extracted, len(c.Files))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, file := range c.Files {
		g.Go(func() error {
			body, err := readInput(file, deps.Stdin)
			if err != nil {
				return err
			}
			content, err := extractor.Extract(string(body), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i].content = content

			if !c.Store {
				return nil
			}
			address := xxhash.Address(kind, opts.Container, body)
			if err := deps.Contents.CreateContent(ctx, address, content); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i].address = address
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	for i, r := range results {
		if c.Store {
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", r.address, c.Files[i])
			continue
		}
		data, err := r.content.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
	}
	return nil
}

// readInput reads the named file, or stdin for "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
