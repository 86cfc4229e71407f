package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/erayd/readable"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     Config
	Extractors readable.Extractors
	Renderers  readable.Renderers
	Contents   readable.ContentService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `name:"config" type:"existingfile" help:"YAML configuration file"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract readable content from HTML files"`
	Render  RenderCmd  `cmd:"" help:"Render extracted content"`
	Convert ConvertCmd `cmd:"" help:"Extract and render an HTML file"`
	Show    ShowCmd    `cmd:"" help:"Render stored content"`
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP server"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files       []string `arg:"" help:"HTML files ('-' reads stdin)"`
	Extractor   string   `short:"e" default:"html" enum:"html,readability,trafilatura" help:"Extractor to use"`
	Container   string   `short:"C" help:"XPath of the content container"`
	Store       bool     `short:"s" help:"Store results and print their addresses"`
	Concurrency int      `short:"c" default:"4" help:"Files extracted in parallel"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	File   string   `arg:"" default:"-" help:"Content JSON file ('-' reads stdin)"`
	Format string   `short:"f" default:"markdown" enum:"markdown,html,json,commonmark" help:"Output format"`
	Flags  []string `short:"F" name:"flag" help:"Render option (repeatable)"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	File      string   `arg:"" default:"-" help:"HTML file ('-' reads stdin)"`
	Extractor string   `short:"e" default:"html" enum:"html,readability,trafilatura" help:"Extractor to use"`
	Container string   `short:"C" help:"XPath of the content container"`
	Format    string   `short:"f" default:"markdown" enum:"markdown,html,json,commonmark" help:"Output format"`
	Flags     []string `short:"F" name:"flag" help:"Render option (repeatable)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Target string   `arg:"" help:"Stored document as ADDRESS.EXT (md, html, json, cm)"`
	Flags  []string `short:"F" name:"flag" help:"Render option (repeatable)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}
