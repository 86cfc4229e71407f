package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/erayd/readable"
	"github.com/erayd/readable/bloom"
	"github.com/erayd/readable/fs"
	"github.com/erayd/readable/goquery"
	"github.com/erayd/readable/htmltomarkdown"
	"github.com/erayd/readable/readability"
	"github.com/erayd/readable/render"
	rslog "github.com/erayd/readable/slog"
	"github.com/erayd/readable/sqlite"
	"github.com/erayd/readable/trafilatura"
)

// bloomCapacity sizes the negative cache of the server.
const bloomCapacity = 100_000

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environment lookup and standard input. Set before calling Run().
	Getenv func(string) string
	Stdin  io.Reader

	// SQLite database, when the sqlite store is in use.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readable"),
		kong.Description("Extract the readable text of HTML documents and render it as Markdown, HTML or JSON."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readable --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg := DefaultConfig()
	if cli.Config != "" {
		if cfg, err = LoadConfigFile(cli.Config); err != nil {
			return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
		}
	}
	cfg.ApplyEnv(m.Getenv)
	deps.Config = cfg

	level := slog.LevelWarn
	if cmd == "serve" {
		level = slog.LevelInfo
	}
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Extractors = newExtractors(deps.Logger)
	deps.Renderers = newRenderers(deps.Logger)

	if cmd == "show" || cmd == "serve" || (cmd == "extract" && cli.Extract.Store) {
		contents, err := m.openStore(cfg)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set READABLE_DB or READABLE_CACHE_DIR to use a different store")
			return err
		}
		defer m.Close()

		if cmd == "serve" {
			filtered := bloom.NewContentService(contents, bloom.NewFilter(bloomCapacity, 0.01))
			if err := filtered.Seed(ctx); err != nil {
				return fmt.Errorf("failed to seed address filter: %w", err)
			}
			contents = filtered
		}
		deps.Contents = rslog.NewLoggingContentService(contents, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// openStore opens the content store named by the configuration.
func (m *Main) openStore(cfg Config) (readable.ContentService, error) {
	switch cfg.Store.Driver {
	case DriverSQLite:
		if cfg.Store.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0755); err != nil {
				return nil, err
			}
		}
		m.DB = sqlite.NewDB(cfg.Store.Path)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open database at %q: %w", cfg.Store.Path, err)
		}
		return sqlite.NewContentService(m.DB), nil
	case DriverFS:
		return fs.NewContentService(cfg.Store.Path), nil
	}
	return nil, readable.Errorf(readable.EINVALID, "unknown store driver %q", cfg.Store.Driver)
}

// newExtractor builds the extractor of the given kind.
func newExtractor(kind readable.ExtractorKind) readable.Extractor {
	switch kind {
	case readable.ExtractorReadability:
		return readability.NewExtractor(goquery.NewExtractor())
	case readable.ExtractorTrafilatura:
		return trafilatura.NewExtractor(goquery.NewExtractor())
	}
	return goquery.NewExtractor()
}

func newExtractors(logger *slog.Logger) readable.Extractors {
	m := readable.Extractors{}
	for _, kind := range []readable.ExtractorKind{
		readable.ExtractorHTML,
		readable.ExtractorReadability,
		readable.ExtractorTrafilatura,
	} {
		m[kind] = rslog.NewLoggingExtractor(newExtractor(kind), kind, logger)
	}
	return m
}

// newRenderer builds the renderer of the given kind.
func newRenderer(kind readable.RendererKind) readable.Renderer {
	switch kind {
	case readable.RendererHTML:
		return render.NewHTMLRenderer()
	case readable.RendererJSON:
		return render.NewJSONRenderer()
	case readable.RendererCommonMark:
		return htmltomarkdown.NewRenderer()
	}
	return render.NewMarkdownRenderer()
}

func newRenderers(logger *slog.Logger) readable.Renderers {
	m := readable.Renderers{}
	for _, kind := range []readable.RendererKind{
		readable.RendererMarkdown,
		readable.RendererHTML,
		readable.RendererJSON,
		readable.RendererCommonMark,
	} {
		m[kind] = rslog.NewLoggingRenderer(newRenderer(kind), kind, logger)
	}
	return m
}
