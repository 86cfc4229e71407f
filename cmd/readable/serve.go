package main

import (
	"fmt"

	"github.com/erayd/readable/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config.Server
	addr := cfg.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	opts := []http.Option{
		http.WithAddr(addr),
		http.WithHomeURL(cfg.HomeURL),
		http.WithContainer(deps.Config.Extract.Container),
		http.WithLogger(deps.Logger),
	}
	if cfg.SubmitRate > 0 {
		opts = append(opts, http.WithLimiter(http.NewClientLimiter(cfg.SubmitRate, cfg.SubmitBurst)))
	}

	s := http.NewServer(deps.Contents, deps.Extractors, deps.Renderers, opts...)
	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}
	deps.Logger.Info("listening", "url", s.URL(), "store", deps.Config.Store.Driver)

	<-deps.Ctx.Done()
	return s.Close()
}
