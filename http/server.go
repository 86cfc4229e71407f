// Package http serves extraction and rendering over HTTP. Documents are
// submitted with POST /part and rendered from the store with
// GET /{address}.{ext}.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/erayd/readable"
	"github.com/erayd/readable/xxhash"
	"github.com/google/uuid"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"

	// DefaultHomeURL is where GET / redirects to.
	DefaultHomeURL = "https://github.com/erayd/context"

	// DefaultMaxBodySize limits submitted documents.
	DefaultMaxBodySize = 10 << 20

	// ShutdownTimeout bounds graceful shutdown in Close.
	ShutdownTimeout = 5 * time.Second
)

// extensions maps request file extensions to renderers.
var extensions = map[string]readable.RendererKind{
	"md":   readable.RendererMarkdown,
	"html": readable.RendererHTML,
	"json": readable.RendererJSON,
	"cm":   readable.RendererCommonMark,
}

// RendererForExtension returns the renderer kind serving files with ext.
// Returns EUNSUPPORTED for unknown extensions.
func RendererForExtension(ext string) (readable.RendererKind, error) {
	kind, ok := extensions[ext]
	if !ok {
		return 0, readable.Errorf(readable.EUNSUPPORTED, "unsupported extension %q", ext)
	}
	return kind, nil
}

// Server is the HTTP front end over a content store.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	addr        string
	homeURL     string
	maxBodySize int64
	container   string
	limiter     *ClientLimiter
	logger      *slog.Logger

	contents   readable.ContentService
	extractors readable.Extractors
	renderers  readable.Renderers
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithHomeURL sets the redirect target of GET /. Defaults to DefaultHomeURL.
func WithHomeURL(u string) Option {
	return func(s *Server) {
		s.homeURL = u
	}
}

// WithMaxBodySize limits submitted documents to n bytes.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		s.maxBodySize = n
	}
}

// WithContainer sets the container used when a submission names none.
func WithContainer(xpath string) Option {
	return func(s *Server) {
		s.container = xpath
	}
}

// WithLimiter rate limits submissions per client. Unlimited by default.
func WithLimiter(l *ClientLimiter) Option {
	return func(s *Server) {
		s.limiter = l
	}
}

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new Server. The extractor and renderer tables decide
// which kinds the routes accept.
func NewServer(contents readable.ContentService, extractors readable.Extractors, renderers readable.Renderers, opts ...Option) *Server {
	s := &Server{
		addr:        DefaultAddr,
		homeURL:     DefaultHomeURL,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.Default(),
		contents:    contents,
		extractors:  extractors,
		renderers:   renderers,
		router:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("POST /part", s.handleSubmit)
	s.router.HandleFunc("POST /part/{extractor}", s.handleSubmit)
	s.router.HandleFunc("GET /{file}", s.handleRender)
	s.router.HandleFunc("GET /{file}/{flags...}", s.handleRender)

	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Open starts listening on the configured address.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP tags the request with an id, routes it and logs the outcome.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	id := uuid.NewString()
	w.Header().Set("X-Request-Id", id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.router.ServeHTTP(rec, r)

	s.logger.Info("http request",
		"request_id", id,
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(begin),
	)
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.homeURL, http.StatusFound)
}

// handleSubmit extracts the request body, stores the result under its
// content address and responds with the address.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow(clientHost(r)) {
		s.error(w, r, readable.Errorf(readable.ERATELIMIT, "too many submissions, try again later"))
		return
	}

	kind := readable.ExtractorHTML
	if name := r.PathValue("extractor"); name != "" {
		var err error
		if kind, err = readable.ParseExtractorKind(name); err != nil {
			s.error(w, r, err)
			return
		}
	}
	extractor, err := s.extractors.Get(kind)
	if err != nil {
		s.error(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		s.error(w, r, readable.Errorf(readable.EINVALID, "could not read document: %v", err))
		return
	}

	opts := readable.ExtractOptions{Container: r.URL.Query().Get("container")}
	if opts.Container == "" {
		opts.Container = s.container
	}

	ctx := r.Context()
	address := xxhash.Address(kind, opts.Container, body)

	_, err = s.contents.FindContent(ctx, address)
	switch readable.ErrorCode(err) {
	case "":
		// Already extracted.
	case readable.ENOTFOUND:
		c, err := extractor.Extract(string(body), opts)
		if err != nil {
			s.error(w, r, err)
			return
		}
		if err := s.contents.CreateContent(ctx, address, c); err != nil {
			s.error(w, r, err)
			return
		}
	default:
		s.error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Location", "/"+address+".json")
	w.WriteHeader(http.StatusCreated)
	_, _ = io.WriteString(w, address)
}

// handleRender renders stored content. The file extension picks the
// renderer and any further path segments are render options.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	address, ext, ok := strings.Cut(file, ".")
	if !ok {
		s.error(w, r, readable.Errorf(readable.ENOTFOUND, "no such document %q", file))
		return
	}
	if err := readable.ValidateAddress(address); err != nil {
		s.error(w, r, err)
		return
	}
	kind, err := RendererForExtension(ext)
	if err != nil {
		s.error(w, r, err)
		return
	}
	renderer, err := s.renderers.Get(kind)
	if err != nil {
		s.error(w, r, err)
		return
	}
	flags, err := readable.ParseRenderFlags(strings.Split(r.PathValue("flags"), "/"))
	if err != nil {
		s.error(w, r, err)
		return
	}

	c, err := s.contents.FindContent(r.Context(), address)
	if err != nil {
		s.error(w, r, err)
		return
	}
	out, err := renderer.Render(c, flags)
	if err != nil {
		s.error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", renderer.MimeType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", address+"."+ext))
	_, _ = io.WriteString(w, out)
}

// error writes err as a plain text response. Internal errors are logged and
// reported without detail.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := readable.ErrorCode(err), readable.ErrorMessage(err)
	if code == readable.EINTERNAL {
		s.logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	http.Error(w, message, ErrorStatusCode(code))
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	switch code {
	case readable.EINVALID, readable.EDECODE:
		return http.StatusBadRequest
	case readable.ENOTFOUND, readable.EUNSUPPORTED:
		return http.StatusNotFound
	case readable.ENOCONTAINER, readable.ENOTEXT:
		return http.StatusUnprocessableEntity
	case readable.ERATELIMIT:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// clientHost returns the host part of the request's remote address.
func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
