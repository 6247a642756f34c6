package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
	"github.com/wagner1975/eezycollectionz/internal/http/middleware/ratelimit"
)

type Server struct {
	opts *Options
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.Wrapf(err, "could not listen on '%s'", s.opts.Address)
	}

	return errors.WithStack(s.Serve(ctx, listener))
}

// Serve handles requests on the given listener until ctx is done, then
// shuts the server down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", listener.Addr().String()))

		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}

		close(errs)
	}()

	select {
	case err := <-errs:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.healthz)

	for prefix, handler := range s.opts.Public {
		s.mount(mux, prefix, handler)
	}

	for prefix, handler := range s.opts.Mounts {
		if s.opts.BasicAuth != nil {
			handler = s.basicAuth(handler)
		}

		s.mount(mux, prefix, handler)
	}

	var handler http.Handler = mux

	if s.opts.RateLimit != nil {
		rl := s.opts.RateLimit
		handler = ratelimit.Middleware(ratelimit.Options{
			TrustHeaders: rl.TrustHeaders,
			Interval:     rl.Interval,
			MaxBurst:     rl.MaxBurst,
			CacheSize:    rl.CacheSize,
			CacheTTL:     rl.CacheTTL,
		})(handler)
	}

	handler = cors.New(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: s.opts.BasicAuth != nil,
	}).Handler(handler)

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithUserAgent:    true,
	})(handler)

	return handler
}

func (s *Server) mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")
	pattern := strings.TrimSuffix(s.opts.BaseURL, "/") + prefix

	if trimmed == "" {
		mux.Handle(pattern, handler)
		return
	}

	mux.Handle(pattern, http.StripPrefix(strings.TrimSuffix(s.opts.BaseURL, "/")+trimmed, handler))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("OK")); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", slogx.Error(err))
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)

	return &Server{
		opts: opts,
	}
}
