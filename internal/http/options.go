package http

import (
	"net/http"
	"time"
)

type BasicAuth struct {
	Username string
	Password string
}

type RateLimit struct {
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
}

type Options struct {
	Address        string
	BaseURL        string
	BasicAuth      *BasicAuth
	RateLimit      *RateLimit
	AllowedOrigins []string
	Mounts         map[string]http.Handler
	// Public mounts bypass basic authentication
	Public          map[string]http.Handler
	ShutdownTimeout time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":3002",
		BaseURL:         "",
		Mounts:          map[string]http.Handler{},
		Public:          map[string]http.Handler{},
		AllowedOrigins:  []string{"*"},
		ShutdownTimeout: 10 * time.Second,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithPublicMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Public[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithBasicAuth(username, password string) OptionFunc {
	return func(opts *Options) {
		opts.BasicAuth = &BasicAuth{
			Username: username,
			Password: password,
		}
	}
}

func WithRateLimit(rateLimit RateLimit) OptionFunc {
	return func(opts *Options) {
		opts.RateLimit = &rateLimit
	}
}

func WithAllowedOrigins(origins ...string) OptionFunc {
	return func(opts *Options) {
		opts.AllowedOrigins = origins
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}
