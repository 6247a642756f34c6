package setup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/config"
	"github.com/wagner1975/eezycollectionz/internal/http"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/home"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/metrics"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
		http.WithMount("/api/", api),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithPublicMount("/", home.NewHandler(conf.App.WelcomeMessage, conf.App.Author)),
	}

	if conf.HTTP.Auth.Username != "" && conf.HTTP.Auth.Password != "" {
		options = append(options, http.WithBasicAuth(conf.HTTP.Auth.Username, conf.HTTP.Auth.Password))
	}

	if rl := conf.HTTP.RateLimit; rl.Enabled {
		options = append(options, http.WithRateLimit(http.RateLimit{
			TrustHeaders: rl.TrustHeaders,
			Interval:     rl.Interval,
			MaxBurst:     rl.MaxBurst,
			CacheSize:    rl.CacheSize,
			CacheTTL:     rl.CacheTTL,
		}))
	}

	server := http.NewServer(options...)

	return server, nil
}
