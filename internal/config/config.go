package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger    Logger    `envPrefix:"LOGGER_"`
	HTTP      HTTP      `envPrefix:"HTTP_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Generator Generator `envPrefix:"GENERATOR_"`
	App       App       `envPrefix:"APP_"`
	Seed      Seed      `envPrefix:"SEED_"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "EEZYCOLLECTIONZ_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}

func (c *Config) Validate() error {
	if c.Generator.MaxRetriesToGenerateID < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max retries to generate id must not be negative, got %d", c.Generator.MaxRetriesToGenerateID)
	}

	switch c.Storage.Database.Driver {
	case DriverSQLite, DriverMemory:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown database driver '%s'", c.Storage.Database.Driver)
	}

	if c.HTTP.RateLimit.Enabled && c.HTTP.RateLimit.MaxBurst < 1 {
		return errors.Wrapf(ErrInvalidConfig, "rate limit burst must be positive, got %d", c.HTTP.RateLimit.MaxBurst)
	}

	return nil
}
