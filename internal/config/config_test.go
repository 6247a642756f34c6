package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":3002", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := DriverSQLite, conf.Storage.Database.Driver; e != g {
		t.Errorf("conf.Storage.Database.Driver: expected '%s', got '%s'", e, g)
	}

	if e, g := 3, conf.Generator.MaxRetriesToGenerateID; e != g {
		t.Errorf("conf.Generator.MaxRetriesToGenerateID: expected %d, got %d", e, g)
	}

	if e, g := slog.LevelInfo, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("EEZYCOLLECTIONZ_LOGGER_LEVEL", "DEBUG")
	t.Setenv("EEZYCOLLECTIONZ_STORAGE_DATABASE_DRIVER", DriverMemory)
	t.Setenv("EEZYCOLLECTIONZ_GENERATOR_MAX_RETRIES_TO_GENERATE_ID", "0")
	t.Setenv("EEZYCOLLECTIONZ_HTTP_RATE_LIMIT_INTERVAL", "1s")
	t.Setenv("EEZYCOLLECTIONZ_HTTP_CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}

	if e, g := DriverMemory, conf.Storage.Database.Driver; e != g {
		t.Errorf("conf.Storage.Database.Driver: expected '%s', got '%s'", e, g)
	}

	if e, g := 0, conf.Generator.MaxRetriesToGenerateID; e != g {
		t.Errorf("conf.Generator.MaxRetriesToGenerateID: expected %d, got %d", e, g)
	}

	if e, g := time.Second, conf.HTTP.RateLimit.Interval; e != g {
		t.Errorf("conf.HTTP.RateLimit.Interval: expected '%v', got '%v'", e, g)
	}

	if e, g := 2, len(conf.HTTP.CORS.AllowedOrigins); e != g {
		t.Errorf("len(conf.HTTP.CORS.AllowedOrigins): expected %d, got %d", e, g)
	}
}

func TestParseInvalid(t *testing.T) {
	type testCase struct {
		Name  string
		Key   string
		Value string
	}

	testCases := []testCase{
		{Name: "NegativeRetries", Key: "EEZYCOLLECTIONZ_GENERATOR_MAX_RETRIES_TO_GENERATE_ID", Value: "-1"},
		{Name: "UnknownDriver", Key: "EEZYCOLLECTIONZ_STORAGE_DATABASE_DRIVER", Value: "postgres"},
		{Name: "ZeroBurst", Key: "EEZYCOLLECTIONZ_HTTP_RATE_LIMIT_MAX_BURST", Value: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Setenv(tc.Key, tc.Value)

			if _, err := Parse(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err: expected '%v', got '%+v'", ErrInvalidConfig, err)
			}
		})
	}
}
