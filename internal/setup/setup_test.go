package setup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/config"
)

func TestCreateFromConfigOnce(t *testing.T) {
	calls := 0
	factory := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (int, error) {
		calls++
		return calls, nil
	})

	ctx := context.Background()
	first := &config.Config{}
	second := &config.Config{}

	for i := 0; i < 3; i++ {
		value, err := factory(ctx, first)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 1, value; e != g {
			t.Errorf("value: expected %d, got %d", e, g)
		}
	}

	value, err := factory(ctx, second)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, value; e != g {
		t.Errorf("value: expected %d, got %d", e, g)
	}
}

func TestSeededServer(t *testing.T) {
	type testCase struct {
		Name   string
		Driver string
	}

	testCases := []testCase{
		{Name: "Memory", Driver: config.DriverMemory},
		{Name: "SQLite", Driver: config.DriverSQLite},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Setenv("EEZYCOLLECTIONZ_STORAGE_DATABASE_DRIVER", tc.Driver)
			t.Setenv("EEZYCOLLECTIONZ_STORAGE_DATABASE_DSN", filepath.Join(t.TempDir(), "data.sqlite"))
			t.Setenv("EEZYCOLLECTIONZ_SEED_ENABLED", "true")
			t.Setenv("EEZYCOLLECTIONZ_HTTP_AUTH_USERNAME", "admin")
			t.Setenv("EEZYCOLLECTIONZ_HTTP_AUTH_PASSWORD", "secret")
			t.Setenv("EEZYCOLLECTIONZ_HTTP_RATE_LIMIT_ENABLED", "false")

			conf, err := config.Parse()
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := SeedFromConfig(ctx, conf); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			server, err := NewHTTPServerFromConfig(ctx, conf)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ts := httptest.NewServer(server.Handler())
			defer ts.Close()

			res, err := http.Get(ts.URL + "/api/collections")
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
			res.Body.Close()

			if e, g := http.StatusUnauthorized, res.StatusCode; e != g {
				t.Errorf("anonymous GET /api/collections: expected status %d, got %d", e, g)
			}

			req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/collections?sort=name", nil)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			req.SetBasicAuth("admin", "secret")

			res, err = http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
			defer res.Body.Close()

			if e, g := http.StatusOK, res.StatusCode; e != g {
				t.Fatalf("GET /api/collections: expected status %d, got %d", e, g)
			}

			var page struct {
				TotalElements int64 `json:"totalElements"`
				Content       []struct {
					Name string `json:"name"`
				} `json:"content"`
			}

			if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := int64(2), page.TotalElements; e != g {
				t.Fatalf("page.TotalElements: expected %d, got %d", e, g)
			}

			if e, g := "First collection", page.Content[0].Name; e != g {
				t.Errorf("page.Content[0].Name: expected '%s', got '%s'", e, g)
			}

			home, err := http.Get(ts.URL + "/")
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
			defer home.Body.Close()

			if e, g := http.StatusOK, home.StatusCode; e != g {
				t.Errorf("GET /: expected status %d, got %d", e, g)
			}

			health, err := http.Get(ts.URL + "/healthz")
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
			defer health.Body.Close()

			if e, g := http.StatusOK, health.StatusCode; e != g {
				t.Errorf("GET /healthz: expected status %d, got %d", e, g)
			}

			if ct := home.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("GET / Content-Type: expected json, got '%s'", ct)
			}
		})
	}
}
