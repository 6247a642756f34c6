package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	httpCtx "github.com/wagner1975/eezycollectionz/internal/http/context"
)

func TestServerHandler(t *testing.T) {
	whoami := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.URL.Path+"|"+httpCtx.Username(r.Context()))
	})

	server := NewServer(
		WithBaseURL("/prefix"),
		WithBasicAuth("jane", "secret"),
		WithMount("/api/", whoami),
		WithPublicMount("/public/", whoami),
	)

	handler := server.Handler()

	type testCase struct {
		Name           string
		Path           string
		Credentials    []string
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []testCase{
		{
			Name:           "Healthz",
			Path:           "/healthz",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "OK",
		},
		{
			Name:           "MountWithoutCredentials",
			Path:           "/prefix/api/things",
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "MountWithWrongPassword",
			Path:           "/prefix/api/things",
			Credentials:    []string{"jane", "nope"},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "MountWithCredentials",
			Path:           "/prefix/api/things",
			Credentials:    []string{"jane", "secret"},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "/things|jane",
		},
		{
			Name:           "PublicMount",
			Path:           "/prefix/public/things",
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "/things|",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
			if tc.Credentials != nil {
				req.SetBasicAuth(tc.Credentials[0], tc.Credentials[1])
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if e, g := tc.ExpectedStatus, rec.Code; e != g {
				t.Fatalf("status: expected %d, got %d", e, g)
			}

			if tc.ExpectedBody == "" {
				return
			}

			if e, g := tc.ExpectedBody, rec.Body.String(); e != g {
				t.Errorf("body: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestServerServeShutdown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server := NewServer(WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, listener)
	}()

	res, err := http.Get("http://" + listener.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("%+v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
