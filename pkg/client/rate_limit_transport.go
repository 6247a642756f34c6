package client

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests answered with 429 Too Many Requests,
// waiting as long as the server asks to.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	for attempt := 0; ; attempt++ {
		res, err := transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		wait := t.getWaitTime(res)

		if _, err := io.Copy(io.Discard, res.Body); err != nil {
			slog.DebugContext(req.Context(), "could not drain response body", slog.Any("error", errors.WithStack(err)))
		}

		res.Body.Close()

		slog.WarnContext(req.Context(), "rate limited, will retry", slog.Duration("wait", wait), slog.Int("attempt", attempt+1), slog.Int("maxRetries", t.MaxRetries))

		select {
		case <-req.Context().Done():
			return nil, errors.WithStack(req.Context().Err())
		case <-time.After(wait):
		}

		if req.Body != nil && req.Body != http.NoBody {
			if req.GetBody == nil {
				return nil, errors.New("cannot retry request with one-time reader body")
			}

			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}

			req.Body = body
		}
	}
}

func (t *RateLimitTransport) getWaitTime(res *http.Response) time.Duration {
	if retryAfter := res.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait := time.Duration(seconds) * time.Second
			// Up to 10% of jitter
			return wait + time.Duration(rand.Int64N(int64(wait/10)+1))
		}

		if date, err := http.ParseTime(retryAfter); err == nil {
			if wait := time.Until(date); wait > 0 {
				return wait
			}
		}
	}

	return t.DefaultWait
}
