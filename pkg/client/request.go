package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrBadRequest    = errors.New("bad request")
	ErrUnprocessable = errors.New("unprocessable")
)

// Error is returned when the server answers with an error status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected response code %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("unexpected response code %d (%s): %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrUnprocessable:
		return e.StatusCode == http.StatusUnprocessableEntity
	default:
		return false
	}
}

func (c *Client) request(ctx context.Context, method string, path string, query url.Values, payload any, result any) error {
	endpoint := c.baseURL.JoinPath("/api", path)
	endpoint.RawQuery = query.Encode()

	slog.DebugContext(ctx, "new client request", slog.String("method", method), slog.String("path", endpoint.Path), slog.String("host", endpoint.Host))

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.basicAuth != nil {
		password, _ := c.basicAuth.Password()
		req.SetBasicAuth(c.basicAuth.Username(), password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		var errRes api.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&errRes); err != nil {
			slog.DebugContext(ctx, "could not decode error response", slog.Any("error", errors.WithStack(err)))
		}

		return errors.WithStack(&Error{StatusCode: res.StatusCode, Message: errRes.Message})
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
