package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

const (
	defaultPageSize = 20
	maxPageSize     = 2000

	// TimestampFormat renders instants with their full microsecond precision
	TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"
)

var (
	errMalformedID   = errors.New("malformed identifier")
	errMalformedSort = errors.New("malformed sort parameter")
	errMalformedBody = errors.New("malformed request body")
)

func getQueryPage(query url.Values) int {
	return max(getQueryInt(query, "page", 0), 0)
}

// getQuerySize falls back to the default size when the requested one is not
// positive and caps it to maxPageSize.
func getQuerySize(query url.Values) int {
	size := getQueryInt(query, "size", defaultPageSize)
	if size < 1 {
		return defaultPageSize
	}

	return min(size, maxPageSize)
}

func getQueryInt(query url.Values, name string, defaultValue int) int {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return defaultValue
	}

	return int(value)
}

// getQuerySort parses the repeatable "sort" parameter, each value being a
// comma separated list of fields optionally followed by "asc" or "desc".
func getQuerySort(query url.Values) ([]port.SortOrder, error) {
	orders := make([]port.SortOrder, 0)

	for _, raw := range query["sort"] {
		tokens := strings.Split(raw, ",")

		descending := false
		switch strings.ToLower(strings.TrimSpace(tokens[len(tokens)-1])) {
		case "desc":
			descending = true
			tokens = tokens[:len(tokens)-1]
		case "asc":
			tokens = tokens[:len(tokens)-1]
		}

		if len(tokens) == 0 {
			return nil, errors.Wrapf(errMalformedSort, "no field in '%s'", raw)
		}

		for _, token := range tokens {
			field := port.SortField(strings.TrimSpace(token))
			if !field.Valid() {
				return nil, errors.Wrapf(errMalformedSort, "unknown sort field '%s'", field)
			}

			orders = append(orders, port.SortOrder{Field: field, Descending: descending})
		}
	}

	return orders, nil
}

func getPageRequest(query url.Values) (*port.PageRequest, error) {
	sort, err := getQuerySort(query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &port.PageRequest{
		Page: getQueryPage(query),
		Size: getQuerySize(query),
		Sort: sort,
	}, nil
}

// parseID checks that raw is a UUID and returns its canonical form.
func parseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errors.Wrapf(errMalformedID, "'%s' is not a valid uuid", raw)
	}

	return id.String(), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

func (h *Handler) decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return errors.Wrap(errMalformedBody, err.Error())
	}

	if err := h.validate.Struct(v); err != nil {
		return errors.Wrap(errMalformedBody, err.Error())
	}

	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := encoder.Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}
