package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"github.com/wagner1975/eezycollectionz/internal/core/service"
)

type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errMalformedID),
		errors.Is(err, errMalformedSort),
		errors.Is(err, errMalformedBody),
		errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := statusFromError(err)

	ctx := r.Context()

	res := ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	}

	switch {
	case status >= http.StatusInternalServerError:
		slog.ErrorContext(ctx, message, slogx.Error(err))
	case status == http.StatusBadRequest:
		res.Message = err.Error()
		slog.DebugContext(ctx, message, slogx.Error(err))
	default:
		slog.DebugContext(ctx, message, slogx.Error(err))
	}

	writeJSON(w, r, status, res)
}
