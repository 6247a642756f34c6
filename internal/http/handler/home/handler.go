package home

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
)

type Response struct {
	WelcomeMessage string `json:"welcomeMessage"`
	Author         string `json:"author"`
}

// Handler serves the application banner on the root path.
type Handler struct {
	res Response
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")

	if err := encoder.Encode(h.res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}

func NewHandler(welcomeMessage string, author string) *Handler {
	h := &Handler{
		res: Response{
			WelcomeMessage: welcomeMessage,
			Author:         author,
		},
		mux: &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /{$}", h.handleHome)

	return h
}

var _ http.Handler = &Handler{}
