package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/wagner1975/eezycollectionz/internal/core/service"
)

type Handler struct {
	collectionManager *service.CollectionManager
	entryManager      *service.EntryManager
	validate          *validator.Validate
	mux               *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(collectionManager *service.CollectionManager, entryManager *service.EntryManager) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	h := &Handler{
		collectionManager: collectionManager,
		entryManager:      entryManager,
		validate:          validate,
		mux:               &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /collections", h.handleListCollections)
	h.mux.HandleFunc("POST /collections", h.handleCreateCollection)
	h.mux.HandleFunc("GET /collections/{collectionID}", h.handleGetCollection)
	h.mux.HandleFunc("PUT /collections/{collectionID}", h.handleUpdateCollection)
	h.mux.HandleFunc("DELETE /collections/{collectionID}", h.handleDeleteCollection)

	h.mux.HandleFunc("GET /entries", h.handleListEntries)
	h.mux.HandleFunc("POST /entries/collection/{collectionID}", h.handleCreateEntry)
	h.mux.HandleFunc("GET /entries/{entryID}", h.handleGetEntry)
	h.mux.HandleFunc("PUT /entries/{entryID}", h.handleUpdateEntry)
	h.mux.HandleFunc("DELETE /entries/{entryID}", h.handleDeleteEntry)

	return h
}

var _ http.Handler = &Handler{}
