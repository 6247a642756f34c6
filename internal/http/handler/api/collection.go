package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/service"
)

type CollectionRequest struct {
	Name string `json:"name" validate:"notblank"`
}

type Collection struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CreatedAt      string `json:"createdAt"`
	LastModifiedAt string `json:"lastModifiedAt"`
}

type ListCollectionsResponse = PageResponse[Collection]

func toCollection(c model.Collection) Collection {
	return Collection{
		ID:             string(c.ID()),
		Name:           c.Name(),
		CreatedAt:      formatTime(c.CreatedAt()),
		LastModifiedAt: formatTime(c.LastModifiedAt()),
	}
}

func (h *Handler) handleListCollections(w http.ResponseWriter, r *http.Request) {
	req, err := getPageRequest(r.URL.Query())
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid page request")
		return
	}

	page, err := h.collectionManager.QueryCollections(r.Context(), req)
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not query collections")
		return
	}

	writeJSON(w, r, http.StatusOK, newPageResponse(page, toCollection))
}

func (h *Handler) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	collectionID, err := parseID(r.PathValue("collectionID"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid collection id")
		return
	}

	collection, err := h.collectionManager.GetCollectionByID(r.Context(), model.CollectionID(collectionID))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not retrieve collection")
		return
	}

	writeJSON(w, r, http.StatusOK, toCollection(collection))
}

func (h *Handler) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var req CollectionRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, errors.WithStack(err), "invalid collection")
		return
	}

	collection, err := h.collectionManager.CreateCollection(r.Context(), &service.CollectionInput{Name: req.Name})
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not create collection")
		return
	}

	ctx := slogx.WithAttrs(r.Context(), slog.String("collectionID", string(collection.ID())))
	slog.InfoContext(ctx, "collection created")

	writeJSON(w, r, http.StatusCreated, toCollection(collection))
}

func (h *Handler) handleUpdateCollection(w http.ResponseWriter, r *http.Request) {
	collectionID, err := parseID(r.PathValue("collectionID"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid collection id")
		return
	}

	var req CollectionRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, errors.WithStack(err), "invalid collection")
		return
	}

	collection, err := h.collectionManager.UpdateCollection(r.Context(), &service.CollectionInput{Name: req.Name}, model.CollectionID(collectionID))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not update collection")
		return
	}

	writeJSON(w, r, http.StatusOK, toCollection(collection))
}

func (h *Handler) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	collectionID, err := parseID(r.PathValue("collectionID"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid collection id")
		return
	}

	if err := h.collectionManager.DeleteCollection(r.Context(), model.CollectionID(collectionID)); err != nil {
		writeError(w, r, errors.WithStack(err), "could not delete collection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
