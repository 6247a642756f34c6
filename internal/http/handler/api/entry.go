package api

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/service"
)

type EntryRequest struct {
	Name string `json:"name" validate:"notblank"`
}

type Entry struct {
	ID             string `json:"id"`
	CollectionID   string `json:"collectionId"`
	Name           string `json:"name"`
	CreatedAt      string `json:"createdAt"`
	LastModifiedAt string `json:"lastModifiedAt"`
}

type ListEntriesResponse = PageResponse[Entry]

func toEntry(e model.Entry) Entry {
	return Entry{
		ID:             string(e.ID()),
		CollectionID:   string(e.CollectionID()),
		Name:           e.Name(),
		CreatedAt:      formatTime(e.CreatedAt()),
		LastModifiedAt: formatTime(e.LastModifiedAt()),
	}
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	collectionID, err := parseID(query.Get("collectionId"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid collection id")
		return
	}

	req, err := getPageRequest(query)
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid page request")
		return
	}

	page, err := h.entryManager.QueryEntriesByCollection(r.Context(), model.CollectionID(collectionID), req)
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not query entries")
		return
	}

	writeJSON(w, r, http.StatusOK, newPageResponse(page, toEntry))
}

func (h *Handler) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseID(r.PathValue("entryID"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid entry id")
		return
	}

	entry, err := h.entryManager.GetEntryByID(r.Context(), model.EntryID(entryID))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not retrieve entry")
		return
	}

	writeJSON(w, r, http.StatusOK, toEntry(entry))
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	collectionID, err := parseID(r.PathValue("collectionID"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid collection id")
		return
	}

	var req EntryRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, errors.WithStack(err), "invalid entry")
		return
	}

	entry, err := h.entryManager.CreateEntry(r.Context(), &service.EntryInput{Name: req.Name}, model.CollectionID(collectionID))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not create entry")
		return
	}

	ctx := slogx.WithAttrs(r.Context(), slog.String("entryID", string(entry.ID())), slog.String("collectionID", collectionID))
	slog.InfoContext(ctx, "entry created")

	writeJSON(w, r, http.StatusCreated, toEntry(entry))
}

func (h *Handler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseID(r.PathValue("entryID"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid entry id")
		return
	}

	var req EntryRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(w, r, errors.WithStack(err), "invalid entry")
		return
	}

	entry, err := h.entryManager.UpdateEntry(r.Context(), &service.EntryInput{Name: req.Name}, model.EntryID(entryID))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "could not update entry")
		return
	}

	writeJSON(w, r, http.StatusOK, toEntry(entry))
}

func (h *Handler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseID(r.PathValue("entryID"))
	if err != nil {
		writeError(w, r, errors.WithStack(err), "invalid entry id")
		return
	}

	if err := h.entryManager.DeleteEntry(r.Context(), model.EntryID(entryID)); err != nil {
		writeError(w, r, errors.WithStack(err), "could not delete entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
