package port

import (
	"context"

	"github.com/wagner1975/eezycollectionz/internal/core/model"
)

type EntryStore interface {
	EntryExists(ctx context.Context, id model.EntryID) (bool, error)

	// GetEntryByID returns the entry or ErrNotFound
	GetEntryByID(ctx context.Context, id model.EntryID) (model.Entry, error)

	// CreateEntry inserts a new entry, returning ErrConflict if its id is
	// already in use or if its parent collection does not exist
	CreateEntry(ctx context.Context, entry model.Entry) (model.Entry, error)

	// SaveEntry replaces a stored entry. It returns ErrNotFound if the entry
	// does not exist and ErrConflict if its collection does not.
	SaveEntry(ctx context.Context, entry model.Entry) (model.Entry, error)

	// DeleteEntryByID is idempotent
	DeleteEntryByID(ctx context.Context, id model.EntryID) error

	QueryEntries(ctx context.Context, opts QueryOptions) ([]model.Entry, int64, error)
	QueryEntriesByCollectionID(ctx context.Context, collectionID model.CollectionID, opts QueryOptions) ([]model.Entry, int64, error)
}
