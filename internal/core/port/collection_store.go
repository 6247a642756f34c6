package port

import (
	"context"

	"github.com/wagner1975/eezycollectionz/internal/core/model"
)

type CollectionStore interface {
	// CollectionExists reports whether a collection with the given id is stored
	CollectionExists(ctx context.Context, id model.CollectionID) (bool, error)

	// GetCollectionByID returns the collection or ErrNotFound
	GetCollectionByID(ctx context.Context, id model.CollectionID) (model.Collection, error)

	// CreateCollection inserts a new collection, returning ErrConflict if
	// its id is already in use
	CreateCollection(ctx context.Context, collection model.Collection) (model.Collection, error)

	// SaveCollection replaces a stored collection, returning ErrNotFound if
	// it does not exist (anymore)
	SaveCollection(ctx context.Context, collection model.Collection) (model.Collection, error)

	// DeleteCollectionByID deletes a collection and its entries. Deleting an
	// unknown id is not an error.
	DeleteCollectionByID(ctx context.Context, id model.CollectionID) error

	QueryCollections(ctx context.Context, opts QueryOptions) ([]model.Collection, int64, error)
}
