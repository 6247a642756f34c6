package memory

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

// CollectionExists implements port.CollectionStore.
func (s *Store) CollectionExists(ctx context.Context, id model.CollectionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.collections[id]

	return exists, nil
}

// GetCollectionByID implements port.CollectionStore.
func (s *Store) GetCollectionByID(ctx context.Context, id model.CollectionID) (model.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collection, exists := s.collections[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return model.CopyCollection(collection), nil
}

// CreateCollection implements port.CollectionStore.
func (s *Store) CreateCollection(ctx context.Context, collection model.Collection) (model.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.collections[collection.ID()]; exists {
		return nil, errors.Wrapf(port.ErrConflict, "collection '%s' already exists", collection.ID())
	}

	s.collections[collection.ID()] = model.CopyCollection(collection)

	return model.CopyCollection(collection), nil
}

// SaveCollection implements port.CollectionStore.
func (s *Store) SaveCollection(ctx context.Context, collection model.Collection) (model.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.collections[collection.ID()]; !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	s.collections[collection.ID()] = model.CopyCollection(collection)

	return model.CopyCollection(collection), nil
}

// DeleteCollectionByID implements port.CollectionStore.
func (s *Store) DeleteCollectionByID(ctx context.Context, id model.CollectionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, id)

	for entryID, e := range s.entries {
		if e.CollectionID() == id {
			delete(s.entries, entryID)
		}
	}

	return nil
}

// QueryCollections implements port.CollectionStore.
func (s *Store) QueryCollections(ctx context.Context, opts port.QueryOptions) ([]model.Collection, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collections := make([]*model.BaseCollection, 0, len(s.collections))
	for _, c := range s.collections {
		collections = append(collections, model.CopyCollection(c))
	}

	page, total := query(collections, func(c *model.BaseCollection) string { return string(c.ID()) }, opts)

	results := make([]model.Collection, 0, len(page))
	for _, c := range page {
		results = append(results, c)
	}

	return results, total, nil
}
