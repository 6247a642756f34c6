package memory

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

// EntryExists implements port.EntryStore.
func (s *Store) EntryExists(ctx context.Context, id model.EntryID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.entries[id]

	return exists, nil
}

// GetEntryByID implements port.EntryStore.
func (s *Store) GetEntryByID(ctx context.Context, id model.EntryID) (model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return model.CopyEntry(entry), nil
}

// CreateEntry implements port.EntryStore.
func (s *Store) CreateEntry(ctx context.Context, entry model.Entry) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.ID()]; exists {
		return nil, errors.Wrapf(port.ErrConflict, "entry '%s' already exists", entry.ID())
	}

	if _, exists := s.collections[entry.CollectionID()]; !exists {
		return nil, errors.Wrapf(port.ErrConflict, "collection '%s' does not exist", entry.CollectionID())
	}

	s.entries[entry.ID()] = model.CopyEntry(entry)

	return model.CopyEntry(entry), nil
}

// SaveEntry implements port.EntryStore.
func (s *Store) SaveEntry(ctx context.Context, entry model.Entry) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.ID()]; !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if _, exists := s.collections[entry.CollectionID()]; !exists {
		return nil, errors.Wrapf(port.ErrConflict, "collection '%s' does not exist", entry.CollectionID())
	}

	s.entries[entry.ID()] = model.CopyEntry(entry)

	return model.CopyEntry(entry), nil
}

// DeleteEntryByID implements port.EntryStore.
func (s *Store) DeleteEntryByID(ctx context.Context, id model.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)

	return nil
}

// QueryEntries implements port.EntryStore.
func (s *Store) QueryEntries(ctx context.Context, opts port.QueryOptions) ([]model.Entry, int64, error) {
	return s.queryEntries(func(e *model.BaseEntry) bool { return true }, opts)
}

// QueryEntriesByCollectionID implements port.EntryStore.
func (s *Store) QueryEntriesByCollectionID(ctx context.Context, collectionID model.CollectionID, opts port.QueryOptions) ([]model.Entry, int64, error) {
	return s.queryEntries(func(e *model.BaseEntry) bool { return e.CollectionID() == collectionID }, opts)
}

func (s *Store) queryEntries(match func(e *model.BaseEntry) bool, opts port.QueryOptions) ([]model.Entry, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*model.BaseEntry, 0)
	for _, e := range s.entries {
		if !match(e) {
			continue
		}

		entries = append(entries, model.CopyEntry(e))
	}

	page, total := query(entries, func(e *model.BaseEntry) string { return string(e.ID()) }, opts)

	results := make([]model.Entry, 0, len(page))
	for _, e := range page {
		results = append(results, e)
	}

	return results, total, nil
}
