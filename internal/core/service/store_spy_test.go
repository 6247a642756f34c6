package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/wagner1975/eezycollectionz/internal/adapter/memory"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

// spyStore records every call made to an in-memory store and lets tests
// replace the result of the write operations.
type spyStore struct {
	*memory.Store

	calls atomic.Int64

	createCollection func(ctx context.Context, collection model.Collection) (model.Collection, error)
	saveCollection   func(ctx context.Context, collection model.Collection) (model.Collection, error)
	createEntry      func(ctx context.Context, entry model.Entry) (model.Entry, error)
	saveEntry        func(ctx context.Context, entry model.Entry) (model.Entry, error)
}

func newSpyStore() *spyStore {
	return &spyStore{Store: memory.NewStore()}
}

func (s *spyStore) Calls() int64 {
	return s.calls.Load()
}

func (s *spyStore) CollectionExists(ctx context.Context, id model.CollectionID) (bool, error) {
	s.calls.Add(1)
	return s.Store.CollectionExists(ctx, id)
}

func (s *spyStore) GetCollectionByID(ctx context.Context, id model.CollectionID) (model.Collection, error) {
	s.calls.Add(1)
	return s.Store.GetCollectionByID(ctx, id)
}

func (s *spyStore) CreateCollection(ctx context.Context, collection model.Collection) (model.Collection, error) {
	s.calls.Add(1)
	if s.createCollection != nil {
		return s.createCollection(ctx, collection)
	}
	return s.Store.CreateCollection(ctx, collection)
}

func (s *spyStore) SaveCollection(ctx context.Context, collection model.Collection) (model.Collection, error) {
	s.calls.Add(1)
	if s.saveCollection != nil {
		return s.saveCollection(ctx, collection)
	}
	return s.Store.SaveCollection(ctx, collection)
}

func (s *spyStore) DeleteCollectionByID(ctx context.Context, id model.CollectionID) error {
	s.calls.Add(1)
	return s.Store.DeleteCollectionByID(ctx, id)
}

func (s *spyStore) QueryCollections(ctx context.Context, opts port.QueryOptions) ([]model.Collection, int64, error) {
	s.calls.Add(1)
	return s.Store.QueryCollections(ctx, opts)
}

func (s *spyStore) EntryExists(ctx context.Context, id model.EntryID) (bool, error) {
	s.calls.Add(1)
	return s.Store.EntryExists(ctx, id)
}

func (s *spyStore) GetEntryByID(ctx context.Context, id model.EntryID) (model.Entry, error) {
	s.calls.Add(1)
	return s.Store.GetEntryByID(ctx, id)
}

func (s *spyStore) CreateEntry(ctx context.Context, entry model.Entry) (model.Entry, error) {
	s.calls.Add(1)
	if s.createEntry != nil {
		return s.createEntry(ctx, entry)
	}
	return s.Store.CreateEntry(ctx, entry)
}

func (s *spyStore) SaveEntry(ctx context.Context, entry model.Entry) (model.Entry, error) {
	s.calls.Add(1)
	if s.saveEntry != nil {
		return s.saveEntry(ctx, entry)
	}
	return s.Store.SaveEntry(ctx, entry)
}

func (s *spyStore) DeleteEntryByID(ctx context.Context, id model.EntryID) error {
	s.calls.Add(1)
	return s.Store.DeleteEntryByID(ctx, id)
}

func (s *spyStore) QueryEntries(ctx context.Context, opts port.QueryOptions) ([]model.Entry, int64, error) {
	s.calls.Add(1)
	return s.Store.QueryEntries(ctx, opts)
}

func (s *spyStore) QueryEntriesByCollectionID(ctx context.Context, collectionID model.CollectionID, opts port.QueryOptions) ([]model.Entry, int64, error) {
	s.calls.Add(1)
	return s.Store.QueryEntriesByCollectionID(ctx, collectionID, opts)
}

var (
	_ port.CollectionStore = &spyStore{}
	_ port.EntryStore      = &spyStore{}
)

// fakeClock returns the instants it holds, in order, repeating the last one.
type fakeClock struct {
	instants []time.Time
	calls    int
}

func (c *fakeClock) Now() time.Time {
	now := c.instants[min(c.calls, len(c.instants)-1)]
	c.calls++
	return now
}

var (
	t0 = time.Date(2023, time.December, 13, 11, 49, 12, 888000, time.UTC)
	t1 = t0.Add(90 * time.Second)
)
