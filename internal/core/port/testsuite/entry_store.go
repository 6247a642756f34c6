package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

// EntryStoreFactory returns a collection store and an entry store sharing
// the same backend.
type EntryStoreFactory func(t *testing.T) (port.CollectionStore, port.EntryStore, error)

func TestEntryStore(t *testing.T, factory EntryStoreFactory) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				collection, err := createCollection(ctx, collections, "Parent")
				if err != nil {
					return errors.WithStack(err)
				}

				entry := model.NewEntry(model.NewEntryID(), collection.ID(), "First entry (1)", referenceTime, referenceTime)

				created, err := entries.CreateEntry(ctx, entry)
				if err != nil {
					return errors.WithStack(err)
				}

				assertEntry(t, entry, created)

				stored, err := entries.GetEntryByID(ctx, entry.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				assertEntry(t, entry, stored)

				exists, err := entries.EntryExists(ctx, entry.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if !exists {
					t.Errorf("entries.EntryExists(): expected true, got false")
				}

				return nil
			},
		},
		{
			Name: "GetUnknown",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				if _, err := entries.GetEntryByID(ctx, model.NewEntryID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "CreateWithoutParent",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				entry := model.NewEntry(model.NewEntryID(), model.NewCollectionID(), "Orphan", referenceTime, referenceTime)

				if _, err := entries.CreateEntry(ctx, entry); !errors.Is(err, port.ErrConflict) {
					t.Errorf("err: expected port.ErrConflict, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "CreateDuplicate",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				collection, err := createCollection(ctx, collections, "Parent")
				if err != nil {
					return errors.WithStack(err)
				}

				entry := model.NewEntry(model.NewEntryID(), collection.ID(), "Original", referenceTime, referenceTime)

				if _, err := entries.CreateEntry(ctx, entry); err != nil {
					return errors.WithStack(err)
				}

				if _, err := entries.CreateEntry(ctx, entry); !errors.Is(err, port.ErrConflict) {
					t.Errorf("err: expected port.ErrConflict, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "SaveReplaces",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				collection, err := createCollection(ctx, collections, "Parent")
				if err != nil {
					return errors.WithStack(err)
				}

				entry := model.NewEntry(model.NewEntryID(), collection.ID(), "Before", referenceTime, referenceTime)

				if _, err := entries.CreateEntry(ctx, entry); err != nil {
					return errors.WithStack(err)
				}

				updated := model.NewEntry(entry.ID(), collection.ID(), "After", referenceTime, referenceTime.Add(time.Hour))

				if _, err := entries.SaveEntry(ctx, updated); err != nil {
					return errors.WithStack(err)
				}

				stored, err := entries.GetEntryByID(ctx, entry.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				assertEntry(t, updated, stored)

				return nil
			},
		},
		{
			Name: "DeleteIsIdempotent",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				collection, err := createCollection(ctx, collections, "Parent")
				if err != nil {
					return errors.WithStack(err)
				}

				entry := model.NewEntry(model.NewEntryID(), collection.ID(), "Ephemeral", referenceTime, referenceTime)

				if _, err := entries.CreateEntry(ctx, entry); err != nil {
					return errors.WithStack(err)
				}

				for i := 0; i < 2; i++ {
					if err := entries.DeleteEntryByID(ctx, entry.ID()); err != nil {
						return errors.WithStack(err)
					}
				}

				if _, err := entries.GetEntryByID(ctx, entry.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "SaveUnknownReturnsNotFound",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				collection, err := createCollection(ctx, collections, "Parent")
				if err != nil {
					return errors.WithStack(err)
				}

				entry := model.NewEntry(model.NewEntryID(), collection.ID(), "Ghost", referenceTime, referenceTime)

				if _, err := entries.SaveEntry(ctx, entry); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				if _, err := entries.GetEntryByID(ctx, entry.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "SaveDeletedReturnsNotFound",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				collection, err := createCollection(ctx, collections, "Parent")
				if err != nil {
					return errors.WithStack(err)
				}

				entry := model.NewEntry(model.NewEntryID(), collection.ID(), "Before", referenceTime, referenceTime)

				if _, err := entries.CreateEntry(ctx, entry); err != nil {
					return errors.WithStack(err)
				}

				if err := entries.DeleteEntryByID(ctx, entry.ID()); err != nil {
					return errors.WithStack(err)
				}

				updated := model.NewEntry(entry.ID(), collection.ID(), "After", referenceTime, referenceTime.Add(time.Hour))

				if _, err := entries.SaveEntry(ctx, updated); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				if _, err := entries.GetEntryByID(ctx, entry.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "DeleteUnknownLeavesOthers",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				collection, err := createCollection(ctx, collections, "Parent")
				if err != nil {
					return errors.WithStack(err)
				}

				kept := make([]model.Entry, 0, 2)
				for i, name := range []string{"One", "Two"} {
					createdAt := referenceTime.Add(time.Duration(i) * time.Second)
					entry := model.NewEntry(model.NewEntryID(), collection.ID(), name, createdAt, createdAt)
					if _, err := entries.CreateEntry(ctx, entry); err != nil {
						return errors.WithStack(err)
					}

					kept = append(kept, entry)
				}

				if err := entries.DeleteEntryByID(ctx, model.NewEntryID()); err != nil {
					return errors.WithStack(err)
				}

				_, total, err := entries.QueryEntries(ctx, port.QueryOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(len(kept)), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				for _, k := range kept {
					stored, err := entries.GetEntryByID(ctx, k.ID())
					if err != nil {
						return errors.WithStack(err)
					}

					assertEntry(t, k, stored)
				}

				return nil
			},
		},
		{
			Name: "CollectionDeleteCascades",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				doomed, err := createCollection(ctx, collections, "Doomed")
				if err != nil {
					return errors.WithStack(err)
				}

				survivor, err := createCollection(ctx, collections, "Survivor")
				if err != nil {
					return errors.WithStack(err)
				}

				doomedEntry := model.NewEntry(model.NewEntryID(), doomed.ID(), "Doomed entry", referenceTime, referenceTime)
				if _, err := entries.CreateEntry(ctx, doomedEntry); err != nil {
					return errors.WithStack(err)
				}

				survivorEntry := model.NewEntry(model.NewEntryID(), survivor.ID(), "Survivor entry", referenceTime, referenceTime)
				if _, err := entries.CreateEntry(ctx, survivorEntry); err != nil {
					return errors.WithStack(err)
				}

				if err := collections.DeleteCollectionByID(ctx, doomed.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := entries.GetEntryByID(ctx, doomedEntry.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				if _, err := entries.GetEntryByID(ctx, survivorEntry.ID()); err != nil {
					return errors.WithStack(err)
				}

				return nil
			},
		},
		{
			Name: "QueryByCollection",
			Run: func(t *testing.T, ctx context.Context, collections port.CollectionStore, entries port.EntryStore) error {
				first, err := createCollection(ctx, collections, "First collection")
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := createCollection(ctx, collections, "Second collection")
				if err != nil {
					return errors.WithStack(err)
				}

				for i, name := range []string{"First entry (1)", "Second entry (1)", "Third entry (1)"} {
					createdAt := referenceTime.Add(time.Duration(i) * time.Second)
					if _, err := entries.CreateEntry(ctx, model.NewEntry(model.NewEntryID(), first.ID(), name, createdAt, createdAt)); err != nil {
						return errors.WithStack(err)
					}
				}

				if _, err := entries.CreateEntry(ctx, model.NewEntry(model.NewEntryID(), second.ID(), "First entry (2)", referenceTime, referenceTime)); err != nil {
					return errors.WithStack(err)
				}

				all, total, err := entries.QueryEntries(ctx, port.QueryOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(4), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := 4, len(all); e != g {
					t.Errorf("len(all): expected %d, got %d", e, g)
				}

				page, limit := 0, 2

				paged, total, err := entries.QueryEntriesByCollectionID(ctx, first.ID(), port.QueryOptions{
					Page:  &page,
					Limit: &limit,
					Sort:  []port.SortOrder{{Field: port.SortFieldCreatedAt, Descending: true}},
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(3), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := []string{"Third entry (1)", "Second entry (1)"}, entryNames(paged); !equalStrings(e, g) {
					t.Errorf("entryNames(paged): expected %v, got %v", e, g)
				}

				for _, entry := range paged {
					if e, g := first.ID(), entry.CollectionID(); e != g {
						t.Errorf("entry.CollectionID(): expected '%s', got '%s'", e, g)
					}
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			collections, entries, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, collections, entries); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}

func createCollection(ctx context.Context, store port.CollectionStore, name string) (model.Collection, error) {
	collection, err := store.CreateCollection(ctx, model.NewCollection(model.NewCollectionID(), name, referenceTime, referenceTime))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return collection, nil
}

func assertEntry(t *testing.T, expected model.Entry, got model.Entry) {
	t.Helper()

	if got == nil {
		t.Fatalf("entry: expected non nil value")
	}

	if e, g := expected.ID(), got.ID(); e != g {
		t.Errorf("entry.ID(): expected '%s', got '%s'", e, g)
	}

	if e, g := expected.CollectionID(), got.CollectionID(); e != g {
		t.Errorf("entry.CollectionID(): expected '%s', got '%s'", e, g)
	}

	if e, g := expected.Name(), got.Name(); e != g {
		t.Errorf("entry.Name(): expected '%s', got '%s'", e, g)
	}

	if e, g := expected.CreatedAt(), got.CreatedAt(); !e.Equal(g) {
		t.Errorf("entry.CreatedAt(): expected '%v', got '%v'", e, g)
	}

	if e, g := expected.LastModifiedAt(), got.LastModifiedAt(); !e.Equal(g) {
		t.Errorf("entry.LastModifiedAt(): expected '%v', got '%v'", e, g)
	}
}

func entryNames(entries []model.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
