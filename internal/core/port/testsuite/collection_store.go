package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

// Reference instant shared by the store suites, already truncated to the
// microsecond so that every adapter can restore it exactly.
var referenceTime = time.Date(2023, time.December, 13, 11, 49, 12, 888000, time.UTC)

func TestCollectionStore(t *testing.T, factory func(t *testing.T) (port.CollectionStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.CollectionStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				collection := model.NewCollection(model.NewCollectionID(), "First collection", referenceTime, referenceTime.Add(time.Second))

				created, err := store.CreateCollection(ctx, collection)
				if err != nil {
					return errors.WithStack(err)
				}

				assertCollection(t, collection, created)

				stored, err := store.GetCollectionByID(ctx, collection.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				assertCollection(t, collection, stored)

				exists, err := store.CollectionExists(ctx, collection.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if !exists {
					t.Errorf("store.CollectionExists(): expected true, got false")
				}

				return nil
			},
		},
		{
			Name: "GetUnknown",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				_, err := store.GetCollectionByID(ctx, model.NewCollectionID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				exists, err := store.CollectionExists(ctx, model.NewCollectionID())
				if err != nil {
					return errors.WithStack(err)
				}

				if exists {
					t.Errorf("store.CollectionExists(): expected false, got true")
				}

				return nil
			},
		},
		{
			Name: "CreateDuplicate",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				collection := model.NewCollection(model.NewCollectionID(), "Original", referenceTime, referenceTime)

				if _, err := store.CreateCollection(ctx, collection); err != nil {
					return errors.WithStack(err)
				}

				duplicate := model.NewCollection(collection.ID(), "Duplicate", referenceTime, referenceTime)

				_, err := store.CreateCollection(ctx, duplicate)
				if !errors.Is(err, port.ErrConflict) {
					t.Errorf("err: expected port.ErrConflict, got %+v", err)
				}

				stored, err := store.GetCollectionByID(ctx, collection.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Original", stored.Name(); e != g {
					t.Errorf("stored.Name(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "SaveReplaces",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				collection := model.NewCollection(model.NewCollectionID(), "Before", referenceTime, referenceTime)

				if _, err := store.CreateCollection(ctx, collection); err != nil {
					return errors.WithStack(err)
				}

				updated := model.NewCollection(collection.ID(), "After", referenceTime, referenceTime.Add(time.Hour))

				saved, err := store.SaveCollection(ctx, updated)
				if err != nil {
					return errors.WithStack(err)
				}

				assertCollection(t, updated, saved)

				stored, err := store.GetCollectionByID(ctx, collection.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				assertCollection(t, updated, stored)

				return nil
			},
		},
		{
			Name: "DeleteIsIdempotent",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				collection := model.NewCollection(model.NewCollectionID(), "Ephemeral", referenceTime, referenceTime)

				if _, err := store.CreateCollection(ctx, collection); err != nil {
					return errors.WithStack(err)
				}

				for i := 0; i < 2; i++ {
					if err := store.DeleteCollectionByID(ctx, collection.ID()); err != nil {
						return errors.WithStack(err)
					}
				}

				if _, err := store.GetCollectionByID(ctx, collection.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "SaveUnknownReturnsNotFound",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				collection := model.NewCollection(model.NewCollectionID(), "Ghost", referenceTime, referenceTime)

				if _, err := store.SaveCollection(ctx, collection); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				exists, err := store.CollectionExists(ctx, collection.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if exists {
					t.Errorf("store.CollectionExists(): expected false, got true")
				}

				return nil
			},
		},
		{
			Name: "SaveDeletedReturnsNotFound",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				collection := model.NewCollection(model.NewCollectionID(), "Before", referenceTime, referenceTime)

				if _, err := store.CreateCollection(ctx, collection); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteCollectionByID(ctx, collection.ID()); err != nil {
					return errors.WithStack(err)
				}

				updated := model.NewCollection(collection.ID(), "After", referenceTime, referenceTime.Add(time.Hour))

				if _, err := store.SaveCollection(ctx, updated); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				if _, err := store.GetCollectionByID(ctx, collection.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "DeleteUnknownLeavesOthers",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				kept := make([]model.Collection, 0, 2)
				for i, name := range []string{"One", "Two"} {
					createdAt := referenceTime.Add(time.Duration(i) * time.Second)
					collection := model.NewCollection(model.NewCollectionID(), name, createdAt, createdAt)
					if _, err := store.CreateCollection(ctx, collection); err != nil {
						return errors.WithStack(err)
					}

					kept = append(kept, collection)
				}

				if err := store.DeleteCollectionByID(ctx, model.NewCollectionID()); err != nil {
					return errors.WithStack(err)
				}

				_, total, err := store.QueryCollections(ctx, port.QueryOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(len(kept)), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				for _, k := range kept {
					stored, err := store.GetCollectionByID(ctx, k.ID())
					if err != nil {
						return errors.WithStack(err)
					}

					assertCollection(t, k, stored)
				}

				return nil
			},
		},
		{
			Name: "QueryPagesAndSorts",
			Run: func(t *testing.T, ctx context.Context, store port.CollectionStore) error {
				names := []string{"Charlie", "Alpha", "Bravo"}
				for i, name := range names {
					createdAt := referenceTime.Add(time.Duration(i) * time.Minute)
					collection := model.NewCollection(model.NewCollectionID(), name, createdAt, createdAt)
					if _, err := store.CreateCollection(ctx, collection); err != nil {
						return errors.WithStack(err)
					}
				}

				all, total, err := store.QueryCollections(ctx, port.QueryOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := int64(3), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := names, collectionNames(all); !equalStrings(e, g) {
					t.Errorf("collectionNames(all): expected %v, got %v", e, g)
				}

				page, limit := 1, 2

				paged, total, err := store.QueryCollections(ctx, port.QueryOptions{
					Page:  &page,
					Limit: &limit,
					Sort:  []port.SortOrder{{Field: port.SortFieldName}},
				})
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("paged: %s", spew.Sdump(collectionNames(paged)))

				if e, g := int64(3), total; e != g {
					t.Errorf("total: expected %d, got %d", e, g)
				}

				if e, g := []string{"Charlie"}, collectionNames(paged); !equalStrings(e, g) {
					t.Errorf("collectionNames(paged): expected %v, got %v", e, g)
				}

				descending, _, err := store.QueryCollections(ctx, port.QueryOptions{
					Sort: []port.SortOrder{{Field: port.SortFieldName, Descending: true}},
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := []string{"Charlie", "Bravo", "Alpha"}, collectionNames(descending); !equalStrings(e, g) {
					t.Errorf("collectionNames(descending): expected %v, got %v", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}

func assertCollection(t *testing.T, expected model.Collection, got model.Collection) {
	t.Helper()

	if got == nil {
		t.Fatalf("collection: expected non nil value")
	}

	if e, g := expected.ID(), got.ID(); e != g {
		t.Errorf("collection.ID(): expected '%s', got '%s'", e, g)
	}

	if e, g := expected.Name(), got.Name(); e != g {
		t.Errorf("collection.Name(): expected '%s', got '%s'", e, g)
	}

	if e, g := expected.CreatedAt(), got.CreatedAt(); !e.Equal(g) {
		t.Errorf("collection.CreatedAt(): expected '%v', got '%v'", e, g)
	}

	if e, g := expected.LastModifiedAt(), got.LastModifiedAt(); !e.Equal(g) {
		t.Errorf("collection.LastModifiedAt(): expected '%v', got '%v'", e, g)
	}
}

func collectionNames(collections []model.Collection) []string {
	names := make([]string, 0, len(collections))
	for _, c := range collections {
		names = append(names, c.Name())
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
