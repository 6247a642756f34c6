package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

func TestCollectionManagerCreate(t *testing.T) {
	store := newSpyStore()
	clock := &fakeClock{instants: []time.Time{t0}}

	manager := NewCollectionManager(store, WithCollectionManagerClock(clock))

	ctx := context.Background()

	created, err := manager.CreateCollection(ctx, &CollectionInput{Name: "First collection"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if created.ID() == "" {
		t.Errorf("created.ID(): expected non empty identifier")
	}

	if e, g := "First collection", created.Name(); e != g {
		t.Errorf("created.Name(): expected '%s', got '%s'", e, g)
	}

	if e, g := t0, created.CreatedAt(); !e.Equal(g) {
		t.Errorf("created.CreatedAt(): expected '%v', got '%v'", e, g)
	}

	if e, g := created.CreatedAt(), created.LastModifiedAt(); !e.Equal(g) {
		t.Errorf("created.LastModifiedAt(): expected '%v', got '%v'", e, g)
	}

	if e, g := 1, clock.calls; e != g {
		t.Errorf("clock.calls: expected %d, got %d", e, g)
	}

	stored, err := manager.GetCollectionByID(ctx, created.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := created.Name(), stored.Name(); e != g {
		t.Errorf("stored.Name(): expected '%s', got '%s'", e, g)
	}
}

func TestCollectionManagerUpdate(t *testing.T) {
	store := newSpyStore()
	clock := &fakeClock{instants: []time.Time{t1}}

	ctx := context.Background()

	id := model.NewCollectionID()
	if _, err := store.Store.CreateCollection(ctx, model.NewCollection(id, "A", t0, t0)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	manager := NewCollectionManager(store, WithCollectionManagerClock(clock))

	updated, err := manager.UpdateCollection(ctx, &CollectionInput{Name: "B"}, id)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := id, updated.ID(); e != g {
		t.Errorf("updated.ID(): expected '%s', got '%s'", e, g)
	}

	if e, g := "B", updated.Name(); e != g {
		t.Errorf("updated.Name(): expected '%s', got '%s'", e, g)
	}

	if e, g := t0, updated.CreatedAt(); !e.Equal(g) {
		t.Errorf("updated.CreatedAt(): expected '%v', got '%v'", e, g)
	}

	if e, g := t1, updated.LastModifiedAt(); !e.Equal(g) {
		t.Errorf("updated.LastModifiedAt(): expected '%v', got '%v'", e, g)
	}
}

func TestCollectionManagerUpdateUnknown(t *testing.T) {
	store := newSpyStore()
	manager := NewCollectionManager(store)

	_, err := manager.UpdateCollection(context.Background(), &CollectionInput{Name: "B"}, model.NewCollectionID())
	if !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%+v'", port.ErrNotFound, err)
	}
}

func TestCollectionManagerDeleteIsIdempotent(t *testing.T) {
	store := newSpyStore()
	manager := NewCollectionManager(store)

	ctx := context.Background()

	created, err := manager.CreateCollection(ctx, &CollectionInput{Name: "Ephemeral"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for i := 0; i < 2; i++ {
		if err := manager.DeleteCollection(ctx, created.ID()); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if _, err := manager.GetCollectionByID(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%+v'", port.ErrNotFound, err)
	}
}

func TestCollectionManagerInvalidArguments(t *testing.T) {
	type testCase struct {
		Name string
		Run  func(ctx context.Context, manager *CollectionManager) error
	}

	testCases := []testCase{
		{
			Name: "GetEmptyID",
			Run: func(ctx context.Context, manager *CollectionManager) error {
				_, err := manager.GetCollectionByID(ctx, "")
				return err
			},
		},
		{
			Name: "CreateNilInput",
			Run: func(ctx context.Context, manager *CollectionManager) error {
				_, err := manager.CreateCollection(ctx, nil)
				return err
			},
		},
		{
			Name: "UpdateNilInput",
			Run: func(ctx context.Context, manager *CollectionManager) error {
				_, err := manager.UpdateCollection(ctx, nil, model.NewCollectionID())
				return err
			},
		},
		{
			Name: "UpdateEmptyID",
			Run: func(ctx context.Context, manager *CollectionManager) error {
				_, err := manager.UpdateCollection(ctx, &CollectionInput{Name: "B"}, "")
				return err
			},
		},
		{
			Name: "DeleteEmptyID",
			Run: func(ctx context.Context, manager *CollectionManager) error {
				return manager.DeleteCollection(ctx, "")
			},
		},
		{
			Name: "QueryNilRequest",
			Run: func(ctx context.Context, manager *CollectionManager) error {
				_, err := manager.QueryCollections(ctx, nil)
				return err
			},
		},
		{
			Name: "QueryUnknownSortField",
			Run: func(ctx context.Context, manager *CollectionManager) error {
				_, err := manager.QueryCollections(ctx, &port.PageRequest{Size: 10, Sort: []port.SortOrder{{Field: "color"}}})
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store := newSpyStore()
			manager := NewCollectionManager(store)

			err := tc.Run(context.Background(), manager)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err: expected '%v', got '%+v'", ErrInvalidArgument, err)
			}

			if e, g := int64(0), store.Calls(); e != g {
				t.Errorf("store.Calls(): expected %d, got %d", e, g)
			}
		})
	}
}

func TestCollectionManagerUnprocessable(t *testing.T) {
	type testCase struct {
		Name   string
		Setup  func(store *spyStore)
		Create bool
	}

	testCases := []testCase{
		{
			Name: "CreateReturnsNothing",
			Setup: func(store *spyStore) {
				store.createCollection = func(ctx context.Context, collection model.Collection) (model.Collection, error) {
					return nil, nil
				}
			},
			Create: true,
		},
		{
			Name: "CreateConflicts",
			Setup: func(store *spyStore) {
				store.createCollection = func(ctx context.Context, collection model.Collection) (model.Collection, error) {
					return nil, errors.WithStack(port.ErrConflict)
				}
			},
			Create: true,
		},
		{
			Name: "SaveReturnsNothing",
			Setup: func(store *spyStore) {
				store.saveCollection = func(ctx context.Context, collection model.Collection) (model.Collection, error) {
					return (*model.BaseCollection)(nil), nil
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			store := newSpyStore()

			existing := model.NewCollection(model.NewCollectionID(), "A", t0, t0)
			if _, err := store.Store.CreateCollection(ctx, existing); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			tc.Setup(store)

			manager := NewCollectionManager(store)

			var err error
			if tc.Create {
				_, err = manager.CreateCollection(ctx, &CollectionInput{Name: "B"})
			} else {
				_, err = manager.UpdateCollection(ctx, &CollectionInput{Name: "B"}, existing.ID())
			}

			if !errors.Is(err, ErrUnprocessable) {
				t.Errorf("err: expected '%v', got '%+v'", ErrUnprocessable, err)
			}
		})
	}
}

func TestCollectionManagerAllocationFailure(t *testing.T) {
	ctx := context.Background()
	store := newSpyStore()

	taken := model.NewCollectionID()
	if _, err := store.Store.CreateCollection(ctx, model.NewCollection(taken, "Taken", t0, t0)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	manager := NewCollectionManager(
		store,
		WithCollectionManagerIDGenerator(port.IDGeneratorFunc[model.CollectionID](func() model.CollectionID { return taken })),
		WithCollectionManagerMaxRetries(2),
	)

	_, err := manager.CreateCollection(ctx, &CollectionInput{Name: "New"})

	if !errors.Is(err, ErrUnprocessable) {
		t.Errorf("err: expected '%v', got '%+v'", ErrUnprocessable, err)
	}

	if !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("err: expected '%v', got '%+v'", ErrAllocationFailed, err)
	}
}

func TestCollectionManagerQuery(t *testing.T) {
	ctx := context.Background()
	manager := NewCollectionManager(newSpyStore())

	for _, name := range []string{"One", "Two", "Three"} {
		if _, err := manager.CreateCollection(ctx, &CollectionInput{Name: name}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	page, err := manager.QueryCollections(ctx, &port.PageRequest{Page: 1, Size: 2, Sort: []port.SortOrder{{Field: port.SortFieldName}}})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(3), page.Total; e != g {
		t.Errorf("page.Total: expected %d, got %d", e, g)
	}

	if e, g := 2, page.TotalPages(); e != g {
		t.Errorf("page.TotalPages(): expected %d, got %d", e, g)
	}

	if e, g := 1, len(page.Items); e != g {
		t.Fatalf("len(page.Items): expected %d, got %d", e, g)
	}

	if e, g := "Two", page.Items[0].Name(); e != g {
		t.Errorf("page.Items[0].Name(): expected '%s', got '%s'", e, g)
	}

	all, err := manager.ListCollections(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, len(all); e != g {
		t.Errorf("len(all): expected %d, got %d", e, g)
	}
}

func TestCollectionManagerCreateWithSystemClock(t *testing.T) {
	manager := NewCollectionManager(newSpyStore())

	before := time.Now().Truncate(Precision)

	created, err := manager.CreateCollection(context.Background(), &CollectionInput{Name: "Timed"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	after := time.Now()

	if e, g := created.CreatedAt(), created.LastModifiedAt(); !e.Equal(g) {
		t.Errorf("created.LastModifiedAt(): expected '%v', got '%v'", e, g)
	}

	if created.CreatedAt().Before(before) || created.CreatedAt().After(after) {
		t.Errorf("created.CreatedAt(): expected '%v' to be within ['%v', '%v']", created.CreatedAt(), before, after)
	}
}

func TestCollectionManagerUpdateWithinSameTick(t *testing.T) {
	ctx := context.Background()
	store := newSpyStore()
	manager := NewCollectionManager(store, WithCollectionManagerClock(&fakeClock{instants: []time.Time{t0}}))

	created, err := manager.CreateCollection(ctx, &CollectionInput{Name: "A"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	updated, err := manager.UpdateCollection(ctx, &CollectionInput{Name: "B"}, created.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !updated.LastModifiedAt().After(created.LastModifiedAt()) {
		t.Errorf("updated.LastModifiedAt(): expected '%v' to be after '%v'", updated.LastModifiedAt(), created.LastModifiedAt())
	}

	if e, g := t0.Add(Precision), updated.LastModifiedAt(); !e.Equal(g) {
		t.Errorf("updated.LastModifiedAt(): expected '%v', got '%v'", e, g)
	}

	if e, g := t0, updated.CreatedAt(); !e.Equal(g) {
		t.Errorf("updated.CreatedAt(): expected '%v', got '%v'", e, g)
	}
}

func TestCollectionManagerUpdateDeletedMeanwhile(t *testing.T) {
	ctx := context.Background()
	store := newSpyStore()

	existing := model.NewCollection(model.NewCollectionID(), "A", t0, t0)
	if _, err := store.Store.CreateCollection(ctx, existing); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// The collection disappears between the read and the write of the update
	store.saveCollection = func(ctx context.Context, collection model.Collection) (model.Collection, error) {
		if err := store.Store.DeleteCollectionByID(ctx, collection.ID()); err != nil {
			return nil, errors.WithStack(err)
		}

		return store.Store.SaveCollection(ctx, collection)
	}

	manager := NewCollectionManager(store)

	if _, err := manager.UpdateCollection(ctx, &CollectionInput{Name: "B"}, existing.ID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("err: expected '%v', got '%+v'", port.ErrNotFound, err)
	}

	exists, err := store.Store.CollectionExists(ctx, existing.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if exists {
		t.Errorf("store.CollectionExists(): expected false, got true")
	}
}

func TestCollectionManagerDeleteUnknownLeavesOthers(t *testing.T) {
	ctx := context.Background()
	manager := NewCollectionManager(newSpyStore())

	kept := make([]model.Collection, 0, 2)
	for _, name := range []string{"One", "Two"} {
		created, err := manager.CreateCollection(ctx, &CollectionInput{Name: name})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		kept = append(kept, created)
	}

	if err := manager.DeleteCollection(ctx, model.NewCollectionID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	page, err := manager.QueryCollections(ctx, &port.PageRequest{Size: 10})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(len(kept)), page.Total; e != g {
		t.Errorf("page.Total: expected %d, got %d", e, g)
	}

	for _, k := range kept {
		stored, err := manager.GetCollectionByID(ctx, k.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := k.Name(), stored.Name(); e != g {
			t.Errorf("stored.Name(): expected '%s', got '%s'", e, g)
		}

		if e, g := k.LastModifiedAt(), stored.LastModifiedAt(); !e.Equal(g) {
			t.Errorf("stored.LastModifiedAt(): expected '%v', got '%v'", e, g)
		}
	}
}
