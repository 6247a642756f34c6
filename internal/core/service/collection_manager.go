package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"github.com/wagner1975/eezycollectionz/internal/metrics"
)

type CollectionInput struct {
	Name string
}

type CollectionManagerOptions struct {
	IDGenerator            port.IDGenerator[model.CollectionID]
	Clock                  port.Clock
	MaxRetriesToGenerateID int
}

type CollectionManagerOptionFunc func(opts *CollectionManagerOptions)

func WithCollectionManagerIDGenerator(generator port.IDGenerator[model.CollectionID]) CollectionManagerOptionFunc {
	return func(opts *CollectionManagerOptions) {
		opts.IDGenerator = generator
	}
}

func WithCollectionManagerClock(clock port.Clock) CollectionManagerOptionFunc {
	return func(opts *CollectionManagerOptions) {
		opts.Clock = clock
	}
}

func WithCollectionManagerMaxRetries(maxRetries int) CollectionManagerOptionFunc {
	return func(opts *CollectionManagerOptions) {
		opts.MaxRetriesToGenerateID = maxRetries
	}
}

func NewCollectionManagerOptions(funcs ...CollectionManagerOptionFunc) *CollectionManagerOptions {
	opts := &CollectionManagerOptions{
		IDGenerator:            RandomCollectionIDGenerator,
		Clock:                  NewSystemClock(),
		MaxRetriesToGenerateID: DefaultMaxRetriesToGenerateID,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// CollectionManager implements the lifecycle of collections on top of a
// CollectionStore. It keeps no record between calls.
type CollectionManager struct {
	store     port.CollectionStore
	allocator *IDAllocator[model.CollectionID]
	clock     port.Clock
}

func (m *CollectionManager) ListCollections(ctx context.Context) ([]model.Collection, error) {
	collections, _, err := m.store.QueryCollections(ctx, port.QueryOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return collections, nil
}

func (m *CollectionManager) QueryCollections(ctx context.Context, req *port.PageRequest) (*port.Page[model.Collection], error) {
	if err := checkPageRequest(req); err != nil {
		return nil, errors.WithStack(err)
	}

	collections, total, err := m.store.QueryCollections(ctx, port.NewQueryOptions(req))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return newPage(collections, total, req), nil
}

func (m *CollectionManager) GetCollectionByID(ctx context.Context, id model.CollectionID) (model.Collection, error) {
	if id == "" {
		return nil, invalidArgument("collection id is empty")
	}

	collection, err := m.store.GetCollectionByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return collection, nil
}

func (m *CollectionManager) CreateCollection(ctx context.Context, input *CollectionInput) (model.Collection, error) {
	if input == nil {
		return nil, invalidArgument("collection input is nil")
	}

	id, err := m.allocator.Allocate(ctx)
	if err != nil {
		if errors.Is(err, ErrAllocationFailed) {
			countOperation(metrics.KindCollection, metrics.OperationCreate, metrics.OutcomeUnprocessable)
			return nil, errors.WithStack(unprocessable(err))
		}

		countOperation(metrics.KindCollection, metrics.OperationCreate, metrics.OutcomeError)
		return nil, errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("collectionID", string(id)))

	now := m.clock.Now()
	collection := model.NewCollection(id, input.Name, now, now)

	created, err := persist(ctx, metrics.KindCollection, metrics.OperationCreate, func(ctx context.Context) (model.Collection, error) {
		return m.store.CreateCollection(ctx, collection)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "collection created")

	return created, nil
}

// UpdateCollection replaces the name of an existing collection. Its
// creation date is kept.
func (m *CollectionManager) UpdateCollection(ctx context.Context, input *CollectionInput, id model.CollectionID) (model.Collection, error) {
	if input == nil {
		return nil, invalidArgument("collection input is nil")
	}

	if id == "" {
		return nil, invalidArgument("collection id is empty")
	}

	ctx = slogx.WithAttrs(ctx, slog.String("collectionID", string(id)))

	existing, err := m.store.GetCollectionByID(ctx, id)
	if err != nil {
		countLookupFailure(metrics.KindCollection, metrics.OperationUpdate, err)
		return nil, errors.WithStack(err)
	}

	updated := model.NewCollection(existing.ID(), input.Name, existing.CreatedAt(), nextModification(m.clock, existing))

	saved, err := persist(ctx, metrics.KindCollection, metrics.OperationUpdate, func(ctx context.Context) (model.Collection, error) {
		return m.store.SaveCollection(ctx, updated)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "collection updated")

	return saved, nil
}

func (m *CollectionManager) DeleteCollection(ctx context.Context, id model.CollectionID) error {
	if id == "" {
		return invalidArgument("collection id is empty")
	}

	if err := m.store.DeleteCollectionByID(ctx, id); err != nil {
		countOperation(metrics.KindCollection, metrics.OperationDelete, metrics.OutcomeError)
		return errors.WithStack(err)
	}

	countOperation(metrics.KindCollection, metrics.OperationDelete, metrics.OutcomeSuccess)

	return nil
}

func NewCollectionManager(store port.CollectionStore, funcs ...CollectionManagerOptionFunc) *CollectionManager {
	opts := NewCollectionManagerOptions(funcs...)

	var oracle port.ExistenceOracle[model.CollectionID]
	if store != nil {
		oracle = port.ExistenceOracleFunc[model.CollectionID](store.CollectionExists)
	}

	return &CollectionManager{
		store:     store,
		allocator: NewIDAllocator(opts.IDGenerator, oracle, opts.MaxRetriesToGenerateID, WithIDAllocatorKind(metrics.KindCollection)),
		clock:     opts.Clock,
	}
}
