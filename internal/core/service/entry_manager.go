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

type EntryInput struct {
	Name string
}

type EntryManagerOptions struct {
	IDGenerator            port.IDGenerator[model.EntryID]
	Clock                  port.Clock
	MaxRetriesToGenerateID int
}

type EntryManagerOptionFunc func(opts *EntryManagerOptions)

func WithEntryManagerIDGenerator(generator port.IDGenerator[model.EntryID]) EntryManagerOptionFunc {
	return func(opts *EntryManagerOptions) {
		opts.IDGenerator = generator
	}
}

func WithEntryManagerClock(clock port.Clock) EntryManagerOptionFunc {
	return func(opts *EntryManagerOptions) {
		opts.Clock = clock
	}
}

func WithEntryManagerMaxRetries(maxRetries int) EntryManagerOptionFunc {
	return func(opts *EntryManagerOptions) {
		opts.MaxRetriesToGenerateID = maxRetries
	}
}

func NewEntryManagerOptions(funcs ...EntryManagerOptionFunc) *EntryManagerOptions {
	opts := &EntryManagerOptions{
		IDGenerator:            RandomEntryIDGenerator,
		Clock:                  NewSystemClock(),
		MaxRetriesToGenerateID: DefaultMaxRetriesToGenerateID,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type EntryManager struct {
	store     port.EntryStore
	allocator *IDAllocator[model.EntryID]
	clock     port.Clock
}

func (m *EntryManager) ListEntries(ctx context.Context) ([]model.Entry, error) {
	entries, _, err := m.store.QueryEntries(ctx, port.QueryOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entries, nil
}

func (m *EntryManager) QueryEntries(ctx context.Context, req *port.PageRequest) (*port.Page[model.Entry], error) {
	if err := checkPageRequest(req); err != nil {
		return nil, errors.WithStack(err)
	}

	entries, total, err := m.store.QueryEntries(ctx, port.NewQueryOptions(req))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return newPage(entries, total, req), nil
}

// QueryEntriesByCollection returns a page of the entries of a collection. An
// unknown collection yields an empty page.
func (m *EntryManager) QueryEntriesByCollection(ctx context.Context, collectionID model.CollectionID, req *port.PageRequest) (*port.Page[model.Entry], error) {
	if collectionID == "" {
		return nil, invalidArgument("collection id is empty")
	}

	if err := checkPageRequest(req); err != nil {
		return nil, errors.WithStack(err)
	}

	entries, total, err := m.store.QueryEntriesByCollectionID(ctx, collectionID, port.NewQueryOptions(req))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return newPage(entries, total, req), nil
}

func (m *EntryManager) GetEntryByID(ctx context.Context, id model.EntryID) (model.Entry, error) {
	if id == "" {
		return nil, invalidArgument("entry id is empty")
	}

	entry, err := m.store.GetEntryByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return entry, nil
}

// CreateEntry adds an entry to a collection. The existence of the
// collection is enforced by the store, not checked here.
func (m *EntryManager) CreateEntry(ctx context.Context, input *EntryInput, collectionID model.CollectionID) (model.Entry, error) {
	if input == nil {
		return nil, invalidArgument("entry input is nil")
	}

	if collectionID == "" {
		return nil, invalidArgument("collection id is empty")
	}

	id, err := m.allocator.Allocate(ctx)
	if err != nil {
		if errors.Is(err, ErrAllocationFailed) {
			countOperation(metrics.KindEntry, metrics.OperationCreate, metrics.OutcomeUnprocessable)
			return nil, errors.WithStack(unprocessable(err))
		}

		countOperation(metrics.KindEntry, metrics.OperationCreate, metrics.OutcomeError)
		return nil, errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("entryID", string(id)), slog.String("collectionID", string(collectionID)))

	now := m.clock.Now()
	entry := model.NewEntry(id, collectionID, input.Name, now, now)

	created, err := persist(ctx, metrics.KindEntry, metrics.OperationCreate, func(ctx context.Context) (model.Entry, error) {
		return m.store.CreateEntry(ctx, entry)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "entry created")

	return created, nil
}

func (m *EntryManager) UpdateEntry(ctx context.Context, input *EntryInput, id model.EntryID) (model.Entry, error) {
	if input == nil {
		return nil, invalidArgument("entry input is nil")
	}

	if id == "" {
		return nil, invalidArgument("entry id is empty")
	}

	ctx = slogx.WithAttrs(ctx, slog.String("entryID", string(id)))

	existing, err := m.store.GetEntryByID(ctx, id)
	if err != nil {
		countLookupFailure(metrics.KindEntry, metrics.OperationUpdate, err)
		return nil, errors.WithStack(err)
	}

	updated := model.NewEntry(existing.ID(), existing.CollectionID(), input.Name, existing.CreatedAt(), nextModification(m.clock, existing))

	saved, err := persist(ctx, metrics.KindEntry, metrics.OperationUpdate, func(ctx context.Context) (model.Entry, error) {
		return m.store.SaveEntry(ctx, updated)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "entry updated")

	return saved, nil
}

func (m *EntryManager) DeleteEntry(ctx context.Context, id model.EntryID) error {
	if id == "" {
		return invalidArgument("entry id is empty")
	}

	if err := m.store.DeleteEntryByID(ctx, id); err != nil {
		countOperation(metrics.KindEntry, metrics.OperationDelete, metrics.OutcomeError)
		return errors.WithStack(err)
	}

	countOperation(metrics.KindEntry, metrics.OperationDelete, metrics.OutcomeSuccess)

	return nil
}

func NewEntryManager(store port.EntryStore, funcs ...EntryManagerOptionFunc) *EntryManager {
	opts := NewEntryManagerOptions(funcs...)

	var oracle port.ExistenceOracle[model.EntryID]
	if store != nil {
		oracle = port.ExistenceOracleFunc[model.EntryID](store.EntryExists)
	}

	return &EntryManager{
		store:     store,
		allocator: NewIDAllocator(opts.IDGenerator, oracle, opts.MaxRetriesToGenerateID, WithIDAllocatorKind(metrics.KindEntry)),
		clock:     opts.Clock,
	}
}
