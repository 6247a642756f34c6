package service

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"github.com/wagner1975/eezycollectionz/internal/metrics"
)

const DefaultMaxRetriesToGenerateID = 3

type IDAllocatorOptions struct {
	Kind string
}

type IDAllocatorOptionFunc func(opts *IDAllocatorOptions)

func WithIDAllocatorKind(kind string) IDAllocatorOptionFunc {
	return func(opts *IDAllocatorOptions) {
		opts.Kind = kind
	}
}

func NewIDAllocatorOptions(funcs ...IDAllocatorOptionFunc) *IDAllocatorOptions {
	opts := &IDAllocatorOptions{
		Kind: "unknown",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// IDAllocator generates identifiers that are not yet used in a store.
//
// A candidate is suitable when it is not the zero value and the oracle
// does not know it. Unsuitable candidates are retried at most maxRetries
// times, so at most maxRetries+1 candidates are generated.
//
// The existence check is advisory: a concurrent writer may take the same
// identifier before the record is persisted. The store's own uniqueness
// constraint is the final arbiter.
type IDAllocator[ID comparable] struct {
	generator  port.IDGenerator[ID]
	oracle     port.ExistenceOracle[ID]
	maxRetries int
	kind       string
}

func (a *IDAllocator[ID]) Allocate(ctx context.Context) (ID, error) {
	var zero ID

	if a.generator == nil || a.oracle == nil {
		return zero, invalidArgument("allocator requires a generator and an existence oracle")
	}

	if a.maxRetries < 0 {
		return zero, invalidArgument("max retries must not be negative, got %d", a.maxRetries)
	}

	attempts := 0
	for {
		candidate := a.generator.Generate()
		metrics.IDGenerationAttempts.WithLabelValues(a.kind).Inc()

		if candidate != zero {
			exists, err := a.oracle.Exists(ctx, candidate)
			if err != nil {
				return zero, errors.Wrap(err, "could not check identifier existence")
			}

			if !exists {
				return candidate, nil
			}
		}

		attempts++
		if attempts > a.maxRetries {
			metrics.IDAllocationFailures.WithLabelValues(a.kind).Inc()
			slog.WarnContext(ctx, "identifier allocation failed", slog.String("kind", a.kind), slog.Int("attempts", attempts))
			return zero, errors.WithStack(ErrAllocationFailed)
		}

		slog.DebugContext(ctx, "identifier candidate rejected, retrying", slog.String("kind", a.kind), slog.Int("attempts", attempts))
	}
}

func (a *IDAllocator[ID]) MaxRetries() int {
	return a.maxRetries
}

func NewIDAllocator[ID comparable](generator port.IDGenerator[ID], oracle port.ExistenceOracle[ID], maxRetries int, funcs ...IDAllocatorOptionFunc) *IDAllocator[ID] {
	opts := NewIDAllocatorOptions(funcs...)
	return &IDAllocator[ID]{
		generator:  generator,
		oracle:     oracle,
		maxRetries: maxRetries,
		kind:       opts.Kind,
	}
}
