package service

import (
	"context"
	"reflect"
	"time"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"github.com/wagner1975/eezycollectionz/internal/metrics"
)

// persist runs a store write and translates its outcome: conflicts and
// missing results become ErrUnprocessable.
func persist[T any](ctx context.Context, kind string, operation string, write func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	record, err := write(ctx)
	if err != nil {
		if errors.Is(err, port.ErrConflict) {
			countOperation(kind, operation, metrics.OutcomeUnprocessable)
			return zero, errors.WithStack(unprocessable(err))
		}

		if errors.Is(err, port.ErrNotFound) {
			countOperation(kind, operation, metrics.OutcomeNotFound)
			return zero, errors.WithStack(err)
		}

		countOperation(kind, operation, metrics.OutcomeError)
		return zero, errors.WithStack(err)
	}

	if isNil(record) {
		countOperation(kind, operation, metrics.OutcomeUnprocessable)
		return zero, errors.Wrapf(ErrUnprocessable, "store returned no %s", kind)
	}

	countOperation(kind, operation, metrics.OutcomeSuccess)

	return record, nil
}

// nextModification returns the lastModifiedAt of an update of record: the
// clock reading, moved one tick past the previous modification when the
// clock has not advanced.
func nextModification(clock port.Clock, record model.WithLifecycle) time.Time {
	now := clock.Now()

	if floor := record.LastModifiedAt().Add(Precision); now.Before(floor) {
		return floor
	}

	return now
}

func countOperation(kind string, operation string, outcome string) {
	metrics.RecordOperations.WithLabelValues(kind, operation, outcome).Inc()
}

func countLookupFailure(kind string, operation string, err error) {
	if errors.Is(err, port.ErrNotFound) {
		countOperation(kind, operation, metrics.OutcomeNotFound)
		return
	}

	countOperation(kind, operation, metrics.OutcomeError)
}

func checkPageRequest(req *port.PageRequest) error {
	if req == nil {
		return invalidArgument("page request is nil")
	}

	if req.Page < 0 {
		return invalidArgument("page must not be negative, got %d", req.Page)
	}

	if req.Size < 1 {
		return invalidArgument("page size must be positive, got %d", req.Size)
	}

	for _, o := range req.Sort {
		if !o.Field.Valid() {
			return invalidArgument("unknown sort field '%s'", o.Field)
		}
	}

	return nil
}

func newPage[T any](items []T, total int64, req *port.PageRequest) *port.Page[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return &port.Page[T]{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.Size,
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
