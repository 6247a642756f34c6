package setup

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/config"
)

// createFromConfigOnce memoizes factory per configuration: every call with
// the same *config.Config returns the first result, error included.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	type result struct {
		once  sync.Once
		value T
		err   error
	}

	var (
		mu      sync.Mutex
		results = map[*config.Config]*result{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mu.Lock()
		r, exists := results[conf]
		if !exists {
			r = &result{}
			results[conf] = r
		}
		mu.Unlock()

		r.once.Do(func() {
			r.value, r.err = factory(ctx, conf)
		})

		if r.err != nil {
			var zero T
			return zero, errors.WithStack(r.err)
		}

		return r.value, nil
	}
}
