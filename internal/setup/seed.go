package setup

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/config"
	"github.com/wagner1975/eezycollectionz/internal/seed"
)

// SeedFromConfig loads the configured dataset into the store when seeding is
// enabled.
func SeedFromConfig(ctx context.Context, conf *config.Config) error {
	if !conf.Seed.Enabled {
		return nil
	}

	dataset, err := seed.LoadFile(conf.Seed.File)
	if err != nil {
		return errors.WithStack(err)
	}

	collectionManager, err := getCollectionManager(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	entryManager, err := getEntryManager(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	slog.InfoContext(ctx, "seeding store", slog.Int("collections", len(dataset.Collections)))

	if err := seed.Apply(ctx, collectionManager, entryManager, dataset); err != nil {
		return errors.Wrap(err, "could not seed store")
	}

	return nil
}
