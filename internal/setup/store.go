package setup

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	gormAdapter "github.com/wagner1975/eezycollectionz/internal/adapter/gorm"
	"github.com/wagner1975/eezycollectionz/internal/adapter/memory"
	"github.com/wagner1975/eezycollectionz/internal/config"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

type recordStore interface {
	port.CollectionStore
	port.EntryStore
}

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (recordStore, error) {
	switch conf.Storage.Database.Driver {
	case config.DriverMemory:
		slog.WarnContext(ctx, "using transient in-memory storage, records will be lost on exit")
		return memory.NewStore(), nil

	case config.DriverSQLite:
		db, err := getGormDatabaseFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.Wrap(err, "could not open database from config")
		}

		return gormAdapter.NewStore(db), nil

	default:
		return nil, errors.Errorf("unknown database driver '%s'", conf.Storage.Database.Driver)
	}
})
