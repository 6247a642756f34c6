package setup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/config"
	"github.com/wagner1975/eezycollectionz/internal/core/service"
)

var getCollectionManager = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.CollectionManager, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	return service.NewCollectionManager(
		store,
		service.WithCollectionManagerMaxRetries(conf.Generator.MaxRetriesToGenerateID),
	), nil
})

var getEntryManager = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.EntryManager, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create store from config")
	}

	return service.NewEntryManager(
		store,
		service.WithEntryManagerMaxRetries(conf.Generator.MaxRetriesToGenerateID),
	), nil
})
