package setup

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/config"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	collectionManager, err := getCollectionManager(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entryManager, err := getEntryManager(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler := api.NewHandler(collectionManager, entryManager)

	return handler, nil
}
