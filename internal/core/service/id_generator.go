package service

import (
	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

var (
	RandomCollectionIDGenerator port.IDGenerator[model.CollectionID] = port.IDGeneratorFunc[model.CollectionID](model.NewCollectionID)
	RandomEntryIDGenerator      port.IDGenerator[model.EntryID]      = port.IDGeneratorFunc[model.EntryID](model.NewEntryID)
)
