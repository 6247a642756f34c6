package memory

import (
	"testing"

	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"github.com/wagner1975/eezycollectionz/internal/core/port/testsuite"
)

func TestCollectionStore(t *testing.T) {
	testsuite.TestCollectionStore(t, func(t *testing.T) (port.CollectionStore, error) {
		return NewStore(), nil
	})
}

func TestEntryStore(t *testing.T) {
	testsuite.TestEntryStore(t, func(t *testing.T) (port.CollectionStore, port.EntryStore, error) {
		store := NewStore()
		return store, store, nil
	})
}
