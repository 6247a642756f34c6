package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/wagner1975/eezycollectionz/internal/core/model"
	"github.com/wagner1975/eezycollectionz/internal/core/port"
)

// Store keeps collections and entries in process memory. Records are
// copied on the way in and on the way out.
type Store struct {
	mu          sync.RWMutex
	collections map[model.CollectionID]*model.BaseCollection
	entries     map[model.EntryID]*model.BaseEntry
}

func NewStore() *Store {
	return &Store{
		collections: make(map[model.CollectionID]*model.BaseCollection),
		entries:     make(map[model.EntryID]*model.BaseEntry),
	}
}

var (
	_ port.CollectionStore = &Store{}
	_ port.EntryStore      = &Store{}
)

type record interface {
	Name() string
	CreatedAt() time.Time
	LastModifiedAt() time.Time
}

func query[T record](items []T, key func(T) string, opts port.QueryOptions) ([]T, int64) {
	sortRecords(items, key, opts.Sort)

	total := int64(len(items))

	if opts.Limit == nil {
		return items, total
	}

	limit := max(*opts.Limit, 0)

	page := 0
	if opts.Page != nil {
		page = max(*opts.Page, 0)
	}

	start := min(page*limit, len(items))
	end := min(start+limit, len(items))

	return items[start:end], total
}

func sortRecords[T record](items []T, key func(T) string, orders []port.SortOrder) {
	if len(orders) == 0 {
		orders = []port.SortOrder{{Field: port.SortFieldCreatedAt}}
	}

	slices.SortStableFunc(items, func(a, b T) int {
		for _, o := range orders {
			var c int
			switch o.Field {
			case port.SortFieldName:
				c = cmp.Compare(a.Name(), b.Name())
			case port.SortFieldCreatedAt:
				c = a.CreatedAt().Compare(b.CreatedAt())
			case port.SortFieldLastModifiedAt:
				c = a.LastModifiedAt().Compare(b.LastModifiedAt())
			}

			if o.Descending {
				c = -c
			}

			if c != 0 {
				return c
			}
		}

		return cmp.Compare(key(a), key(b))
	})
}
