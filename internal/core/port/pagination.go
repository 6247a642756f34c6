package port

type SortField string

const (
	SortFieldName           SortField = "name"
	SortFieldCreatedAt      SortField = "createdAt"
	SortFieldLastModifiedAt SortField = "lastModifiedAt"
)

func (f SortField) Valid() bool {
	switch f {
	case SortFieldName, SortFieldCreatedAt, SortFieldLastModifiedAt:
		return true
	default:
		return false
	}
}

type SortOrder struct {
	Field      SortField
	Descending bool
}

// PageRequest describes a page of records, pages being zero-based.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

func (p *Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}

	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// QueryOptions restricts a store query. Nil Page and Limit mean
// every record is returned.
type QueryOptions struct {
	Page  *int
	Limit *int
	Sort  []SortOrder
}

func NewQueryOptions(req *PageRequest) QueryOptions {
	page := req.Page
	limit := req.Size

	return QueryOptions{
		Page:  &page,
		Limit: &limit,
		Sort:  req.Sort,
	}
}
