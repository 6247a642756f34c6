package gorm

import (
	"github.com/wagner1975/eezycollectionz/internal/core/port"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[port.SortField]string{
	port.SortFieldName:           "name",
	port.SortFieldCreatedAt:      "created_at",
	port.SortFieldLastModifiedAt: "last_modified_at",
}

func applyQueryOptions(query *gorm.DB, opts port.QueryOptions) *gorm.DB {
	sort := opts.Sort
	if len(sort) == 0 {
		sort = []port.SortOrder{{Field: port.SortFieldCreatedAt}}
	}

	for _, o := range sort {
		column, exists := sortColumns[o.Field]
		if !exists {
			continue
		}

		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: o.Descending})
	}

	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	if opts.Limit != nil {
		limit := max(*opts.Limit, 0)
		query = query.Limit(limit)

		if opts.Page != nil {
			query = query.Offset(max(*opts.Page, 0) * limit)
		}
	}

	return query
}
