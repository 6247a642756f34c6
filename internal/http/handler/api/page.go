package api

import "github.com/wagner1975/eezycollectionz/internal/core/port"

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

func newPageResponse[M any, T any](page *port.Page[M], convert func(M) T) PageResponse[T] {
	content := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		content = append(content, convert(item))
	}

	return PageResponse[T]{
		Content:       content,
		TotalElements: page.Total,
		TotalPages:    page.TotalPages(),
		Page:          page.Page,
		Size:          page.Size,
	}
}
