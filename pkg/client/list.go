package client

import (
	"net/url"
	"strconv"
)

type ListOptions struct {
	Page int
	Size int
	// Sort values follow the "field[,asc|desc]" syntax
	Sort []string
}

type ListOptionFunc func(opts *ListOptions)

func WithPage(page int) ListOptionFunc {
	return func(opts *ListOptions) {
		opts.Page = page
	}
}

func WithSize(size int) ListOptionFunc {
	return func(opts *ListOptions) {
		opts.Size = size
	}
}

func WithSort(sort ...string) ListOptionFunc {
	return func(opts *ListOptions) {
		opts.Sort = append(opts.Sort, sort...)
	}
}

func NewListOptions(funcs ...ListOptionFunc) *ListOptions {
	opts := &ListOptions{
		Page: 0,
		Size: 20,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func (o *ListOptions) values() url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(o.Page))
	query.Set("size", strconv.Itoa(o.Size))

	for _, s := range o.Sort {
		query.Add("sort", s)
	}

	return query
}
