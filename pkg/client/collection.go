package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

func (c *Client) ListCollections(ctx context.Context, funcs ...ListOptionFunc) (*api.ListCollectionsResponse, error) {
	opts := NewListOptions(funcs...)

	var res api.ListCollectionsResponse
	if err := c.request(ctx, http.MethodGet, "/collections", opts.values(), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) GetCollection(ctx context.Context, id string) (*api.Collection, error) {
	var res api.Collection
	if err := c.request(ctx, http.MethodGet, "/collections/"+id, nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) CreateCollection(ctx context.Context, name string) (*api.Collection, error) {
	var res api.Collection
	if err := c.request(ctx, http.MethodPost, "/collections", nil, api.CollectionRequest{Name: name}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) UpdateCollection(ctx context.Context, id string, name string) (*api.Collection, error) {
	var res api.Collection
	if err := c.request(ctx, http.MethodPut, "/collections/"+id, nil, api.CollectionRequest{Name: name}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	if err := c.request(ctx, http.MethodDelete, "/collections/"+id, nil, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
