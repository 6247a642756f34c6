package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

func (c *Client) ListEntries(ctx context.Context, collectionID string, funcs ...ListOptionFunc) (*api.ListEntriesResponse, error) {
	opts := NewListOptions(funcs...)

	query := opts.values()
	query.Set("collectionId", collectionID)

	var res api.ListEntriesResponse
	if err := c.request(ctx, http.MethodGet, "/entries", query, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) GetEntry(ctx context.Context, id string) (*api.Entry, error) {
	var res api.Entry
	if err := c.request(ctx, http.MethodGet, "/entries/"+id, nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) CreateEntry(ctx context.Context, collectionID string, name string) (*api.Entry, error) {
	var res api.Entry
	if err := c.request(ctx, http.MethodPost, "/entries/collection/"+collectionID, nil, api.EntryRequest{Name: name}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id string, name string) (*api.Entry, error) {
	var res api.Entry
	if err := c.request(ctx, http.MethodPut, "/entries/"+id, nil, api.EntryRequest{Name: name}, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res, nil
}

func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	if err := c.request(ctx, http.MethodDelete, "/entries/"+id, nil, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
