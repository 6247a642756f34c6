package client

import (
	"net/http"
	"net/url"
)

// Client is a typed client of the eezycollectionz HTTP API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	basicAuth  *url.Userinfo
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		basicAuth:  opts.BasicAuth,
	}
}
