package client

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Client wraps the JSON HTTP transport shared by all resource accessors.
// The server side of the contract is the /api router in internal/core.
type Client struct {
	http *resty.Client
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithAuthToken sets a bearer token on every request.
func WithAuthToken(token string) Option {
	return func(c *Client) {
		c.http.SetAuthToken(token)
	}
}

func New(baseURL string, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	c := &Client{http: httpClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
