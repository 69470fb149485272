package apiclient

import (
	"context"
	"net/http"
)

// probes the API health endpoint
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var resp Health

	if err := c.send(ctx, request{method: http.MethodGet, path: "/health", public: true}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
