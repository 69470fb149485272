package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// lists all restaurants without sending credentials
func (c *Client) Restaurants(ctx context.Context) ([]Restaurant, error) {
	var resp dataResponse[[]Restaurant]

	if err := c.send(ctx, request{method: http.MethodGet, path: "/api/restaurants", public: true}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// lists the most liked restaurants without sending credentials
func (c *Client) PopularRestaurants(ctx context.Context) ([]Restaurant, error) {
	var resp dataResponse[[]Restaurant]

	if err := c.send(ctx, request{method: http.MethodGet, path: "/api/restaurants/popular", public: true}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// fetches one restaurant without sending credentials
func (c *Client) Restaurant(ctx context.Context, id string) (*Restaurant, error) {
	var resp dataResponse[*Restaurant]

	if err := c.send(ctx, request{method: http.MethodGet, path: restaurantPath(id), public: true}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, r Restaurant) (*Restaurant, error) {
	var resp dataResponse[*Restaurant]

	if err := c.send(ctx, request{method: http.MethodPost, path: "/api/restaurants", body: r}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, id string, r Restaurant) (*Restaurant, error) {
	var resp dataResponse[*Restaurant]

	if err := c.send(ctx, request{method: http.MethodPut, path: restaurantPath(id), body: r}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *Client) DeleteRestaurant(ctx context.Context, id string) error {
	return c.send(ctx, request{method: http.MethodDelete, path: restaurantPath(id)}, nil)
}

func restaurantPath(id string) string {
	return "/api/restaurants/" + url.PathEscape(id)
}
