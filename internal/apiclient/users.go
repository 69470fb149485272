package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// lists every account (admin only)
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp usersResponse

	if err := c.send(ctx, request{method: http.MethodGet, path: "/api/users/all"}, &resp); err != nil {
		return nil, err
	}

	return resp.Users, nil
}

// changes the role of an account (admin only)
func (c *Client) ChangeUserRole(ctx context.Context, userID string, role Role) (*User, error) {
	var resp authResponse

	path := "/api/users/" + url.PathEscape(userID) + "/type"
	if err := c.send(ctx, request{method: http.MethodPut, path: path, body: changeRoleRequest{Role: role}}, &resp); err != nil {
		return nil, err
	}

	return resp.User, nil
}
