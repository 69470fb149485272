package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// posts credentials and returns the authenticated user
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/login", authRequest{Email: email, Password: password}, "error.login")
}

// creates a local account; the server opens a session for it
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/register", authRequest{Name: name, Email: email, Password: password}, "error.register")
}

// exchanges a one-time OAuth handoff token for a session
func (c *Client) ExchangeHandoff(ctx context.Context, token string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/handoff", handoffRequest{Token: token}, "error.oauth")
}

// invalidates the server-side session
func (c *Client) Logout(ctx context.Context) error {
	return c.send(ctx, request{method: http.MethodPost, path: "/api/auth/logout"}, nil)
}

// returns the user bound to the current session cookie. a missing session
// is reported as ok == false with a nil error; only transport failures
// return an error.
func (c *Client) CurrentSession(ctx context.Context) (*User, bool, error) {
	var resp authResponse

	err := c.send(ctx, request{method: http.MethodGet, path: "/api/auth/me"}, &resp)
	if err != nil {
		if IsKind(err, KindTransport) {
			return nil, false, err
		}
		return nil, false, nil
	}

	if !resp.Success || resp.User == nil {
		return nil, false, nil
	}

	return resp.User, true, nil
}

// returns the browser entry point for an OAuth provider. redirect, when
// set, is where the server hands the login back to.
func (c *Client) OAuthURL(provider Provider, redirect string) string {
	u := c.baseURL + "/api/auth/" + url.PathEscape(string(provider))

	if redirect != "" {
		u += "?" + url.Values{"redirect": {redirect}}.Encode()
	}

	return u
}

func (c *Client) authenticate(ctx context.Context, path string, body any, fallback string) (*User, error) {
	var resp authResponse

	if err := c.send(ctx, request{method: http.MethodPost, path: path, body: body, fallback: fallback}, &resp); err != nil {
		return nil, err
	}

	if !resp.Success || resp.User == nil {
		msg := resp.Message
		if msg == "" {
			msg = c.printer.Sprintf(fallback)
		}
		return nil, &AuthError{Kind: KindValidation, Status: http.StatusOK, Message: msg}
	}

	return resp.User, nil
}

// lists the OAuth providers the server has configured
func (c *Client) Providers(ctx context.Context) ([]Provider, error) {
	var resp providersResponse

	if err := c.send(ctx, request{method: http.MethodGet, path: "/api/auth/providers", public: true}, &resp); err != nil {
		return nil, err
	}

	return resp.Providers, nil
}
