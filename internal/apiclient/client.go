package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"codeberg.org/foodmap/client/internal/i18n"
	"codeberg.org/foodmap/client/internal/logger"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 10 * time.Second

	// responses larger than this are treated as unreadable
	maxResponseBytes = 4 << 20
)

// creates a new API client
func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	transport := http.DefaultTransport

	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		authed: &http.Client{
			Jar:       jar,
			Transport: transport,
		},
		public: &http.Client{
			Transport: transport,
		},
		limiter: rate.NewLimiter(limit, burst),
		printer: i18n.Printer(opts.Language),
	}, nil
}

// returns the API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// sends a JSON request and decodes a 2xx response into out
func (c *Client) send(ctx context.Context, r request, out any) error {
	fallback := r.fallback
	if fallback == "" {
		fallback = "error.network"
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return c.transportError(err, fallback)
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.authed
	if r.public {
		hc = c.public
	}

	logger.Debug("api request", "method", r.method, "path", r.path, "public", r.public)

	resp, err := hc.Do(req)
	if err != nil {
		logger.Debug("api request failed", "method", r.method, "path", r.path, "error", err)
		return c.transportError(err, fallback)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.transportError(err, fallback)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		authErr := c.statusError(resp.StatusCode, data, fallback)
		logger.Debug("api error response", "method", r.method, "path", r.path, "status", resp.StatusCode, "message", authErr.Message)
		return authErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &AuthError{
			Kind:    KindServer,
			Status:  resp.StatusCode,
			Message: c.printer.Sprintf(fallback),
			Err:     fmt.Errorf("failed to parse response: %w", err),
		}
	}

	return nil
}
