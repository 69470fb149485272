package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// classifies an AuthError
type ErrorKind int

const (
	// network unreachable, timeout, unreadable response
	KindTransport ErrorKind = iota
	// non-2xx response that is not the caller's fault
	KindServer
	// 4xx response rejecting the input (bad credentials, duplicate email)
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// uniform API failure carrying a display-ready message
type AuthError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// returns the display-ready message of err, or fallback when err is not an AuthError
func UserMessage(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}

	return fallback
}

// reports whether err is an AuthError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Kind == kind
}

func (c *Client) transportError(err error, fallback string) *AuthError {
	key := fallback
	if isTimeout(err) {
		key = "error.timeout"
	}

	return &AuthError{
		Kind:    KindTransport,
		Message: c.printer.Sprintf(key),
		Err:     err,
	}
}

func (c *Client) statusError(status int, body []byte, fallback string) *AuthError {
	kind := KindServer
	if status >= 400 && status < 500 && status != http.StatusRequestTimeout && status != http.StatusTooManyRequests {
		kind = KindValidation
	}

	msg := serverMessage(body)
	if msg == "" {
		msg = c.printer.Sprintf(fallback)
	}

	return &AuthError{
		Kind:    kind,
		Status:  status,
		Message: msg,
	}
}

// extracts the server-provided message from an error body
func serverMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}

	return strings.TrimSpace(parsed.Message)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// reports whether the server rejected the request for lack of a valid session
func IsUnauthorized(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr) && authErr.Status == http.StatusUnauthorized
}
