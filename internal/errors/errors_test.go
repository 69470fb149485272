package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/foodmap/client/foodmap/restaurants"
	"codeberg.org/foodmap/client/foodmap/submissions"
	"codeberg.org/foodmap/client/foodmap/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResponders_Envelope(t *testing.T) {
	cases := []struct {
		name   string
		fn     func(c *gin.Context)
		status int
		code   string
	}{
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, CodeUnauthorized},
		{"credentials", InvalidCredentials, http.StatusUnauthorized, CodeInvalidCreds},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "") }, http.StatusForbidden, CodeForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "restaurant") }, http.StatusNotFound, CodeNotFound},
		{"conflict", func(c *gin.Context) { Conflict(c, "") }, http.StatusConflict, CodeConflict},
		{"rate", func(c *gin.Context) { TooManyRequests(c, "") }, http.StatusTooManyRequests, CodeTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.fn(c)

			assert.Equal(t, tc.status, w.Code)
			assert.True(t, c.IsAborted())

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestClassifyError(t *testing.T) {
	t.Setenv("FOODMAP_ENV", "production")

	conn, dialErr := net.Dial("tcp", "127.0.0.1:1")
	if conn != nil {
		conn.Close() //nolint:errcheck
		t.Skip("something is listening on port 1")
	}

	cases := []struct {
		name     string
		err      error
		category string
	}{
		{"deadline", context.DeadlineExceeded, CategoryTimeout},
		{"canceled", fmt.Errorf("wrap: %w", context.Canceled), CategoryTimeout},
		{"missing user", fmt.Errorf("lookup: %w", users.ErrNotFound), CategoryNotFound},
		{"missing restaurant", restaurants.ErrNotFound, CategoryNotFound},
		{"missing submission", submissions.ErrNotFound, CategoryNotFound},
		{"email taken", fmt.Errorf("register: %w", users.ErrEmailTaken), CategoryConflict},
		{"bad json", json.Unmarshal([]byte("{"), &struct{}{}), CategoryValidation},
		{"empty body", io.EOF, CategoryValidation},
		{"wrong password", bcrypt.ErrMismatchedHashAndPassword, CategoryAuth},
		{"dial", dialErr, CategoryNetwork},
		// messages alone no longer decide the category
		{"not found text", fmt.Errorf("user not found"), CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			info := classifyError(tc.err)
			assert.Equal(t, tc.category, info.category)
			assert.Equal(t, sanitizedMessages[tc.category], info.sanitized)
		})
	}
}

func TestClassifyError_ProductionHidesInternals(t *testing.T) {
	t.Setenv("FOODMAP_ENV", "production")

	info := classifyError(fmt.Errorf("secret internals exploded"))
	assert.Equal(t, CategoryUnknown, info.category)
	assert.Equal(t, "an error occurred", info.sanitized)
}

func TestClassifyError_DevelopmentKeepsMessage(t *testing.T) {
	t.Setenv("FOODMAP_ENV", "development")

	info := classifyError(fmt.Errorf("lookup: %w", users.ErrNotFound))
	assert.Equal(t, CategoryNotFound, info.category)
	assert.Equal(t, "lookup: user not found", info.sanitized)
}
