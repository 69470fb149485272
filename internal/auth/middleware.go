package auth

import (
	"context"

	"codeberg.org/foodmap/client/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// resolves whether a user holds the admin role
type RoleLookup interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// reads the session cookie and adds the user id to context when present
func SessionMiddleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := SessionUserID(store, c.Request); ok {
			c.Set(ContextUserID, userID)
		}

		c.Next()
	}
}

// rejects requests without a signed-in user
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			errors.Unauthorized(c, "")
			return
		}

		c.Next()
	}
}

// rejects requests whose user is not an admin
func RequireAdmin(lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		isAdmin, err := lookup.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			// a session pointing at a deleted user is just signed out
			errors.Unauthorized(c, "")
			return
		}

		if !isAdmin {
			errors.Forbidden(c, "")
			return
		}

		c.Next()
	}
}

// extracts user_id from context after SessionMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}
