package devapi

import (
	"codeberg.org/foodmap/client/foodmap/restaurants"
	"codeberg.org/foodmap/client/foodmap/submissions"
	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"codeberg.org/foodmap/client/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// holds all dependencies and state for the dev API
type Server struct {
	config         *config.DevAPIConfig
	userRepo       *users.Repository
	restaurantRepo *restaurants.Repository
	submissionRepo *submissions.Repository
	sessions       *sessions.CookieStore
	handoff        *auth.HandoffIssuer
	providers      []string
	router         *gin.Engine
}
