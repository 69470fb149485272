package devapi

import (
	authapi "codeberg.org/foodmap/client/api/rest/auth"
	"codeberg.org/foodmap/client/api/rest/health"
	restaurantsapi "codeberg.org/foodmap/client/api/rest/restaurants"
	submissionsapi "codeberg.org/foodmap/client/api/rest/submissions"
	usersapi "codeberg.org/foodmap/client/api/rest/users"
	"codeberg.org/foodmap/client/internal/auth"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server, limit gin.HandlerFunc) {
	router.Use(corsMiddleware(server.config.AllowedOrigins))
	router.Use(auth.SessionMiddleware(server.sessions))

	router.GET("/health", health.Handler)

	api := router.Group("/api")
	{
		api.GET("/ping", health.PingHandler)

		authapi.RegisterRoutes(api, &authapi.Deps{
			Users:          server.userRepo,
			Sessions:       server.sessions,
			Handoff:        server.handoff,
			AllowedOrigins: server.config.AllowedOrigins,
		}, limit)

		usersapi.RegisterRoutes(api, server.userRepo)
		restaurantsapi.RegisterRoutes(api, server.restaurantRepo, server.userRepo)
		submissionsapi.RegisterRoutes(api, server.submissionRepo, server.userRepo)
	}
}
