package auth

import (
	"codeberg.org/foodmap/client/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes. limit guards credential endpoints.
func RegisterRoutes(router *gin.RouterGroup, deps *Deps, limit gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", limit, RegisterHandler(deps))
		authGroup.POST("/login", limit, LoginHandler(deps))
		authGroup.POST("/handoff", limit, HandoffHandler(deps))
		authGroup.POST("/logout", LogoutHandler(deps))
		authGroup.GET("/me", auth.RequireUser(), GetCurrentUserHandler(deps))
		authGroup.GET("/providers", ProvidersHandler)
		authGroup.GET("/:provider", BeginAuthHandler(deps))
		authGroup.GET("/:provider/callback", CallbackHandler(deps))
	}
}
