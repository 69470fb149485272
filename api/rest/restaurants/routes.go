package restaurants

import (
	"codeberg.org/foodmap/client/foodmap/restaurants"
	"codeberg.org/foodmap/client/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers restaurant routes. reads are public, writes need an admin.
func RegisterRoutes(router *gin.RouterGroup, repo *restaurants.Repository, roles auth.RoleLookup) {
	group := router.Group("/restaurants")
	{
		group.GET("", ListHandler(repo))
		group.GET("/popular", PopularHandler(repo))
		group.GET("/:id", GetHandler(repo))

		admin := group.Group("", auth.RequireAdmin(roles))
		admin.POST("", CreateHandler(repo))
		admin.PUT("/:id", UpdateHandler(repo))
		admin.DELETE("/:id", DeleteHandler(repo))
	}
}
