package submissions

import (
	"codeberg.org/foodmap/client/foodmap/submissions"
	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers submission routes. any user may submit, review is admin only.
func RegisterRoutes(router *gin.RouterGroup, repo *submissions.Repository, userRepo *users.Repository) {
	group := router.Group("/submissions")
	{
		group.POST("", auth.RequireUser(), CreateHandler(repo, userRepo))

		admin := group.Group("", auth.RequireAdmin(userRepo))
		admin.GET("", ListHandler(repo))
		admin.PUT("/:id", UpdateStatusHandler(repo))
		admin.DELETE("/:id", DeleteHandler(repo))
	}
}
