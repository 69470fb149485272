package users

import (
	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers admin user management routes
func RegisterRoutes(router *gin.RouterGroup, repo *users.Repository) {
	usersGroup := router.Group("/users")
	usersGroup.Use(auth.RequireAdmin(repo))
	{
		usersGroup.GET("/all", ListUsers(repo))
		usersGroup.PUT("/:id/type", ChangeRole(repo))
	}
}
