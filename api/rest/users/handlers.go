package users

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"codeberg.org/foodmap/client/internal/errors"
	"codeberg.org/foodmap/client/internal/logger"
	"github.com/gin-gonic/gin"
)

// ListUsers godoc
// @Summary List users
// @Description Returns every account (admin only)
// @Tags users
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/users/all [get]
func ListUsers(repo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list users", err)
			return
		}

		c.JSON(http.StatusOK, UsersResponse{Success: true, Users: list})
	}
}

// ChangeRole godoc
// @Summary Change a user's role
// @Description Promote or demote a user (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body ChangeRoleRequest true "Role"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/users/{id}/type [put]
func ChangeRole(repo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangeRoleRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !users.IsValidRole(req.Role) {
			errors.BadRequest(c, "userType must be user or admin", nil)
			return
		}

		targetID := c.Param("id")
		actorID, _ := auth.GetUserID(c)

		if targetID == actorID && req.Role != users.RoleAdmin {
			errors.BadRequest(c, "자신의 관리자 권한은 해제할 수 없습니다.", nil)
			return
		}

		user, err := repo.UpdateRole(c.Request.Context(), targetID, req.Role)
		if stderrors.Is(err, users.ErrNotFound) {
			errors.NotFound(c, "user")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update role", err)
			return
		}

		logger.Info("user role changed",
			"user_id", user.ID,
			"role", user.Role,
			"by", actorID,
		)

		c.JSON(http.StatusOK, UserResponse{Success: true, User: user})
	}
}
