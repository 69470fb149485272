package submissions

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/foodmap/client/foodmap/submissions"
	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
	"codeberg.org/foodmap/client/internal/errors"
	"codeberg.org/foodmap/client/internal/logger"
	"github.com/gin-gonic/gin"
)

// CreateHandler godoc
// @Summary Submit a restaurant
// @Description Report a restaurant for review. The submitter is the signed-in user.
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body submissions.Input true "Submission"
// @Success 201 {object} DetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/submissions [post]
func CreateHandler(repo *submissions.Repository, userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submissions.Input

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		userID, _ := auth.GetUserID(c)

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.Unauthorized(c, "")
			return
		}

		submission, err := repo.Create(c.Request.Context(), req, user.Name, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to create submission", err)
			return
		}

		logger.Info("submission created", "submission_id", submission.ID, "user_id", user.ID)

		c.JSON(http.StatusCreated, DetailResponse{Data: submission})
	}
}

// ListHandler godoc
// @Summary List submissions
// @Description Admin only, optionally filtered by status
// @Tags submissions
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} ListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/submissions [get]
func ListHandler(repo *submissions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")

		if status != "" && !submissions.IsValidStatus(status) {
			errors.BadRequest(c, "unknown status", nil)
			return
		}

		list, err := repo.List(c.Request.Context(), status)
		if err != nil {
			errors.InternalError(c, "failed to list submissions", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Data: list})
	}
}

// UpdateStatusHandler godoc
// @Summary Review a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} DetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/submissions/{id} [put]
func UpdateStatusHandler(repo *submissions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatusRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !submissions.IsValidStatus(req.Status) {
			errors.BadRequest(c, "unknown status", nil)
			return
		}

		submission, err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if stderrors.Is(err, submissions.ErrNotFound) {
			errors.NotFound(c, "submission")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update submission", err)
			return
		}

		c.JSON(http.StatusOK, DetailResponse{Data: submission})
	}
}

// DeleteHandler godoc
// @Summary Delete a submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/submissions/{id} [delete]
func DeleteHandler(repo *submissions.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := repo.Delete(c.Request.Context(), c.Param("id"))
		if stderrors.Is(err, submissions.ErrNotFound) {
			errors.NotFound(c, "submission")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to delete submission", err)
			return
		}

		c.JSON(http.StatusOK, DeleteResponse{Success: true})
	}
}
