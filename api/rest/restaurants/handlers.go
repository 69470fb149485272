package restaurants

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/foodmap/client/foodmap/restaurants"
	"codeberg.org/foodmap/client/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {object} ListResponse
// @Router /api/restaurants [get]
func ListHandler(repo *restaurants.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list restaurants", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Data: list})
	}
}

// PopularHandler godoc
// @Summary List popular restaurants
// @Description Most liked restaurants first
// @Tags restaurants
// @Produce json
// @Success 200 {object} ListResponse
// @Router /api/restaurants/popular [get]
func PopularHandler(repo *restaurants.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.Popular(c.Request.Context(), popularLimit)
		if err != nil {
			errors.InternalError(c, "failed to list popular restaurants", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Data: list})
	}
}

// GetHandler godoc
// @Summary Get a restaurant
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/restaurants/{id} [get]
func GetHandler(repo *restaurants.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, err := repo.Get(c.Request.Context(), c.Param("id"))
		if stderrors.Is(err, restaurants.ErrNotFound) {
			errors.NotFound(c, "restaurant")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to get restaurant", err)
			return
		}

		c.JSON(http.StatusOK, DetailResponse{Data: restaurant})
	}
}

// CreateHandler godoc
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param request body restaurants.Input true "Restaurant"
// @Success 201 {object} DetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/restaurants [post]
func CreateHandler(repo *restaurants.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req restaurants.Input

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		restaurant, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			errors.InternalError(c, "failed to create restaurant", err)
			return
		}

		c.JSON(http.StatusCreated, DetailResponse{Data: restaurant})
	}
}

// UpdateHandler godoc
// @Summary Update a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body restaurants.Input true "Restaurant"
// @Success 200 {object} DetailResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/restaurants/{id} [put]
func UpdateHandler(repo *restaurants.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req restaurants.Input

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		restaurant, err := repo.Update(c.Request.Context(), c.Param("id"), req)
		if stderrors.Is(err, restaurants.ErrNotFound) {
			errors.NotFound(c, "restaurant")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to update restaurant", err)
			return
		}

		c.JSON(http.StatusOK, DetailResponse{Data: restaurant})
	}
}

// DeleteHandler godoc
// @Summary Delete a restaurant
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/restaurants/{id} [delete]
func DeleteHandler(repo *restaurants.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := repo.Delete(c.Request.Context(), c.Param("id"))
		if stderrors.Is(err, restaurants.ErrNotFound) {
			errors.NotFound(c, "restaurant")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to delete restaurant", err)
			return
		}

		c.JSON(http.StatusOK, DeleteResponse{Success: true})
	}
}
