package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-api/api/dto"
	"blogging-api/api/middleware"
	"blogging-api/services"
)

// ListAllCategoriesHandler godoc
// @Summary      List all global categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /users/categories/all [get]
func ListAllCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, names)
	}
}

// GetSelectedCategoriesHandler godoc
// @Summary      Get the caller's selected categories
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   string
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/categories [get]
func GetSelectedCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := svc.GetSelected(c.Request.Context(), middleware.CallerEmail(c))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, names)
	}
}

// UpdateSelectedCategoriesHandler godoc
// @Summary      Replace the caller's selected categories
// @Description  Every entry must be a member of the global category set
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  dto.UpdateCategoriesRequestDTO  true  "Selected categories"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /users/categories [put]
func UpdateSelectedCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateCategoriesRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.UpdateSelected(c.Request.Context(), middleware.CallerEmail(c), req.SelectedCategories); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "selected categories updated successfully"})
	}
}
