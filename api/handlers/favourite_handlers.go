package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-api/api/dto"
	"blogging-api/api/middleware"
	"blogging-api/services"
)

// AddFavouriteHandler godoc
// @Summary      Add a blog to favourites
// @Tags         favourites
// @Security     BearerAuth
// @Param        blogId  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/favourites/{blogId} [post]
func AddFavouriteHandler(svc *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Add(c.Request.Context(), middleware.CallerEmail(c), c.Param("blogId")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "blog added to favourites"})
	}
}

// RemoveFavouriteHandler godoc
// @Summary      Remove a blog from favourites
// @Tags         favourites
// @Security     BearerAuth
// @Param        blogId  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/favourites/{blogId} [delete]
func RemoveFavouriteHandler(svc *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Request.Context(), middleware.CallerEmail(c), c.Param("blogId")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "blog removed from favourites"})
	}
}

// ListFavouritesHandler godoc
// @Summary      List the caller's favourite blogs
// @Description  Returns favourites in stored order; blogs that no longer exist are skipped
// @Tags         favourites
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   dto.BlogDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /users/favourites [get]
func ListFavouritesHandler(svc *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := svc.List(c.Request.Context(), middleware.CallerEmail(c))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}
