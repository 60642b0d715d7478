package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-api/api/dto"
	"blogging-api/api/middleware"
	"blogging-api/services"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List all blogs, newest first, optionally filtered by category
// @Tags         blogs
// @Param        category  query  []string  false  "Category filter (repeatable)"
// @Param        page      query  int       false  "Page number (1-based)"
// @Produce      json
// @Success      200  {object}  dto.PaginationBlogDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs/ [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageQuery(c)
		if !ok {
			return
		}
		categories := c.QueryArray("category")

		result, err := svc.List(c.Request.Context(), categories, page)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// SearchBlogsHandler godoc
// @Summary      Search blogs
// @Description  Case-insensitive substring search over title, topic, content and category
// @Tags         blogs
// @Param        query  query  string  true   "Search text"
// @Param        page   query  int     false  "Page number (1-based)"
// @Produce      json
// @Success      200  {object}  dto.PaginationBlogDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs/search [get]
func SearchBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageQuery(c)
		if !ok {
			return
		}
		query := c.Query("query")

		result, err := svc.Search(c.Request.Context(), query, page)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListBySelectedCategoriesHandler godoc
// @Summary      List blogs in the caller's selected categories
// @Tags         blogs
// @Security     BearerAuth
// @Param        category  query  []string  false  "Additional category filter (repeatable)"
// @Param        page      query  int       false  "Page number (1-based)"
// @Produce      json
// @Success      200  {object}  dto.PaginationBlogDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/by-selected-categories [get]
func ListBySelectedCategoriesHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageQuery(c)
		if !ok {
			return
		}
		categories := c.QueryArray("category")

		result, err := svc.ListBySelectedCategories(c.Request.Context(), middleware.CallerEmail(c), categories, page)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListMyBlogsHandler godoc
// @Summary      List the caller's own blogs
// @Tags         blogs
// @Security     BearerAuth
// @Param        page  query  int  false  "Page number (1-based)"
// @Produce      json
// @Success      200  {object}  dto.PaginationBlogDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /blogs/my-blogs [get]
func ListMyBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := pageQuery(c)
		if !ok {
			return
		}

		result, err := svc.ListMine(c.Request.Context(), middleware.CallerEmail(c), page)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Tags         blogs
// @Param        id  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// blogFieldsFromForm collects the editable blog fields from a multipart form.
func blogFieldsFromForm(c *gin.Context) (services.BlogFields, error) {
	image, err := readFormFile(c, "image")
	if err != nil {
		return services.BlogFields{}, err
	}
	return services.BlogFields{
		Category: c.PostForm("category"),
		Topic:    c.PostForm("topic"),
		Title:    c.PostForm("title"),
		ReadTime: c.PostForm("readTime"),
		Content:  c.PostForm("content"),
		Image:    image,
	}, nil
}

// CreateBlogHandler godoc
// @Summary      Create a blog
// @Tags         blogs
// @Security     BearerAuth
// @Accept       mpfd
// @Param        category  formData  string  true   "Category (must be a global category)"
// @Param        topic     formData  string  true   "Topic"
// @Param        title     formData  string  true   "Title"
// @Param        readTime  formData  string  true   "Read time label, e.g. 5 min"
// @Param        content   formData  string  true   "Content"
// @Param        image     formData  file    false  "Blog image"
// @Produce      json
// @Success      200  {object}  dto.CreateBlogResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/ [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := blogFieldsFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_form"})
			return
		}

		id, err := svc.Create(c.Request.Context(), middleware.CallerEmail(c), fields)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.CreateBlogResponseDTO{Message: "blog created successfully", BlogID: id})
	}
}

// ReplaceBlogHandler godoc
// @Summary      Replace a blog (full update)
// @Description  Overwrites all editable fields; keeps the prior image when none is uploaded
// @Tags         blogs
// @Security     BearerAuth
// @Accept       mpfd
// @Param        id        path      string  true   "Blog id"
// @Param        category  formData  string  true   "Category"
// @Param        topic     formData  string  true   "Topic"
// @Param        title     formData  string  true   "Title"
// @Param        readTime  formData  string  true   "Read time label"
// @Param        content   formData  string  true   "Content"
// @Param        image     formData  file    false  "Replacement image"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [put]
func ReplaceBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := blogFieldsFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_form"})
			return
		}

		if err := svc.Replace(c.Request.Context(), middleware.CallerEmail(c), c.Param("id"), fields); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "blog updated successfully"})
	}
}

// PatchBlogHandler godoc
// @Summary      Partially update a blog
// @Description  Empty form fields are treated as not provided and leave the stored value untouched
// @Tags         blogs
// @Security     BearerAuth
// @Accept       mpfd
// @Param        id        path      string  true   "Blog id"
// @Param        category  formData  string  false  "Category"
// @Param        topic     formData  string  false  "Topic"
// @Param        title     formData  string  false  "Title"
// @Param        readTime  formData  string  false  "Read time label"
// @Param        content   formData  string  false  "Content"
// @Param        image     formData  file    false  "Replacement image"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [patch]
func PatchBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := blogFieldsFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_form"})
			return
		}

		if err := svc.Patch(c.Request.Context(), middleware.CallerEmail(c), c.Param("id"), fields); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "blog updated successfully"})
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete a blog
// @Tags         blogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), middleware.CallerEmail(c), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "blog deleted successfully"})
	}
}
