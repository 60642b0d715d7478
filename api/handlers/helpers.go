package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogging-api/api/dto"
	"blogging-api/services"
)

// pageQuery parses the 1-based page query parameter. Missing defaults to 1;
// non-numeric or non-positive values are rejected with 400.
func pageQuery(c *gin.Context) (int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_page"})
		return 0, false
	}
	return page, true
}

// readFormFile reads an optional multipart file fully into memory.
// Returns nil when the field is absent.
func readFormFile(c *gin.Context, field string) (*services.UploadInput, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return uploadFromHeader(fh)
}

func uploadFromHeader(fh *multipart.FileHeader) (*services.UploadInput, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &services.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// respondServiceError maps service errors onto the HTTP error taxonomy.
func respondServiceError(c *gin.Context, err error) {
	var invalidCats *services.InvalidCategoriesError
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "user_not_found"})
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "blog_not_found"})
	case errors.Is(err, services.ErrNotFavourite):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "blog_not_in_favourites"})
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: "permission_denied"})
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "user_already_exists"})
	case errors.Is(err, services.ErrAlreadyFavourite):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "blog_already_in_favourites"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_email_or_password"})
	case errors.As(err, &invalidCats):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: invalidCats.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
	}
}
