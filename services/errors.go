package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUserExists         = errors.New("user already exists")
	ErrAlreadyFavourite   = errors.New("blog already in favourites")
	ErrNotFavourite       = errors.New("blog not in favourites")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// InvalidCategoriesError reports selection entries that are not part of the
// global category set.
type InvalidCategoriesError struct {
	Invalid []string
}

func (e *InvalidCategoriesError) Error() string {
	return fmt.Sprintf("invalid categories: %s", strings.Join(e.Invalid, ", "))
}
