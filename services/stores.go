package services

import (
	"context"
	"io"

	"blogging-api/models"
)

// BlogStore is the document-store surface the blog services depend on.
// Implemented by repositories.BlogRepository; tests substitute in-memory
// fakes.
type BlogStore interface {
	Insert(ctx context.Context, b *models.Blog) error
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindByAuthor(ctx context.Context, email string) ([]models.Blog, error)
	Replace(ctx context.Context, b *models.Blog) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// UserStore is the document-store surface for user documents.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, email string, fields map[string]any) error
	AddFavourite(ctx context.Context, email, blogID string) error
	RemoveFavourite(ctx context.Context, email, blogID string) error
	SetSelectedCategories(ctx context.Context, email string, categories []string) error
}

// CategoryStore is the document-store surface for the category enumeration.
type CategoryStore interface {
	EnsureDefaults(ctx context.Context, names []string) error
	ListNames(ctx context.Context) ([]string, error)
}

// MediaStore uploads and deletes media objects. Implemented by
// storage.Client.
type MediaStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, fileURL string) error
}
