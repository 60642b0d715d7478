package services

import (
	"bytes"
	"context"
	"errors"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogging-api/api/dto"
	"blogging-api/logger"
	"blogging-api/models"
	"blogging-api/repositories"
)

// PageSize is the fixed number of blogs per listing page.
const PageSize = 10

// BlogService is the listing engine and mutation service for blog posts.
//
// The document store offers no compound predicate+sort query, so every
// non-owner listing intent streams the whole collection and filters, sorts
// and slices in memory. This bounds scalability to collection size and is an
// accepted limitation of the store.
type BlogService struct {
	blogs BlogStore
	users UserStore
	media MediaStore
}

func NewBlogService(blogs BlogStore, users UserStore, media MediaStore) *BlogService {
	return &BlogService{blogs: blogs, users: users, media: media}
}

// UploadInput is an uploaded media file, fully read into memory by the
// handler before the service hands it to the media store.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// BlogFields are the author-editable fields of a post. For PATCH, empty
// strings mean "not provided": a field cannot be cleared to empty via PATCH.
type BlogFields struct {
	Category string
	Topic    string
	Title    string
	ReadTime string
	Content  string
	Image    *UploadInput
}

// --- Listing intents ---

// List returns a page of all blogs, optionally restricted to the given
// categories.
func (s *BlogService) List(ctx context.Context, categories []string, page int) (dto.Pagination[dto.BlogDTO], error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, err
	}
	blogs = filterBlogs(blogs, categoryPredicate(categories))
	return paginate(blogs, page), nil
}

// Search returns a page of blogs whose title, topic, content or category
// contains the query, case-insensitively. An empty query matches everything.
func (s *BlogService) Search(ctx context.Context, query string, page int) (dto.Pagination[dto.BlogDTO], error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, err
	}
	q := strings.ToLower(query)
	blogs = filterBlogs(blogs, func(b *models.Blog) bool {
		return strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Topic), q) ||
			strings.Contains(strings.ToLower(b.Content), q) ||
			strings.Contains(strings.ToLower(b.Category), q)
	})
	return paginate(blogs, page), nil
}

// ListBySelectedCategories returns a page of blogs whose category is in the
// caller's selected set, further intersected with categories when given.
func (s *BlogService) ListBySelectedCategories(ctx context.Context, email string, categories []string, page int) (dto.Pagination[dto.BlogDTO], error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, mapUserErr(err)
	}

	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, err
	}
	selected := categoryPredicate(user.SelectedCategories)
	extra := categoryPredicate(categories)
	blogs = filterBlogs(blogs, func(b *models.Blog) bool {
		return selected(b) && extra(b)
	})
	return paginate(blogs, page), nil
}

// ListMine returns a page of the caller's own blogs. Ownership is matched on
// the immutable author_email field via an equality filter at fetch time.
func (s *BlogService) ListMine(ctx context.Context, email string, page int) (dto.Pagination[dto.BlogDTO], error) {
	blogs, err := s.blogs.FindByAuthor(ctx, email)
	if err != nil {
		return dto.Pagination[dto.BlogDTO]{}, err
	}
	return paginate(blogs, page), nil
}

// GetByID returns a single blog.
func (s *BlogService) GetByID(ctx context.Context, id string) (*dto.BlogDTO, error) {
	b, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, mapBlogErr(err)
	}
	d := mapBlog(*b)
	return &d, nil
}

// --- Mutations ---

// Create stores a new blog post owned by the given user. The author name and
// avatar are copied from the user document at creation time; later profile
// edits do not change past posts.
func (s *BlogService) Create(ctx context.Context, email string, fields BlogFields) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", mapUserErr(err)
	}

	id := uuid.NewString()
	blog := &models.Blog{
		ID:          id,
		Category:    fields.Category,
		Topic:       fields.Topic,
		Title:       fields.Title,
		ReadTime:    fields.ReadTime,
		Content:     fields.Content,
		Author:      user.Name,
		AuthorEmail: email,
		Avatar:      user.ProfileImage,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   nil,
	}

	if fields.Image != nil {
		url, err := s.uploadBlogImage(ctx, id, fields.Image)
		if err != nil {
			return "", err
		}
		blog.ImageURL = url
	}

	if err := s.blogs.Insert(ctx, blog); err != nil {
		return "", err
	}
	return id, nil
}

// Replace overwrites every editable field of the post. The author snapshot,
// owner email and created_at are always preserved; when no new image is
// supplied the prior image reference is kept.
func (s *BlogService) Replace(ctx context.Context, email, blogID string, fields BlogFields) error {
	existing, err := s.ownedBlog(ctx, email, blogID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	updated := &models.Blog{
		ID:          existing.ID,
		Category:    fields.Category,
		Topic:       fields.Topic,
		Title:       fields.Title,
		ReadTime:    fields.ReadTime,
		Content:     fields.Content,
		Author:      existing.Author,
		AuthorEmail: existing.AuthorEmail,
		Avatar:      existing.Avatar,
		ImageURL:    existing.ImageURL,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   &now,
	}

	if fields.Image != nil {
		url, err := s.uploadBlogImage(ctx, existing.ID, fields.Image)
		if err != nil {
			return err
		}
		updated.ImageURL = url
	}

	if err := s.blogs.Replace(ctx, updated); err != nil {
		return mapBlogErr(err)
	}

	// Only after the write succeeded: drop the replaced image, best-effort.
	if fields.Image != nil && existing.ImageURL != "" && existing.ImageURL != updated.ImageURL {
		s.deleteImage(ctx, existing.ImageURL)
	}
	return nil
}

// Patch merges only the provided fields into the post and bumps updated_at.
// Empty form values are indistinguishable from absent ones and leave the
// stored value untouched.
func (s *BlogService) Patch(ctx context.Context, email, blogID string, fields BlogFields) error {
	existing, err := s.ownedBlog(ctx, email, blogID)
	if err != nil {
		return err
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if fields.Category != "" {
		updates["category"] = fields.Category
	}
	if fields.Topic != "" {
		updates["topic"] = fields.Topic
	}
	if fields.Title != "" {
		updates["title"] = fields.Title
	}
	if fields.ReadTime != "" {
		updates["readTime"] = fields.ReadTime
	}
	if fields.Content != "" {
		updates["content"] = fields.Content
	}

	var oldImage string
	if fields.Image != nil {
		url, err := s.uploadBlogImage(ctx, existing.ID, fields.Image)
		if err != nil {
			return err
		}
		updates["imageUrl"] = url
		if existing.ImageURL != "" && existing.ImageURL != url {
			oldImage = existing.ImageURL
		}
	}

	if err := s.blogs.Update(ctx, blogID, updates); err != nil {
		return mapBlogErr(err)
	}
	if oldImage != "" {
		s.deleteImage(ctx, oldImage)
	}
	return nil
}

// Delete removes the post. Deleting an already-deleted post reports
// ErrBlogNotFound.
func (s *BlogService) Delete(ctx context.Context, email, blogID string) error {
	existing, err := s.ownedBlog(ctx, email, blogID)
	if err != nil {
		return err
	}
	if err := s.blogs.Delete(ctx, blogID); err != nil {
		return mapBlogErr(err)
	}
	if existing.ImageURL != "" {
		s.deleteImage(ctx, existing.ImageURL)
	}
	return nil
}

// ownedBlog loads the post and enforces that email is the owner.
func (s *BlogService) ownedBlog(ctx context.Context, email, blogID string) (*models.Blog, error) {
	existing, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, mapBlogErr(err)
	}
	if existing.AuthorEmail != email {
		return nil, ErrPermissionDenied
	}
	return existing, nil
}

func (s *BlogService) uploadBlogImage(ctx context.Context, blogID string, img *UploadInput) (string, error) {
	objectPath := "blogs/" + blogID + path.Ext(img.Filename)
	return s.media.Upload(ctx, objectPath, img.ContentType, bytes.NewReader(img.Data))
}

// deleteImage drops a stored image best-effort: the primary write already
// succeeded, so failures are logged, never surfaced.
func (s *BlogService) deleteImage(ctx context.Context, url string) {
	if err := s.media.Delete(ctx, url); err != nil {
		logger.ErrorWithFields("failed to delete replaced image", logger.Fields{
			"url":   url,
			"error": err.Error(),
		})
	}
}

// --- Shared listing helpers ---

// sortBlogs orders newest-first; ties on created_at break by id ascending so
// identical inputs always produce the identical order.
func sortBlogs(blogs []models.Blog) {
	sort.SliceStable(blogs, func(i, j int) bool {
		if blogs[i].CreatedAt.Equal(blogs[j].CreatedAt) {
			return blogs[i].ID < blogs[j].ID
		}
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
}

func filterBlogs(blogs []models.Blog, keep func(*models.Blog) bool) []models.Blog {
	out := make([]models.Blog, 0, len(blogs))
	for i := range blogs {
		if keep(&blogs[i]) {
			out = append(out, blogs[i])
		}
	}
	return out
}

// categoryPredicate keeps blogs whose category is in the given set; an empty
// set keeps everything.
func categoryPredicate(categories []string) func(*models.Blog) bool {
	if len(categories) == 0 {
		return func(*models.Blog) bool { return true }
	}
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return func(b *models.Blog) bool {
		_, ok := set[b.Category]
		return ok
	}
}

// paginate sorts the filtered result and slices the 1-based page. Pages past
// the end yield an empty data slice, never an error.
func paginate(blogs []models.Blog, page int) dto.Pagination[dto.BlogDTO] {
	if page < 1 {
		page = 1
	}
	sortBlogs(blogs)

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(blogs) {
		start = len(blogs)
	}
	if end > len(blogs) {
		end = len(blogs)
	}

	out := make([]dto.BlogDTO, 0, end-start)
	for _, b := range blogs[start:end] {
		out = append(out, mapBlog(b))
	}
	return dto.Pagination[dto.BlogDTO]{
		Data:     out,
		Page:     page,
		PageSize: PageSize,
		Total:    int64(len(blogs)),
	}
}

// mapBlog converts a blog document into its public DTO.
func mapBlog(b models.Blog) dto.BlogDTO {
	d := dto.BlogDTO{
		ID:        b.ID,
		Category:  b.Category,
		Topic:     b.Topic,
		Title:     b.Title,
		ReadTime:  b.ReadTime,
		Content:   b.Content,
		Author:    b.Author,
		Avatar:    b.Avatar,
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.UpdatedAt != nil {
		s := b.UpdatedAt.UTC().Format(time.RFC3339)
		d.UpdatedAt = &s
	}
	return d
}

func mapUserErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func mapBlogErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}
