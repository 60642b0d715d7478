package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"blogging-api/models"
	"blogging-api/repositories"
)

// fakeBlogStore is an in-memory BlogStore with the same sentinel behavior as
// the Mongo repository.
type fakeBlogStore struct {
	mu    sync.Mutex
	blogs map[string]models.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: map[string]models.Blog{}}
}

func (f *fakeBlogStore) Insert(_ context.Context, b *models.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[b.ID]; ok {
		return repositories.ErrDuplicate
	}
	f.blogs[b.ID] = *b
	return nil
}

func (f *fakeBlogStore) FindByID(_ context.Context, id string) (*models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBlogStore) FindAll(_ context.Context) ([]models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Blog, 0, len(f.blogs))
	for _, b := range f.blogs {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlogStore) FindByAuthor(_ context.Context, email string) ([]models.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Blog
	for _, b := range f.blogs {
		if b.AuthorEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlogStore) Replace(_ context.Context, b *models.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[b.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.blogs[b.ID] = *b
	return nil
}

func (f *fakeBlogStore) Update(_ context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.blogs[id]
	if !ok {
		return repositories.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "category":
			b.Category = v.(string)
		case "topic":
			b.Topic = v.(string)
		case "title":
			b.Title = v.(string)
		case "readTime":
			b.ReadTime = v.(string)
		case "content":
			b.Content = v.(string)
		case "imageUrl":
			b.ImageURL = v.(string)
		case "updated_at":
			t := v.(time.Time)
			b.UpdatedAt = &t
		}
	}
	f.blogs[id] = b
	return nil
}

func (f *fakeBlogStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

// fakeUserStore is an in-memory UserStore. AddFavourite mirrors the atomic
// set-add of the Mongo repository: check and append happen under one lock.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) put(u models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.Email] = u
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Email]; ok {
		return repositories.ErrDuplicate
	}
	f.users[u.Email] = *u
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Update(_ context.Context, email string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return repositories.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "profile_image":
			u.ProfileImage = v.(string)
		case "selected_categories":
			u.SelectedCategories = v.([]string)
		}
	}
	f.users[email] = u
	return nil
}

func (f *fakeUserStore) AddFavourite(_ context.Context, email, blogID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return repositories.ErrNotFound
	}
	for _, id := range u.Favourites {
		if id == blogID {
			return repositories.ErrDuplicate
		}
	}
	u.Favourites = append(u.Favourites, blogID)
	f.users[email] = u
	return nil
}

func (f *fakeUserStore) RemoveFavourite(_ context.Context, email, blogID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return repositories.ErrNotFound
	}
	for i, id := range u.Favourites {
		if id == blogID {
			u.Favourites = append(u.Favourites[:i], u.Favourites[i+1:]...)
			f.users[email] = u
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeUserStore) SetSelectedCategories(ctx context.Context, email string, categories []string) error {
	return f.Update(ctx, email, map[string]any{"selected_categories": categories})
}

// fakeCategoryStore is an in-memory CategoryStore.
type fakeCategoryStore struct {
	mu    sync.Mutex
	names []string
}

func (f *fakeCategoryStore) EnsureDefaults(_ context.Context, names []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, name := range names {
		present := false
		for _, existing := range f.names {
			if existing == name {
				present = true
				break
			}
		}
		if !present {
			f.names = append(f.names, name)
		}
	}
	return nil
}

func (f *fakeCategoryStore) ListNames(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...), nil
}

// fakeMediaStore records uploads and deletions.
type fakeMediaStore struct {
	mu        sync.Mutex
	uploads   []string
	deleted   []string
	deleteErr error
}

func (f *fakeMediaStore) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, _ = io.ReadAll(r)
	f.uploads = append(f.uploads, objectPath)
	return fmt.Sprintf("https://storage.googleapis.com/test-bucket/%s", objectPath), nil
}

func (f *fakeMediaStore) Delete(_ context.Context, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileURL)
	return nil
}

// fakeSigner issues predictable tokens.
type fakeSigner struct{}

func (fakeSigner) Sign(email string) (string, error) {
	return "token-for-" + email, nil
}
