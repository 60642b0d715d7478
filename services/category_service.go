package services

import (
	"context"
)

// CategoryService exposes the global category enumeration and the caller's
// selected subset.
type CategoryService struct {
	categories CategoryStore
	users      UserStore
}

func NewCategoryService(categories CategoryStore, users UserStore) *CategoryService {
	return &CategoryService{categories: categories, users: users}
}

// Seed idempotently ensures the global categories exist. Called once at
// process bootstrap; re-running is a no-op per already-present category.
func (s *CategoryService) Seed(ctx context.Context, names []string) error {
	return s.categories.EnsureDefaults(ctx, names)
}

// ListAll returns every category name.
func (s *CategoryService) ListAll(ctx context.Context) ([]string, error) {
	return s.categories.ListNames(ctx)
}

// GetSelected returns the caller's selected categories.
func (s *CategoryService) GetSelected(ctx context.Context, email string) ([]string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user.SelectedCategories, nil
}

// UpdateSelected replaces the caller's selected categories after validating
// every entry against the global set. Unknown entries fail with an
// InvalidCategoriesError naming the offenders, leaving the stored selection
// unchanged.
func (s *CategoryService) UpdateSelected(ctx context.Context, email string, selection []string) error {
	global, err := s.categories.ListNames(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(global))
	for _, name := range global {
		known[name] = struct{}{}
	}

	var invalid []string
	for _, name := range selection {
		if _, ok := known[name]; !ok {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return &InvalidCategoriesError{Invalid: invalid}
	}

	if err := s.users.SetSelectedCategories(ctx, email, selection); err != nil {
		return mapUserErr(err)
	}
	return nil
}
