package services

import (
	"context"
	"errors"

	"blogging-api/api/dto"
	"blogging-api/repositories"
)

// FavouriteService manages the favourites list stored on the user document.
//
// Adds and removes go through the store's atomic set-add/set-pull, so two
// concurrent adds of the same blog cannot both append. Adding does not check
// that the blog id refers to an existing post; dangling ids are skipped when
// listing.
type FavouriteService struct {
	users UserStore
	blogs BlogStore
}

func NewFavouriteService(users UserStore, blogs BlogStore) *FavouriteService {
	return &FavouriteService{users: users, blogs: blogs}
}

// Add appends the blog to the caller's favourites.
// ErrAlreadyFavourite when it is already present.
func (s *FavouriteService) Add(ctx context.Context, email, blogID string) error {
	err := s.users.AddFavourite(ctx, email, blogID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return ErrAlreadyFavourite
	}
	return err
}

// Remove drops the blog from the caller's favourites.
// ErrNotFavourite when it was not present.
func (s *FavouriteService) Remove(ctx context.Context, email, blogID string) error {
	// Distinguish "user missing" from "favourite missing": the pull reports
	// not-found for both.
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return mapUserErr(err)
	}
	err := s.users.RemoveFavourite(ctx, email, blogID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFavourite
	}
	return err
}

// List resolves the caller's favourites in stored order, silently skipping
// blogs that no longer exist.
func (s *FavouriteService) List(ctx context.Context, email string) ([]dto.BlogDTO, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapUserErr(err)
	}

	out := make([]dto.BlogDTO, 0, len(user.Favourites))
	for _, id := range user.Favourites {
		b, err := s.blogs.FindByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, mapBlog(*b))
	}
	return out, nil
}
