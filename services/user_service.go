package services

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blogging-api/api/dto"
	"blogging-api/logger"
	"blogging-api/models"
	"blogging-api/repositories"
)

// TokenSigner issues access tokens for authenticated users.
// Implemented by auth.JWTManager.
type TokenSigner interface {
	Sign(email string) (string, error)
}

// UserService handles registration, login and profile maintenance.
type UserService struct {
	users  UserStore
	media  MediaStore
	tokens TokenSigner
}

func NewUserService(users UserStore, media MediaStore, tokens TokenSigner) *UserService {
	return &UserService{users: users, media: media, tokens: tokens}
}

// Register creates a new account keyed by email. ErrUserExists on a
// duplicate registration.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:              email,
		Name:               name,
		Password:           string(hashed),
		SelectedCategories: []string{},
		Favourites:         []string{},
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return "", ErrUserExists
		}
		return "", err
	}
	return uuid.NewString(), nil
}

// Login verifies the credentials and returns a signed access token.
// ErrInvalidCredentials for an unknown email or a wrong password; the two
// cases are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Sign(email)
}

// GetProfile returns the caller's profile.
func (s *UserService) GetProfile(ctx context.Context, email string) (*dto.UserProfileDTO, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return &dto.UserProfileDTO{
		Name:               user.Name,
		Email:              user.Email,
		CreatedAt:          user.CreatedAt.UTC().Format(time.RFC3339),
		ProfileImage:       user.ProfileImage,
		SelectedCategories: user.SelectedCategories,
		Favourites:         user.Favourites,
	}, nil
}

// UpdateProfile changes the display name and/or the profile image. Empty
// name means "keep". A replaced image is deleted from the media store only
// after the document write succeeded, best-effort.
func (s *UserService) UpdateProfile(ctx context.Context, email, name string, image *UploadInput) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return mapUserErr(err)
	}

	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}

	var oldImage string
	if image != nil {
		objectPath := "profiles/" + strings.ReplaceAll(email, "@", "_") + path.Ext(image.Filename)
		url, err := s.media.Upload(ctx, objectPath, image.ContentType, bytes.NewReader(image.Data))
		if err != nil {
			return err
		}
		updates["profile_image"] = url
		if user.ProfileImage != "" && user.ProfileImage != url {
			oldImage = user.ProfileImage
		}
	}

	if len(updates) == 0 {
		return nil
	}
	if err := s.users.Update(ctx, email, updates); err != nil {
		return mapUserErr(err)
	}
	if oldImage != "" {
		if err := s.media.Delete(ctx, oldImage); err != nil {
			logger.ErrorWithFields("failed to delete replaced profile image", logger.Fields{
				"url":   oldImage,
				"error": err.Error(),
			})
		}
	}
	return nil
}
