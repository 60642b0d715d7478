package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, &fakeMediaStore{}, fakeSigner{})

	userID, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	// The stored credential is a hash, never the plain password.
	u, err := users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", u.Password)
	assert.NotEmpty(t, u.Password)

	token, err := svc.Login(context.Background(), "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice@example.com", token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), &fakeMediaStore{}, fakeSigner{})

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Impostor", "alice@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), &fakeMediaStore{}, fakeSigner{})

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email is indistinguishable from a wrong password.
	_, err = svc.Login(context.Background(), "ghost@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileNameAndImage(t *testing.T) {
	users := newFakeUserStore()
	media := &fakeMediaStore{}
	svc := NewUserService(users, media, fakeSigner{})

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	err = svc.UpdateProfile(context.Background(), "alice@example.com", "Alice B.", &UploadInput{
		Filename:    "me.png",
		ContentType: "image/png",
		Data:        []byte("png"),
	})
	require.NoError(t, err)

	u, err := users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", u.Name)
	assert.Contains(t, u.ProfileImage, "profiles/alice_example.com.png")

	// Replacing the image drops the old object after the write.
	old := u.ProfileImage
	err = svc.UpdateProfile(context.Background(), "alice@example.com", "", &UploadInput{
		Filename:    "me.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpg"),
	})
	require.NoError(t, err)
	require.Len(t, media.deleted, 1)
	assert.Equal(t, old, media.deleted[0])
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), &fakeMediaStore{}, fakeSigner{})

	err := svc.UpdateProfile(context.Background(), "ghost@example.com", "Name", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
