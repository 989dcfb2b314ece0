package application

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapbookapp/scrapbook/internal/infrastructure/memory"
	"github.com/scrapbookapp/scrapbook/internal/oauth"
)

func newService() (*Service, *memory.UserRepository) {
	repo := memory.NewUserRepository()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(repo, logger), repo
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.NotEqual(t, "pw1", created.PasswordHash, "password must never be stored in plaintext")

	u, err := svc.Authenticate(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestAuthenticateDenials(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPw := svc.Authenticate(ctx, "a@x.com", "nope")
	_, unknown := svc.Authenticate(ctx, "ghost@x.com", "pw1")
	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw, unknown)
}

func TestAuthenticateFacebookUserWithoutPassword(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	u, err := svc.AuthenticateFacebook(ctx, oauth.Profile{ID: "fb-1", Name: "Ada"})
	require.NoError(t, err)

	// A facebook-only account has no password hash and can never pass
	// the local strategy.
	_, err = svc.Authenticate(ctx, u.Email, "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestFacebookLazyCreationIsIdempotent(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	profile := oauth.Profile{ID: "fb-42", Name: "Grace Hopper"}

	first, err := svc.AuthenticateFacebook(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, "fb-42", first.FacebookID)
	assert.Equal(t, "Grace Hopper", first.DisplayName)

	second, err := svc.AuthenticateFacebook(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.Len(), "second callback must not create a duplicate")
}

func TestFacebookRepeatLoginRefreshesDisplayName(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	first, err := svc.AuthenticateFacebook(ctx, oauth.Profile{ID: "fb-7", Name: "Old Name"})
	require.NoError(t, err)

	second, err := svc.AuthenticateFacebook(ctx, oauth.Profile{ID: "fb-7", Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "New Name", second.DisplayName)

	stored, err := repo.GetByFacebookID(ctx, "fb-7")
	require.NoError(t, err)
	assert.Equal(t, "New Name", stored.DisplayName)
	assert.Equal(t, 1, repo.Len())
}

func TestCurrentUserVanishedIsAnonymous(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	created, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	repo.Delete(created.ID)

	u, err := svc.CurrentUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, u)
}
