package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/scrapbookapp/scrapbook/internal/domain/entity"
	"github.com/scrapbookapp/scrapbook/internal/domain/repository"
	"github.com/scrapbookapp/scrapbook/internal/oauth"
	"github.com/scrapbookapp/scrapbook/pkg/helpers"
)

// DenialMessage is shown for every local credential denial. The same
// text covers unknown email and wrong password on purpose, so a
// response never reveals whether an account exists.
const DenialMessage = "Invalid email/password"

var (
	// ErrInvalidCredentials is a denial: the credentials did not
	// verify. Anything else coming out of Authenticate is a store
	// failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is a registration denial for duplicate emails.
	ErrEmailTaken = errors.New("email already registered")
)

// Service runs the credential strategies against the user store.
type Service struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewService(repo repository.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

// Authenticate is the local strategy: verify email/password against
// the stored bcrypt hash. Unknown email, password-less account and
// hash mismatch all yield ErrInvalidCredentials; store failures
// propagate wrapped.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup by email: %w", err)
	}
	if !u.HasPassword() || !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// AuthenticateFacebook is the OAuth strategy: resolve the provider
// profile to a user, creating the account on first login. An existing
// user's local attributes are left untouched.
func (s *Service) AuthenticateFacebook(ctx context.Context, profile oauth.Profile) (*entity.User, error) {
	u, err := s.Repo.GetByFacebookID(ctx, profile.ID)
	if err == nil {
		// Keep the provider-owned display name current on repeat logins.
		if profile.Name != "" && u.DisplayName != profile.Name {
			u.DisplayName = profile.Name
			if err := s.Repo.Update(ctx, u); err != nil {
				return nil, fmt.Errorf("update display name: %w", err)
			}
		}
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup by facebook id: %w", err)
	}

	u = &entity.User{FacebookID: profile.ID, DisplayName: profile.Name}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create facebook user: %w", err)
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "facebook_id": profile.ID}).
		Info("created user from facebook profile")
	return u, nil
}

// Register creates a local account. The password is hashed before it
// touches the store. A duplicate email surfaces as ErrEmailTaken
// instead of being silently swallowed.
func (s *Service) Register(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.Logger.WithField("user_id", u.ID).Info("registered user")
	return u, nil
}

// CurrentUser resolves a session principal back to a user record. A
// vanished user is anonymous (nil, nil), not an error.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup by id: %w", err)
	}
	return u, nil
}
