package repository

import (
	"context"
	"errors"

	"github.com/scrapbookapp/scrapbook/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when a unique constraint (email or
	// facebook id) rejects a create or update.
	ErrDuplicate = errors.New("duplicate user")
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByFacebookID(ctx context.Context, facebookID string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
