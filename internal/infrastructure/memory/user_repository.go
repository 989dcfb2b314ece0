package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scrapbookapp/scrapbook/internal/domain/entity"
	"github.com/scrapbookapp/scrapbook/internal/domain/repository"
)

// UserRepository is an in-memory repository.UserRepository used by
// tests. It enforces the same uniqueness rules as the Postgres schema:
// non-empty emails and facebook ids are unique.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if u.Email != "" && existing.Email == u.Email {
			return repository.ErrDuplicate
		}
		if u.FacebookID != "" && existing.FacebookID == u.FacebookID {
			return repository.ErrDuplicate
		}
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email != "" && u.Email == email })
}

func (r *UserRepository) GetByFacebookID(ctx context.Context, facebookID string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.FacebookID != "" && u.FacebookID == facebookID })
}

func (r *UserRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Delete removes a user, letting tests model an identity that
// disappears while its session is still live.
func (r *UserRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

var _ repository.UserRepository = (*UserRepository)(nil)
