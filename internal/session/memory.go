package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryManager is an in-process Manager used by tests. No expiry.
// Flash messages live in their own map, mirroring the redis layout.
type MemoryManager struct {
	mu       sync.RWMutex
	sessions map[string]Data
	flashes  map[string]string
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		sessions: make(map[string]Data),
		flashes:  make(map[string]string),
	}
}

func (m *MemoryManager) Create(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token := uuid.NewString()
	m.sessions[token] = Data{}
	return token, nil
}

func (m *MemoryManager) Get(ctx context.Context, token string) (Data, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.sessions[token]
	if !ok {
		return Data{}, ErrNotFound
	}
	return d, nil
}

func (m *MemoryManager) SetUser(ctx context.Context, token, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.sessions[token]
	if !ok {
		return ErrNotFound
	}
	d.UserID = userID
	m.sessions[token] = d
	return nil
}

func (m *MemoryManager) SetFlash(ctx context.Context, token, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; !ok {
		return ErrNotFound
	}
	m.flashes[token] = msg
	return nil
}

func (m *MemoryManager) PopFlash(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; !ok {
		return "", ErrNotFound
	}
	msg := m.flashes[token]
	delete(m.flashes, token)
	return msg, nil
}

func (m *MemoryManager) Destroy(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	delete(m.flashes, token)
	return nil
}

var _ Manager = (*MemoryManager)(nil)
