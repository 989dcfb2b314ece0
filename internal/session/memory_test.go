package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	m := NewMemoryManager()
	ctx := context.Background()

	token, err := m.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	d, err := m.Get(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, d.UserID, "fresh session is anonymous")

	require.NoError(t, m.SetUser(ctx, token, "user-1"))
	d, err = m.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", d.UserID)

	require.NoError(t, m.Destroy(ctx, token))
	_, err = m.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFlashPopsExactlyOnce(t *testing.T) {
	m := NewMemoryManager()
	ctx := context.Background()

	token, err := m.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, m.SetFlash(ctx, token, "Invalid email/password"))

	msg, err := m.PopFlash(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Invalid email/password", msg)

	msg, err = m.PopFlash(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestFlashPopIsAtomic(t *testing.T) {
	m := NewMemoryManager()
	ctx := context.Background()

	token, err := m.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, m.SetFlash(ctx, token, "once"))

	const workers = 16
	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := m.PopFlash(ctx, token)
			assert.NoError(t, err)
			results <- msg
		}()
	}
	wg.Wait()
	close(results)

	seen := 0
	for msg := range results {
		if msg != "" {
			seen++
			assert.Equal(t, "once", msg)
		}
	}
	assert.Equal(t, 1, seen, "concurrent pops must deliver the flash exactly once")
}

func TestDestroyDropsPendingFlash(t *testing.T) {
	m := NewMemoryManager()
	ctx := context.Background()

	token, err := m.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, m.SetFlash(ctx, token, "stale"))
	require.NoError(t, m.Destroy(ctx, token))

	_, err = m.PopFlash(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnknownToken(t *testing.T) {
	m := NewMemoryManager()
	ctx := context.Background()

	_, err := m.Get(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.SetUser(ctx, "no-such-token", "u"), ErrNotFound)

	// Destroying a dead session is a no-op, not an error.
	assert.NoError(t, m.Destroy(ctx, "no-such-token"))
}
