// Package session maps opaque tokens, delivered to clients as a
// cookie, to server-side session state: the authenticated principal
// and a one-shot flash message.
package session

import (
	"context"
	"errors"
)

// CookieName is the cookie that carries the session token.
const CookieName = "scrapbook_session"

// ErrNotFound is returned when a token has no live session (expired,
// destroyed, or never issued).
var ErrNotFound = errors.New("session not found")

// Data is the server-side state behind one token. The flash message
// lives beside it, keyed by the same token, so popping it can be a
// single atomic operation.
type Data struct {
	UserID string `json:"user_id,omitempty"`
}

// Manager stores and resolves sessions. A session may exist without a
// principal (anonymous session carrying only a flash message); the
// principal is attached on successful authentication and removed by
// destroying the session.
type Manager interface {
	// Create issues a fresh anonymous session and returns its token.
	Create(ctx context.Context) (string, error)
	// Get resolves a token. Missing sessions return ErrNotFound;
	// any other error is a store failure.
	Get(ctx context.Context, token string) (Data, error)
	// SetUser records the authenticated principal.
	SetUser(ctx context.Context, token, userID string) error
	// SetFlash stores a one-shot message shown on the next render.
	SetFlash(ctx context.Context, token, msg string) error
	// PopFlash returns the pending flash message, clearing it. The
	// pop is atomic: concurrent callers see the message at most once.
	PopFlash(ctx context.Context, token string) (string, error)
	// Destroy removes the session entirely.
	Destroy(ctx context.Context, token string) error
}
