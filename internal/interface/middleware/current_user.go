package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/scrapbookapp/scrapbook/internal/application"
	"github.com/scrapbookapp/scrapbook/internal/domain/entity"
	"github.com/scrapbookapp/scrapbook/internal/session"
)

const (
	ctxUserKey  = "currentUser"
	ctxTokenKey = "sessionToken"
)

// CurrentUser resolves the session cookie to a user record before any
// handler runs. A missing cookie, dead session or vanished user all
// mean anonymous; only a store failure aborts the request, handing it
// to the fault boundary.
func CurrentUser(sessions session.Manager, svc *application.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		data, err := sessions.Get(c.Request.Context(), token)
		if errors.Is(err, session.ErrNotFound) {
			// Stale cookie; treat as anonymous.
			c.Next()
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Set(ctxTokenKey, token)

		if data.UserID == "" {
			c.Next()
			return
		}
		u, err := svc.CurrentUser(c.Request.Context(), data.UserID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if u != nil {
			c.Set(ctxUserKey, u)
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user attached by CurrentUser, or
// nil for anonymous requests.
func UserFrom(c *gin.Context) *entity.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// TokenFrom returns the live session token, or "" when the request
// carries none.
func TokenFrom(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}
