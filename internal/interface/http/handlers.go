// Package handlers contains the gin request handlers for the page,
// local-auth and facebook-auth routes. Handlers signal hard failures
// by attaching the error to the context and aborting; the fault
// boundary middleware turns that into the 500 page. Expected denials
// never abort, they flash a message and redirect.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scrapbookapp/scrapbook/internal/interface/middleware"
	"github.com/scrapbookapp/scrapbook/internal/session"
	"github.com/scrapbookapp/scrapbook/pkg/helpers"
)

// ensureSession returns the request's live session token, creating a
// session and setting the cookie when the request has none yet.
func ensureSession(c *gin.Context, sessions session.Manager, cookies *helpers.CookieManager) (string, error) {
	if token := middleware.TokenFrom(c); token != "" {
		return token, nil
	}
	token, err := sessions.Create(c.Request.Context())
	if err != nil {
		return "", err
	}
	cookies.SetSession(c, token)
	return token, nil
}

// flashRedirect stores a one-shot message and redirects. Store
// failures abort to the fault boundary.
func flashRedirect(c *gin.Context, sessions session.Manager, cookies *helpers.CookieManager, msg, location string) {
	token, err := ensureSession(c, sessions, cookies)
	if err != nil {
		abort(c, err)
		return
	}
	if err := sessions.SetFlash(c.Request.Context(), token, msg); err != nil {
		abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, location)
}

// popFlash drains the pending flash message for rendering, if any.
func popFlash(c *gin.Context, sessions session.Manager) (string, error) {
	token := middleware.TokenFrom(c)
	if token == "" {
		return "", nil
	}
	return sessions.PopFlash(c.Request.Context(), token)
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
