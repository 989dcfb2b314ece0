package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/scrapbookapp/scrapbook/internal/application"
	"github.com/scrapbookapp/scrapbook/internal/oauth"
	"github.com/scrapbookapp/scrapbook/internal/session"
	"github.com/scrapbookapp/scrapbook/pkg/helpers"
)

const oauthFailureMessage = "Facebook login failed"

// OAuthHandler drives the facebook consent round-trip.
type OAuthHandler struct {
	Service  *application.Service
	Sessions session.Manager
	Cookies  *helpers.CookieManager
	Provider oauth.Provider
	State    *oauth.StateSigner
	Logger   *logrus.Logger
}

func NewOAuthHandler(svc *application.Service, sessions session.Manager, cookies *helpers.CookieManager, provider oauth.Provider, state *oauth.StateSigner, logger *logrus.Logger) *OAuthHandler {
	return &OAuthHandler{Service: svc, Sessions: sessions, Cookies: cookies, Provider: provider, State: state, Logger: logger}
}

// Redirect GET /auth/facebook — sends the browser to the provider
// consent page with a signed state parameter.
func (h *OAuthHandler) Redirect(c *gin.Context) {
	state, err := h.State.Issue()
	if err != nil {
		abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.Provider.AuthCodeURL(state))
}

// Callback GET /auth/facebook/callback — verifies state, exchanges
// the code for a profile and resolves it to a user, creating the
// account on first login. Provider-side failures bounce to the login
// form; store failures fail closed.
func (h *OAuthHandler) Callback(c *gin.Context) {
	if err := h.State.Verify(c.Query("state")); err != nil {
		h.Logger.WithError(err).Warn("facebook callback with bad state")
		flashRedirect(c, h.Sessions, h.Cookies, oauthFailureMessage, "/login")
		return
	}
	code := c.Query("code")
	if code == "" {
		flashRedirect(c, h.Sessions, h.Cookies, oauthFailureMessage, "/login")
		return
	}

	profile, err := h.Provider.ExchangeProfile(c.Request.Context(), code)
	if err != nil {
		h.Logger.WithError(err).Warn("facebook code exchange failed")
		flashRedirect(c, h.Sessions, h.Cookies, oauthFailureMessage, "/login")
		return
	}

	u, err := h.Service.AuthenticateFacebook(c.Request.Context(), profile)
	if err != nil {
		abort(c, err)
		return
	}

	token, err := ensureSession(c, h.Sessions, h.Cookies)
	if err != nil {
		abort(c, err)
		return
	}
	if err := h.Sessions.SetUser(c.Request.Context(), token, u.ID); err != nil {
		abort(c, err)
		return
	}
	h.Logger.WithField("user_id", u.ID).Info("user logged in via facebook")
	c.Redirect(http.StatusFound, "/")
}
