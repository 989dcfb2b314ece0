package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/scrapbookapp/scrapbook/internal/application"
	"github.com/scrapbookapp/scrapbook/internal/interface/middleware"
	"github.com/scrapbookapp/scrapbook/internal/session"
	"github.com/scrapbookapp/scrapbook/pkg/helpers"
	"github.com/scrapbookapp/scrapbook/pkg/validation"
)

// AuthHandler drives the local credential flow.
type AuthHandler struct {
	Service  *application.Service
	Sessions session.Manager
	Cookies  *helpers.CookieManager
	Logger   *logrus.Logger
}

func NewAuthHandler(svc *application.Service, sessions session.Manager, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Sessions: sessions, Cookies: cookies, Logger: logger}
}

type credentialsForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Login POST /login — runs the local strategy. Denials flash the
// uniform message and bounce back to the form; store failures go to
// the fault boundary.
func (h *AuthHandler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		flashRedirect(c, h.Sessions, h.Cookies, application.DenialMessage, "/login")
		return
	}

	u, err := h.Service.Authenticate(c.Request.Context(), form.Email, form.Password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		flashRedirect(c, h.Sessions, h.Cookies, application.DenialMessage, "/login")
		return
	}
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
	h.Logger.WithField("user_id", u.ID).Info("user logged in")
	c.Redirect(http.StatusFound, "/")
}

// Register POST /register — creates a local account and sends the
// user to the login form. Duplicate or malformed input flashes back
// to the register form.
func (h *AuthHandler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		flashRedirect(c, h.Sessions, h.Cookies, validation.Message(err), "/register")
		return
	}

	_, err := h.Service.Register(c.Request.Context(), form.Email, form.Password)
	if errors.Is(err, application.ErrEmailTaken) {
		flashRedirect(c, h.Sessions, h.Cookies, "Email is already registered", "/register")
		return
	}
	if err != nil {
		abort(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Logout GET /logout — destroys the session and clears the cookie.
// Safe for anonymous requests.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.TokenFrom(c); token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			abort(c, err)
			return
		}
	}
	h.Cookies.ClearSession(c)
	c.Redirect(http.StatusFound, "/login")
}
