package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/scrapbookapp/scrapbook/internal/interface/middleware"
	"github.com/scrapbookapp/scrapbook/internal/session"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	Sessions session.Manager
	Logger   *logrus.Logger
	AppName  string
}

func NewPageHandler(sessions session.Manager, logger *logrus.Logger, appName string) *PageHandler {
	return &PageHandler{Sessions: sessions, Logger: logger, AppName: appName}
}

// Home GET / — renders the home page for authenticated users and
// sends everyone else to the login form.
func (h *PageHandler) Home(c *gin.Context) {
	u := middleware.UserFrom(c)
	if u == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	flash, err := popFlash(c, h.Sessions)
	if err != nil {
		abort(c, err)
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":       "Home",
		"AppName":     h.AppName,
		"Flash":       flash,
		"CurrentUser": u,
	})
}

// LoginForm GET /login
func (h *PageHandler) LoginForm(c *gin.Context) {
	h.renderForm(c, "login.html", "Log in")
}

// RegisterForm GET /register
func (h *PageHandler) RegisterForm(c *gin.Context) {
	h.renderForm(c, "register.html", "Register")
}

func (h *PageHandler) renderForm(c *gin.Context, name, title string) {
	flash, err := popFlash(c, h.Sessions)
	if err != nil {
		abort(c, err)
		return
	}
	c.HTML(http.StatusOK, name, gin.H{
		"Title":   title,
		"AppName": h.AppName,
		"Flash":   flash,
	})
}
