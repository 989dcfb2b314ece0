package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/scrapbookapp/scrapbook/internal/interface/http"
)

// PagesModule wires the rendered pages.
// GET / (home), GET /login, GET /register
type PagesModule struct {
	Handler *handlers.PageHandler
}

func NewPagesModule(h *handlers.PageHandler) *PagesModule {
	return &PagesModule{Handler: h}
}

func (m *PagesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/login", m.Handler.LoginForm)
	rg.GET("/register", m.Handler.RegisterForm)
}
