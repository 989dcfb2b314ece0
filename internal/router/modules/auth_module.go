package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/scrapbookapp/scrapbook/internal/interface/http"
)

// AuthModule wires the local credential routes.
// POST /login, POST /register, GET /logout
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/login", m.Handler.Login)
	rg.POST("/register", m.Handler.Register)
	rg.GET("/logout", m.Handler.Logout)
}
