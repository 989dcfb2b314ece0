package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/scrapbookapp/scrapbook/internal/interface/http"
)

// OAuthModule wires the facebook consent round-trip.
// GET /auth/facebook, GET /auth/facebook/callback
type OAuthModule struct {
	Handler *handlers.OAuthHandler
}

func NewOAuthModule(h *handlers.OAuthHandler) *OAuthModule {
	return &OAuthModule{Handler: h}
}

func (m *OAuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/auth/facebook", m.Handler.Redirect)
	rg.GET("/auth/facebook/callback", m.Handler.Callback)
}
