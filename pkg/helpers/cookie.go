package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieManager writes and clears one named cookie, used for the
// session token.
type CookieManager struct {
	Name   string
	Domain string
	Secure bool
	TTL    time.Duration
}

func NewCookieManager(name, domain string, secure bool, ttl time.Duration) *CookieManager {
	return &CookieManager{Name: name, Domain: domain, Secure: secure, TTL: ttl}
}

// SetSession stores the opaque session token. HttpOnly keeps it away
// from page scripts.
func (m *CookieManager) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, token, int(m.TTL.Seconds()), "/", m.Domain, m.Secure, true)
}

// ClearSession expires the session cookie.
func (m *CookieManager) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, "", -1, "/", m.Domain, m.Secure, true)
}
