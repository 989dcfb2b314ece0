package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPortPrecedence(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "3000", port([]string{"scrapbook"}, "3000"))
	assert.Equal(t, "8081", port([]string{"scrapbook", "8081"}, "3000"))
	assert.Equal(t, "3000", port([]string{"scrapbook", "not-a-port"}, "3000"))

	t.Setenv("PORT", "9090")
	assert.Equal(t, "9090", port([]string{"scrapbook", "8081"}, "3000"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load([]string{"scrapbook"})
	assert.Equal(t, "scrapbook", cfg.AppName)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DefaultSessionSecret, cfg.SessionSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p",
		DBName: "scrapbook", DBSSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/scrapbook?sslmode=disable", cfg.PostgresDSN())
}
