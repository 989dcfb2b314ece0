package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/scrapbookapp/scrapbook/config"
	"github.com/scrapbookapp/scrapbook/internal/oauth"
	"github.com/scrapbookapp/scrapbook/internal/session"
	"github.com/scrapbookapp/scrapbook/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons; main
// populates everything before the server accepts traffic.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	sessions session.Manager
	cookies  *helpers.CookieManager
	provider oauth.Provider
	state    *oauth.StateSigner
)

func SetConfig(c *config.Config)          { cfg = c }
func GetConfig() *config.Config           { return cfg }
func SetLogger(l *logrus.Logger)          { logger = l }
func GetLogger() *logrus.Logger           { return logger }
func SetPGPool(p *pgxpool.Pool)           { pgPool = p }
func GetPGPool() *pgxpool.Pool            { return pgPool }
func SetRedis(r *redis.Client)            { redisClient = r }
func GetRedis() *redis.Client             { return redisClient }
func SetSessions(m session.Manager)       { sessions = m }
func GetSessions() session.Manager        { return sessions }
func SetCookies(m *helpers.CookieManager) { cookies = m }
func GetCookies() *helpers.CookieManager  { return cookies }
func SetOAuthProvider(p oauth.Provider)   { provider = p }
func GetOAuthProvider() oauth.Provider    { return provider }
func SetStateSigner(s *oauth.StateSigner) { state = s }
func GetStateSigner() *oauth.StateSigner  { return state }
