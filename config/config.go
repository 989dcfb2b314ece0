package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration

	// Cookies
	CookieDomain string
	CookieSecure bool

	// Facebook OAuth
	FacebookClientID     string
	FacebookClientSecret string
	FacebookCallbackURL  string

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Migrations
	MigrationsDir string

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

// DefaultSessionSecret is the fallback when SESSION_SECRET is unset.
// Fine for local development, unacceptable in production; Load warns
// when it leaks into a non-development environment.
const DefaultSessionSecret = "keyboard cat"

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// port resolves the listening port from PORT, then the first
// command-line argument, then the default.
func port(args []string, def string) string {
	if v := os.Getenv("PORT"); v != "" {
		return v
	}
	if len(args) > 1 && args[1] != "" {
		if _, err := strconv.Atoi(args[1]); err == nil {
			return args[1]
		}
		log.Printf("ignoring non-numeric port argument %q", args[1])
	}
	return def
}

// Load loads configuration from environment variables. args is
// normally os.Args; the first argument may carry the port.
func Load(args []string) *Config {
	cfg := &Config{
		AppName: getenv("APP_NAME", "scrapbook"),
		Env:     getenv("APP_ENV", "development"),
		Port:    port(args, "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "scrapbook"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		SessionSecret: getenv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    getdur("SESSION_TTL", 24*time.Hour),

		CookieDomain: getenv("COOKIE_DOMAIN", "localhost"),
		CookieSecure: getbool("COOKIE_SECURE", false),

		FacebookClientID:     getenv("FACEBOOK_CLIENT_ID", ""),
		FacebookClientSecret: getenv("FACEBOOK_CLIENT_SECRET", ""),
		FacebookCallbackURL:  getenv("FACEBOOK_CALLBACK_URL", "http://localhost:3000/auth/facebook/callback"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
	if cfg.SessionSecret == DefaultSessionSecret && cfg.Env != "development" {
		log.Printf("SESSION_SECRET is unset; using the insecure default in %s", cfg.Env)
	}
	return cfg
}

// PostgresDSN returns a DSN compatible with pgx.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// CORSOrigins returns the allowed origins as a slice.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
