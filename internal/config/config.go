package config

import (
	"errors"
	"os"
	"strconv"
)

// AuthMode selects the canonical identity transport for a deployment.
type AuthMode string

const (
	// AuthModeToken accepts a signed JWT from the Authorization header or
	// the auth cookie. This is the default mode.
	AuthModeToken AuthMode = "token"
	// AuthModeSession accepts an opaque session id cookie resolved
	// against the session store.
	AuthModeSession AuthMode = "session"
)

// ErrMissingJWTSecret is returned by Load when no signing secret is set.
// Starting without one would leave every issued token unverifiable, so
// this is a hard startup failure rather than a default.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not configured")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string
	MySQLDSN     string
	DBMaxOpen    int
	DBMaxIdle    int
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	JWTSecret    string
	AuthMode     AuthMode
	CookieName   string
	CookieSecure bool
}

// Load builds Config from environment with sensible defaults. It fails
// when JWT_SECRET is absent or AUTH_MODE is unrecognized.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/keysecurity?charset=utf8mb4&parseTime=True&loc=Local"),
		DBMaxOpen:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdle:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AuthMode:     AuthMode(getEnv("AUTH_MODE", string(AuthModeToken))),
		CookieName:   getEnv("AUTH_COOKIE_NAME", "keysecurity_token"),
		CookieSecure: getEnv("AUTH_COOKIE_SECURE", "false") == "true",
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.AuthMode != AuthModeToken && cfg.AuthMode != AuthModeSession {
		return nil, errors.New("AUTH_MODE must be \"token\" or \"session\"")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
