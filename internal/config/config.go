package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	AuthModeGoTrue = "gotrue"
	AuthModeJWT    = "jwt"
)

type Config struct {
	HTTPAddr    string
	RoutePrefix string
	PostgresDSN string
	LogLevel    string

	AuthMode        string
	SupabaseURL     string
	SupabaseAnonKey string

	JWTSecret        string
	JWTJWKSURL       string
	JWTIssuer        string
	JWTAudience      string
	JWTClockSkewSecs int

	IdentityTimeout time.Duration

	RateLimitRequests      int
	RateLimitWindowSeconds int
	RateLimitFailClosed    bool
	RateLimitMaxKeys       int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:               addr,
		RoutePrefix:            strings.TrimRight(os.Getenv("ROUTE_PREFIX"), "/"),
		PostgresDSN:            os.Getenv("POSTGRES_DSN"),
		LogLevel:               envDefault("LOG_LEVEL", "info"),
		AuthMode:               strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_MODE"))),
		SupabaseURL:            strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseAnonKey:        os.Getenv("SUPABASE_ANON_KEY"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTJWKSURL:             os.Getenv("JWT_JWKS_URL"),
		JWTIssuer:              os.Getenv("JWT_ISSUER"),
		JWTAudience:            envDefault("JWT_AUDIENCE", "authenticated"),
		JWTClockSkewSecs:       envIntDefault("JWT_CLOCK_SKEW_SECONDS", 60),
		IdentityTimeout:        envDurationDefault("IDENTITY_TIMEOUT", 5*time.Second),
		RateLimitRequests:      envIntDefault("RATE_LIMIT_REQUESTS", 0),
		RateLimitWindowSeconds: envIntDefault("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitFailClosed:    envBoolDefault("RATE_LIMIT_FAIL_CLOSED", false),
		RateLimitMaxKeys:       envIntDefault("RATE_LIMIT_MAX_KEYS", 10000),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                envIntDefault("REDIS_DB", 0),
	}
}

// Validate reports the first setting required by the selected auth mode that is missing.
func (c Config) Validate() error {
	switch c.AuthMode {
	case "":
		return errors.New("AUTH_MODE is required")
	case AuthModeGoTrue:
		if c.SupabaseURL == "" {
			return errors.New("SUPABASE_URL is required for AUTH_MODE=gotrue")
		}
		if c.SupabaseAnonKey == "" {
			return errors.New("SUPABASE_ANON_KEY is required for AUTH_MODE=gotrue")
		}
	case AuthModeJWT:
		if c.JWTSecret == "" && c.JWTJWKSURL == "" {
			return errors.New("JWT_SECRET or JWT_JWKS_URL is required for AUTH_MODE=jwt")
		}
	default:
		return errors.New("unsupported auth mode")
	}
	return nil
}

func (c Config) RateLimitWindow() time.Duration {
	if c.RateLimitWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func (c Config) JWTClockSkew() time.Duration {
	return time.Duration(c.JWTClockSkewSecs) * time.Second
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "No":
		return false
	default:
		return def
	}
}

func envDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// SlogLevel maps LOG_LEVEL onto a slog level; unknown values log at info.
func SlogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
