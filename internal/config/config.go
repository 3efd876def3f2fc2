// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api and cmd/f1ctl.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Default upstream endpoints. The Jolpica mirror serves the Ergast API
// schema; both return the same MRData envelope.
const (
	DefaultErgastBaseURL = "https://api.jolpi.ca/ergast/f1"
	DefaultNewsBaseURL   = "https://newsapi.org/v2"
)

// Config is populated from environment variables.
type Config struct {
	// Database (user accounts / favorites). Optional: the stats and news
	// surfaces work without it.
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Upstream statistics API
	ErgastBaseURL           string
	ErgastTimeout           time.Duration
	ErgastMaxRetries        int
	ErgastRetryDelay        time.Duration
	ErgastRequestsPerMinute int

	// News service
	NewsAPIKey  string
	NewsBaseURL string

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	return &Config{
		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		ErgastBaseURL:           envOr("ERGAST_BASE_URL", DefaultErgastBaseURL),
		ErgastTimeout:           time.Duration(envInt("ERGAST_TIMEOUT_SECONDS", 5)) * time.Second,
		ErgastMaxRetries:        envInt("ERGAST_MAX_RETRIES", 3),
		ErgastRetryDelay:        time.Duration(envInt("ERGAST_RETRY_DELAY_MS", 500)) * time.Millisecond,
		ErgastRequestsPerMinute: envInt("ERGAST_REQUESTS_PER_MINUTE", 200),

		NewsAPIKey:  envOr("NEWS_API_KEY", ""),
		NewsBaseURL: envOr("NEWS_BASE_URL", DefaultNewsBaseURL),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
