package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"smartgreeting/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string

	// Server
	ServerAddr string
	BaseURL    string

	// SecretKey seeds cookie encryption (env: SECRET_KEY).
	SecretKey string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // Optional shared limiter storage, e.g. "redis://localhost:6379/0"

	// Greeting table
	GreetingConfigFile string // env: GREETING_CONFIG, default: "greetings.yaml"

	// Features
	EnableMetrics bool // Expose /metrics for Prometheus

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Smart Greeting Bot"
	SiteTagline string // env: SITE_TAGLINE, default: "Ask me for the time, a greeting, or who I am"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ServerAddr:         getEnv("SERVER_ADDR", ":5000"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:5000"),
		SecretKey:          getEnv("SECRET_KEY", "change-me-in-production-min-32-chars"),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),
		RateLimitMax:       getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:           getEnv("REDIS_URL", ""),
		GreetingConfigFile: getEnv("GREETING_CONFIG", "greetings.yaml"),
		EnableMetrics:      getEnv("ENABLE_METRICS", "true") != "false",

		SiteTitle:   getEnv("SITE_TITLE", "Smart Greeting Bot"),
		SiteTagline: getEnv("SITE_TAGLINE", "Ask me for the time, a greeting, or who I am"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", value)
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AllowedOrigins returns the valid CORS origins, falling back to BaseURL.
// Invalid entries are logged and skipped.
func (c *Config) AllowedOrigins() []string {
	raw := c.BaseURL
	if c.CORSOrigins != "" {
		raw = c.CORSOrigins
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if valid, msg := validation.ValidateOrigin(o); !valid {
			slog.Warn("ignoring CORS origin", "origin", o, "reason", msg)
			continue
		}
		origins = append(origins, o)
	}
	return origins
}

// LogLevelValue maps LogLevel to a slog.Level. Unknown values mean info.
func (c *Config) LogLevelValue() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
