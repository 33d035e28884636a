// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible defaults.
// In Go, we typically use structs to hold configuration, and a function to
// load values from environment variables — no framework config object, just
// explicit values passed to the services that need them.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// OpenRouter AI settings
	OpenRouterAPIKey  string
	OpenRouterModel   string // Model used for datasheet extraction
	OpenRouterBaseURL string // Override for testing; defaults to the public endpoint

	// LLMTimeoutSeconds bounds the remote extraction call. The pipeline itself
	// imposes no deadline, so the HTTP client timeout is the only backstop.
	LLMTimeoutSeconds int

	// Upload limits
	MaxUploadMB int // Max PDF upload size in megabytes

	// Rate limiting
	DefaultRateLimit int // Requests per hour per client IP

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
//
// Go Pattern: Functions that can fail return (value, error). This is Go's
// alternative to exceptions — the caller MUST handle the error.
func Load() (*Config, error) {
	// Load .env if present so local dev doesn't need exported variables.
	_ = godotenv.Load()

	cfg := &Config{
		// Server defaults
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		// OpenRouter AI — Claude is what the extraction prompt was tuned on
		OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "anthropic/claude-3.5-sonnet"),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),

		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 120),

		// Upload limit — datasheets are typically 1-5MB; 16MB leaves headroom
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 16),

		// Rate limiting
		DefaultRateLimit: getEnvInt("DEFAULT_RATE_LIMIT", 100),

		// CORS — in production, set this to your frontend URL
		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
	}

	// Security: the API key MUST be set in production mode. In debug mode we
	// allow starting without one so the upload path can be exercised;
	// extraction requests will fail with a clear error instead.
	if cfg.GinMode == "release" && cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY must be set in production")
	}

	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
// Go Pattern: Small helper functions are idiomatic. Go favors simple,
// composable functions over complex frameworks.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}
