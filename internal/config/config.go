// Package config provides configuration for the TeamFlow API server.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// DefaultPort is the default HTTP port for the API server.
	DefaultPort = 8000

	// DefaultTokenTTL is the default access token lifetime.
	DefaultTokenTTL = 8 * time.Hour

	// DefaultMaxBodyBytes caps request body size.
	DefaultMaxBodyBytes = 1 << 20
)

// DefaultAllowedOrigins are the CORS origins accepted out of the box.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Config holds the application configuration.
type Config struct {
	// Server settings
	Port         int   `json:"port"`
	MaxBodyBytes int64 `json:"max_body_bytes"`

	// Auth settings
	TokenSecret string        `json:"token_secret"`
	TokenTTL    time.Duration `json:"token_ttl"`

	// CORS settings
	AllowedOrigins []string `json:"allowed_origins"`

	// Logging
	LogLevel string `json:"log_level"`
}

// Default returns a Config with default values. The token secret is
// intentionally empty so production deployments must set one; main
// falls back to a development secret with a warning.
func Default() *Config {
	return &Config{
		Port:           DefaultPort,
		MaxBodyBytes:   DefaultMaxBodyBytes,
		TokenTTL:       DefaultTokenTTL,
		AllowedOrigins: DefaultAllowedOrigins,
		LogLevel:       "info",
	}
}

// Load reads the settings file at path, merges it over the defaults,
// then applies PMS_* environment overrides. A missing file is not an
// error; a malformed file falls back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			var settings map[string]any
			if err := json.Unmarshal(data, &settings); err == nil {
				applySettings(cfg, settings)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applySettings(cfg *Config, settings map[string]any) {
	if v, ok := settings["PMS_PORT"].(float64); ok && v > 0 {
		cfg.Port = int(v)
	}
	if v, ok := settings["PMS_MAX_BODY_BYTES"].(float64); ok && v > 0 {
		cfg.MaxBodyBytes = int64(v)
	}
	if v, ok := settings["PMS_TOKEN_SECRET"].(string); ok && v != "" {
		cfg.TokenSecret = v
	}
	if v, ok := settings["PMS_TOKEN_TTL_MINUTES"].(float64); ok && v > 0 {
		cfg.TokenTTL = time.Duration(v) * time.Minute
	}
	if v, ok := settings["PMS_ALLOWED_ORIGINS"].(string); ok && v != "" {
		cfg.AllowedOrigins = splitTrim(v)
	}
	if v, ok := settings["PMS_LOG_LEVEL"].(string); ok && v != "" {
		cfg.LogLevel = v
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PMS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("PMS_MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxBodyBytes = n
		}
	}
	if v := os.Getenv("PMS_TOKEN_SECRET"); v != "" {
		cfg.TokenSecret = v
	}
	if v := os.Getenv("PMS_TOKEN_TTL_MINUTES"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			cfg.TokenTTL = time.Duration(mins) * time.Minute
		}
	}
	if v := os.Getenv("PMS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitTrim(v)
	}
	if v := os.Getenv("PMS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// splitTrim splits a comma-separated string and trims whitespace.
func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
