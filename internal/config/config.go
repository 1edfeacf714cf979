// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredentials is returned when the Spotify client credentials
// are not set.
var ErrMissingCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET environment variable")

// Config holds all service configuration.
type Config struct {
	Addr        string
	Environment string
	LogLevel    string

	SpotifyID     string
	SpotifySecret string
	RedirectURL   string

	ClassifierBaseURL string
	ClassifierAPIKey  string
	ClassifierModel   string

	// RequestTimeout bounds the full external call chain of one
	// playlist-generation request.
	RequestTimeout time.Duration
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// Load reads configuration from a .env file (if present) and the
// environment. Spotify credentials are required; everything else has a
// default.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:              envOr("ADDR", "127.0.0.1:8080"),
		Environment:       envOr("ENVIRONMENT", "development"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		SpotifyID:         os.Getenv("SPOTIFY_ID"),
		SpotifySecret:     os.Getenv("SPOTIFY_SECRET"),
		RedirectURL:       envOr("SPOTIFY_REDIRECT_URL", "http://127.0.0.1:8080/callback"),
		ClassifierBaseURL: envOr("CLASSIFIER_BASE_URL", ""),
		ClassifierAPIKey:  os.Getenv("CLASSIFIER_API_KEY"),
		ClassifierModel:   envOr("CLASSIFIER_MODEL", "gpt-4o-mini"),
		RequestTimeout:    durationOr("REQUEST_TIMEOUT", 60*time.Second),
	}

	if cfg.SpotifyID == "" || cfg.SpotifySecret == "" {
		return nil, ErrMissingCredentials
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
