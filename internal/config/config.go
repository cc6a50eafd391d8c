// Package config loads process configuration from the environment once at
// startup. Services receive what they need through constructors instead of
// reading env vars themselves.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	JWTSecret         string
	GeminiAPIKey      string
	DatabasePath      string
	GoogleCredentials string
}

// Load reads .env (if present) and the environment. JWT_SECRET is required;
// GEMINI_API_KEY and GOOGLE_APPLICATION_CREDENTIALS may be absent, in which
// case the endpoints that depend on them fail per request.
func Load() (*Config, error) {
	// .env is optional, env vars win either way
	_ = godotenv.Load()

	cfg := &Config{
		Port:              os.Getenv("PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabasePath:      os.Getenv("DATABASE_PATH"),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "./divineverse.db"
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}
