package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client. A .env file in the
// working directory is loaded first (existing process variables win,
// per godotenv semantics).
const (
	EnvAPIBaseURL          = "REWEAR_API_URL"
	EnvSessionDBPath       = "REWEAR_SESSION_DB"
	EnvHealthCheckInterval = "REWEAR_HEALTH_INTERVAL"
)

// parseEnv overlays Config with values from the environment. Unset or
// malformed variables leave the existing values in place.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv(EnvHealthCheckInterval); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.HealthCheckInterval = time.Duration(seconds) * time.Second
		}
	}
}
