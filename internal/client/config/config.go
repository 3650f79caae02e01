package config

import "time"

// Config holds runtime settings for the ReWear CLI.
//
// Fields:
//   - APIBaseURL: base URL of the platform REST API, including the
//     /api prefix.
//   - SessionDBPath: path of the local SQLite session database.
//   - HealthCheckInterval: how often the client checks the /health
//     endpoint.
type Config struct {
	APIBaseURL          string
	SessionDBPath       string
	HealthCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.SessionDBPath = "session.db"
	c.HealthCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if present), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)

	// The health watcher's ticker requires a positive interval.
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = 30 * time.Second
	}
	return cfg
}
