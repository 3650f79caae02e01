// Package config loads runtime configuration for the ReWear CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with a .env file loaded via
//     godotenv first.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the platform REST API
//	-d string   path of the local session database
//	-i int      health check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "session_db_path": "session.db",
//	  "health_check_interval": "30s"
//	}
//
// Primary API
//
//   - type Config                     — API base URL, session DB path, health interval
//   - func LoadConfig() *Config       — defaults, then JSON, env, and flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
