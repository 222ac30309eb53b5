// Package config provides centralized configuration management for the
// importer. It loads configuration from environment variables with sensible
// defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Import   ImportConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`
}

// ImportConfig holds schedule import settings.
type ImportConfig struct {
	// Timezone is the civil timezone kickoff times are expressed in.
	// Kickoff instants are derived by interpreting game_date + game_time_et
	// as wall-clock time in this zone, then converting to UTC.
	Timezone string `env:"IMPORT_TIMEZONE" default:"America/New_York"`

	// MaxDisplayErrors caps how many row-level problems are printed in
	// validation and load reports. Totals are always exact.
	MaxDisplayErrors int `env:"IMPORT_MAX_DISPLAY_ERRORS" default:"10"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
