package config

import "time"

// Config holds runtime settings for the notes CLI.
//
// Fields:
//   - BaseURL: origin of the notes backend including the /api prefix.
//   - DatabasePath: location of the local SQLite database (token store).
//   - SecretPath: location of the per-install secret used to seal tokens.
//   - RequestTimeout: per-request HTTP timeout; zero keeps the transport
//     default.
type Config struct {
	BaseURL        string
	DatabasePath   string
	SecretPath     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.DatabasePath = "notes.db"
	c.SecretPath = "notes.secret"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
