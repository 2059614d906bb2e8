package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing.
type envConfig struct {
	BaseURL        string        `env:"NOTES_BASE_URL"`
	DatabasePath   string        `env:"NOTES_DATABASE_PATH"`
	SecretPath     string        `env:"NOTES_SECRET_PATH"`
	RequestTimeout time.Duration `env:"NOTES_REQUEST_TIMEOUT"`
}

// parseEnv overlays cfg with values from NOTES_* environment variables.
// Unset variables leave cfg untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.SecretPath != "" {
		cfg.SecretPath = ec.SecretPath
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
