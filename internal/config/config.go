package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/marcodamonte/algorithms/internal/logging"
	"github.com/marcodamonte/algorithms/internal/render"
)

type Config struct {
	LogLevel     string `envDefault:"warn" env:"SNIPPETS_LOG_LEVEL"`
	JSONLog      bool   `envDefault:"false" env:"SNIPPETS_JSON_LOG"`
	Output       string `envDefault:"text" env:"SNIPPETS_OUTPUT"`
	DefaultLimit int    `envDefault:"2" env:"SNIPPETS_DEFAULT_LIMIT"`
}

// LoadConfig reads .env.local and .env when present, then the environment.
// Variables already set in the environment win over the files.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := logging.LevelFromString(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("SNIPPETS_LOG_LEVEL: %w", err))
	}
	if _, err := render.ParseFormat(c.Output); err != nil {
		result = multierror.Append(result, fmt.Errorf("SNIPPETS_OUTPUT: %w", err))
	}
	if c.DefaultLimit < 1 {
		result = multierror.Append(result, fmt.Errorf("SNIPPETS_DEFAULT_LIMIT: must be at least 1, got %d", c.DefaultLimit))
	}

	return result.ErrorOrNil()
}
