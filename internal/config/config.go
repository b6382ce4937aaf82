package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// CatalogPath points at a YAML or JSON question catalog. Empty uses the
	// catalog built into the binary.
	CatalogPath string `env:"TRIVIA_CATALOG"`

	// Players pre-fills the roster on the setup screen.
	Players []string `env:"TRIVIA_PLAYERS" envSeparator:","`

	// LogFile receives log output while the TUI owns the terminal. "-"
	// disables logging.
	LogFile string `env:"TRIVIA_LOG_FILE" envDefault:"trivia.log"`

	// Seed fixes the die for reproducible games; 0 seeds from the clock.
	Seed int64 `env:"TRIVIA_SEED"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
