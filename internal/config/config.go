// Package config loads daemon configuration from environment variables.
// Command-line flags in cmd/triviad override whatever is set here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the triviad settings.
type Config struct {
	Listen        string `env:"TRIVIA_LISTEN" envDefault:"localhost:3030"`
	HTTPListen    string `env:"TRIVIA_HTTP" envDefault:""`
	DBPath        string `env:"TRIVIA_DB" envDefault:"quizzes.db"`
	Dev           bool   `env:"TRIVIA_DEV" envDefault:"false"`
	SilentUnknown bool   `env:"TRIVIA_SILENT_UNKNOWN" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
