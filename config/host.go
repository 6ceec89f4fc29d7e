package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Host holds process-level options for the terminal host binary
// Environment provides defaults, command line flags override
type Host struct {
	Limit      string `env:"FACEFALL_LIMIT" envDefault:"beginner"`
	Debug      bool   `env:"FACEFALL_DEBUG"`
	ConfigPath string `env:"FACEFALL_CONFIG"`
	DBPath     string `env:"FACEFALL_DB" envDefault:"data/facefall.db"`
	Listen     string `env:"FACEFALL_LISTEN"`
	Mute       bool   `env:"FACEFALL_MUTE"`
	Seed       int64  `env:"FACEFALL_SEED"`
}

// LoadHost parses host options from the environment
func LoadHost() (Host, error) {
	var h Host
	if err := env.Parse(&h); err != nil {
		return Host{}, fmt.Errorf("parse env: %w", err)
	}
	return h, nil
}
