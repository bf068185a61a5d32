// Package config loads settings for the bglogic binaries from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// CLI holds the defaults of the bglogic command. Flags override them.
type CLI struct {
	Seed       uint64 `env:"BGLOGIC_SEED" envDefault:"0"`
	Transcript string `env:"BGLOGIC_TRANSCRIPT"`
	Player1    string `env:"BGLOGIC_PLAYER1" envDefault:"black"`
	Player2    string `env:"BGLOGIC_PLAYER2" envDefault:"white"`
}

// LoadCLI reads CLI settings from the environment.
func LoadCLI() (CLI, error) {
	var cfg CLI
	if err := ParseEnv(&cfg); err != nil {
		return CLI{}, err
	}
	return cfg, nil
}
