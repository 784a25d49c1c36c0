package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config selects the campaign's participants and reporting behavior. Every
// field has a sane default, so running without a config file or environment
// plays the classic matchup: OneStepAhead (X) vs Random (O) under the strict
// referee, 10 games.
type Config struct {
	Trials     int    `yaml:"trials" env:"TRIALS" env-default:"10"`
	AgentX     string `yaml:"agent-x" env:"AGENT_X" env-default:"onestep"`
	AgentO     string `yaml:"agent-o" env:"AGENT_O" env-default:"random"`
	Referee    string `yaml:"referee" env:"REFEREE" env-default:"strict"`
	Seed       uint64 `yaml:"seed" env:"SEED" env-default:"0"`
	MetricsDir string `yaml:"metrics-dir" env:"METRICS_DIR" env-default:""`
	Debug      bool   `yaml:"debug" env:"DEBUG" env-default:"false"`
}

// Load reads path when it exists and falls back to environment variables
// (or defaults) otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
		return config, nil
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return config, nil
}
