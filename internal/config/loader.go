package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./appledict.yaml"

// Load reads configuration from the file named by APPLEDICT_CONFIG, or
// from ./appledict.yaml when present, falling back to environment
// variables and defaults. A missing file is only an error when its
// path was given explicitly.
func Load() (*Config, error) {
	var cfg Config
	// cleanenv treats false as unset and would apply an env-default of
	// "true" over an explicit false, so the bool default is seeded here.
	cfg.Convert.BracketTrailingSpace = true

	path := os.Getenv("APPLEDICT_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
