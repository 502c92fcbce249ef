package config

import (
	"fmt"
	"os"
)

// Adjust edits a config after environment overrides and before validation.
// Command-line flags use it so that a flag replaces a stale setting before
// the referenced files are checked.
type Adjust func(*Config)

// Load reads a config file, applies environment overrides and adjustments,
// then normalizes and validates the result against the repo root.
func Load(path string, adjust ...Adjust) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	root := RepoRootFromConfigPath(path)
	return finish(cfg, root, adjust)
}

// FromEnvironment builds a config without a file: defaults plus the .env
// file under root and QUIZPLAY_* variables.
func FromEnvironment(root string, adjust ...Adjust) (Config, error) {
	return finish(Default(), root, adjust)
}

func finish(cfg Config, root string, adjust []Adjust) (Config, error) {
	overrides, err := LoadOverrides(root)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	for _, fn := range adjust {
		if fn != nil {
			fn(&cfg)
		}
	}
	Normalize(&cfg, root)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
