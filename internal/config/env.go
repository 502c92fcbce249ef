package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override config file settings.
const (
	EnvBank    = "QUIZPLAY_BANK"
	EnvTheme   = "QUIZPLAY_THEME"
	EnvUI      = "QUIZPLAY_UI"
	EnvNoColor = "QUIZPLAY_NO_COLOR"
	EnvSeed    = "QUIZPLAY_SEED"
)

// EnvFileName is read from the repo root when present.
const EnvFileName = ".env"

var overrideKeys = []string{EnvBank, EnvTheme, EnvUI, EnvNoColor, EnvSeed}

// LoadOverrides collects QUIZPLAY_* values from root/.env and the process
// environment. Process variables win over the file.
func LoadOverrides(root string) (map[string]string, error) {
	values := map[string]string{}
	if root != "" {
		path := filepath.Join(root, EnvFileName)
		fileValues, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		for _, key := range overrideKeys {
			if value, ok := fileValues[key]; ok {
				values[key] = value
			}
		}
	}
	for _, key := range overrideKeys {
		if value, ok := os.LookupEnv(key); ok {
			values[key] = value
		}
	}
	return values, nil
}

// ApplyOverrides writes override values onto cfg. Malformed values are
// reported together as a ValidationError.
func ApplyOverrides(cfg *Config, values map[string]string) error {
	collector := &issueCollector{}
	if value, ok := values[EnvBank]; ok {
		cfg.Bank = strings.TrimSpace(value)
	}
	if value, ok := values[EnvTheme]; ok {
		cfg.Theme = strings.TrimSpace(value)
	}
	if value, ok := values[EnvUI]; ok {
		cfg.UI = strings.TrimSpace(value)
	}
	if value, ok := values[EnvNoColor]; ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			collector.add(EnvNoColor, fmt.Sprintf("invalid boolean %q", value))
		} else {
			cfg.NoColor = parsed
		}
	}
	if value, ok := values[EnvSeed]; ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			collector.add(EnvSeed, fmt.Sprintf("invalid integer %q", value))
		} else {
			cfg.Seed = parsed
		}
	}
	return collector.result()
}
