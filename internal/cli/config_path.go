package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizplay/internal/config"
)

// loadConfig loads an explicit config path, or searches upward from the
// working directory. Without any config file the defaults and environment
// overrides apply. adjust runs before validation.
func loadConfig(configPath string, adjust ...config.Adjust) (config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		return config.Load(abs, adjust...)
	}
	found, err := config.FindConfigPath("")
	if err == nil {
		return config.Load(found, adjust...)
	}
	if !errors.Is(err, config.ErrConfigNotFound) {
		return config.Config{}, err
	}
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		return config.Config{}, fmt.Errorf("get working directory: %w", wdErr)
	}
	return config.FromEnvironment(wd, adjust...)
}
