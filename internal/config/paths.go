package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".quizplay"
	ConfigFileName = "config.yml"
)

// ErrConfigNotFound reports that no config exists in the start directory or
// any parent. Callers fall back to FromEnvironment.
var ErrConfigNotFound = errors.New("config not found")

// ConfigDir returns the .quizplay directory under the repo root.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns the config file path under the repo root.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// RepoRootFromConfigPath maps root/.quizplay/config.yml back to root. A
// config stored anywhere else is rooted at its own directory.
func RepoRootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) != ConfigDirName {
		return dir
	}
	return filepath.Dir(dir)
}

// FindConfigPath returns the nearest .quizplay/config.yml at or above
// startDir, which defaults to the working directory. A .quizplay directory
// without a config file stops the search with an error.
func FindConfigPath(startDir string) (string, error) {
	start, err := searchStart(startDir)
	if err != nil {
		return "", err
	}
	for dir := start; ; dir = filepath.Dir(dir) {
		path, found, err := probeRoot(dir)
		if err != nil || found {
			return path, err
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s in %s or parent directories",
				ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), start)
		}
	}
}

func searchStart(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(strings.TrimSpace(startDir))
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	return abs, nil
}

// probeRoot checks one candidate repo root.
func probeRoot(root string) (string, bool, error) {
	path := ConfigPath(root)
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return "", false, fmt.Errorf("config path %q is a directory", path)
	case err == nil:
		return path, true, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", false, fmt.Errorf("stat config path %q: %w", path, err)
	}
	if dirInfo, dirErr := os.Stat(ConfigDir(root)); dirErr == nil && dirInfo.IsDir() {
		return "", false, fmt.Errorf("%s exists in %s without %s", ConfigDirName, root, ConfigFileName)
	}
	return "", false, nil
}
