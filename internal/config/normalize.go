package config

import (
	"path/filepath"
	"strings"
)

// Normalize fills defaults and resolves relative paths against root.
func Normalize(cfg *Config, root string) {
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.Bank = resolvePath(root, cfg.Bank)
	cfg.Log = resolvePath(root, cfg.Log)
}

func resolvePath(root, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
