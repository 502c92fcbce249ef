package config

import (
	"fmt"
	"os"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config and the files it references.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		collector.add("ui", fmt.Sprintf("must be %s, %s, or %s", UIAuto, UILive, UIPlain))
	}

	if cfg.Bank != "" {
		info, err := os.Stat(cfg.Bank)
		switch {
		case os.IsNotExist(err):
			collector.add("bank", fmt.Sprintf("file %q does not exist", cfg.Bank))
		case err != nil:
			collector.add("bank", fmt.Sprintf("stat %q: %v", cfg.Bank, err))
		case info.IsDir():
			collector.add("bank", fmt.Sprintf("%q is a directory", cfg.Bank))
		}
	}

	if cfg.Log != "" {
		if info, err := os.Stat(cfg.Log); err == nil && info.IsDir() {
			collector.add("log", fmt.Sprintf("%q is a directory", cfg.Log))
		}
	}

	return collector.result()
}
