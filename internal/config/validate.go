package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if err := dates.ValidateLocale(cfg.Locale); err != nil {
		return fmt.Errorf("invalid locale: %w", err)
	}

	if _, err := dates.LoadTimezone(cfg.TimeZone); err != nil {
		return fmt.Errorf("invalid time_zone: %w", err)
	}

	if err := dates.ValidateType(cfg.Type); err != nil {
		return fmt.Errorf("invalid type: %w", err)
	}

	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	seen := make(map[string]bool)
	for _, ci := range cfg.CI {
		if ci.EnvVar == "" {
			return fmt.Errorf("ci block requires an environment variable label")
		}
		if seen[ci.EnvVar] {
			return fmt.Errorf("duplicate ci block: %s", ci.EnvVar)
		}
		seen[ci.EnvVar] = true

		if ci.DefaultDepth < 0 {
			return fmt.Errorf("invalid default_depth for ci %s: %d (must be >= 0)", ci.EnvVar, ci.DefaultDepth)
		}
	}

	return nil
}
