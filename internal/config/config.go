// Package config handles loading and validating gitrevdate configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/revision"
)

// FileName is the configuration file searched for by Load.
const FileName = ".gitrevdate.hcl"

// Config represents the gitrevdate configuration
type Config struct {
	Version             int         `hcl:"version,optional"`
	FallbackToBuildDate bool        `hcl:"fallback_to_build_date,optional"`
	Locale              string      `hcl:"locale,optional"`
	TimeZone            string      `hcl:"time_zone,optional"`
	Type                string      `hcl:"type,optional"`
	EnableCreationDate  bool        `hcl:"enable_creation_date,optional"`
	Include             []string    `hcl:"include,optional"`
	Exclude             []string    `hcl:"exclude,optional"`
	CI                  []*CIConfig `hcl:"ci,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// CIConfig overrides the shallow clone warning for one CI platform.
// Declaring any ci block replaces the built-in table.
type CIConfig struct {
	EnvVar       string `hcl:"env_var,label"`
	Name         string `hcl:"name,optional"`
	DefaultDepth int    `hcl:"default_depth,attr"`
	Remedy       string `hcl:"remedy,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Options converts the configuration into resolver options.
func (c *Config) Options() revision.Options {
	opts := revision.Options{
		FallbackToBuildDate: c.FallbackToBuildDate,
		Locale:              c.Locale,
		TimeZone:            c.TimeZone,
	}

	if len(c.CI) > 0 {
		opts.CIProviders = make([]revision.CIProvider, 0, len(c.CI))
		for _, ci := range c.CI {
			name := ci.Name
			if name == "" {
				name = ci.EnvVar
			}
			opts.CIProviders = append(opts.CIProviders, revision.CIProvider{
				Name:         name,
				EnvVar:       ci.EnvVar,
				DefaultDepth: ci.DefaultDepth,
				Remedy:       ci.Remedy,
			})
		}
	}

	return opts
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), .gitrevdate.hcl in cwd, .gitrevdate.hcl in docsDir
func Load(configPath, docsDir string) (*Config, error) {
	var path string

	if configPath != "" {
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile(docsDir)
	}

	if path == "" {
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .gitrevdate.hcl in standard locations
func findConfigFile(docsDir string) string {
	cwd, err := os.Getwd()
	if err == nil {
		cwdPath := filepath.Join(cwd, FileName)
		if _, err := os.Stat(cwdPath); err == nil {
			return cwdPath
		}
	}

	if docsDir != "" {
		docsPath := filepath.Join(docsDir, FileName)
		if _, err := os.Stat(docsPath); err == nil {
			return docsPath
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional attributes
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if cfg.Locale == "" {
		cfg.Locale = defaults.Locale
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = defaults.TimeZone
	}
	if cfg.Type == "" {
		cfg.Type = defaults.Type
	}
	// include = [] selects no directory contents; only an absent
	// attribute gets the default
	if cfg.Include == nil {
		cfg.Include = defaults.Include
	}
	if cfg.Exclude == nil {
		cfg.Exclude = defaults.Exclude
	}
}
