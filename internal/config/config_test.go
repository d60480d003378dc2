package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/revision"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.FallbackToBuildDate {
		t.Error("expected fallback_to_build_date to be false by default")
	}
	if cfg.Locale != "en" {
		t.Errorf("expected locale 'en', got %s", cfg.Locale)
	}
	if cfg.TimeZone != "UTC" {
		t.Errorf("expected time_zone 'UTC', got %s", cfg.TimeZone)
	}
	if cfg.Type != "date" {
		t.Errorf("expected type 'date', got %s", cfg.Type)
	}
	if len(cfg.Include) != 1 || cfg.Include[0] != "**/*.md" {
		t.Errorf("unexpected include patterns: %v", cfg.Include)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := writeConfig(t, `
version = 1

fallback_to_build_date = true
locale                 = "de"
time_zone              = "Europe/Berlin"
type                   = "iso_datetime"
enable_creation_date   = true

include = ["**/*.md", "**/*.markdown"]
exclude = ["drafts/**"]

ci "GITLAB_CI" {
  name          = "GitLab CI"
  default_depth = 100
  remedy        = "raise GIT_DEPTH"
}

ci "WOODPECKER" {
  default_depth = 50
}
`)

	cfg, err := Load(configPath, "")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !cfg.FallbackToBuildDate {
		t.Error("expected fallback_to_build_date to be true")
	}
	if cfg.Locale != "de" || cfg.TimeZone != "Europe/Berlin" || cfg.Type != "iso_datetime" {
		t.Errorf("unexpected formatting settings: %s %s %s", cfg.Locale, cfg.TimeZone, cfg.Type)
	}
	if !cfg.EnableCreationDate {
		t.Error("expected enable_creation_date to be true")
	}
	if len(cfg.Include) != 2 || len(cfg.Exclude) != 1 {
		t.Errorf("unexpected patterns: include=%v exclude=%v", cfg.Include, cfg.Exclude)
	}

	want := revision.Options{
		FallbackToBuildDate: true,
		Locale:              "de",
		TimeZone:            "Europe/Berlin",
		CIProviders: []revision.CIProvider{
			{Name: "GitLab CI", EnvVar: "GITLAB_CI", DefaultDepth: 100, Remedy: "raise GIT_DEPTH"},
			{Name: "WOODPECKER", EnvVar: "WOODPECKER", DefaultDepth: 50},
		},
	}
	if diff := cmp.Diff(want, cfg.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_DefaultProviders(t *testing.T) {
	opts := Default().Options()
	if opts.CIProviders != nil {
		t.Errorf("expected nil CIProviders so the built-in table applies, got %v", opts.CIProviders)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.gitrevdate.hcl", "")
	if err == nil {
		t.Error("expected error for nonexistent config")
	}
}

func TestLoadDefaultsWhenNoConfig(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ConfigPath() != "" {
		t.Errorf("expected defaults, got config from %s", cfg.ConfigPath())
	}
	if cfg.Locale != "en" {
		t.Errorf("expected default locale 'en', got %s", cfg.Locale)
	}
}

func TestLoadFromDocsDir(t *testing.T) {
	chdir(t, t.TempDir())

	configPath := writeConfig(t, `locale = "fr"`)

	cfg, err := Load("", filepath.Dir(configPath))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ConfigPath() != configPath {
		t.Errorf("expected config path %s, got %s", configPath, cfg.ConfigPath())
	}
	if cfg.Locale != "fr" {
		t.Errorf("expected locale 'fr', got %s", cfg.Locale)
	}
	// unset attributes keep their defaults
	if cfg.TimeZone != "UTC" || cfg.Type != "date" || cfg.Version != 1 {
		t.Errorf("expected defaults to be applied, got %+v", cfg)
	}
}

func TestLoadIncludeDefault(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "absent", content: `locale = "en"`, want: []string{"**/*.md"}},
		{name: "explicitly empty", content: `include = []`, want: []string{}},
		{name: "custom", content: `include = ["*.rst"]`, want: []string{"*.rst"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content), "")
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}
			if cfg.Include == nil {
				t.Fatal("Include is nil after loading")
			}
			if diff := cmp.Diff(tt.want, cfg.Include); diff != "" {
				t.Errorf("Include mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "syntax", content: "locale = \nthis is not valid HCL {", errMsg: "failed to parse"},
		{name: "unknown attribute", content: `colour = "red"`, errMsg: "failed to decode"},
		{name: "version", content: `version = 2`, errMsg: "unsupported config version"},
		{name: "locale", content: `locale = "xx-nope-nope"`, errMsg: "invalid locale"},
		{name: "time zone", content: `time_zone = "Mars/Base"`, errMsg: "invalid time_zone"},
		{name: "type", content: `type = "rfc1123"`, errMsg: "invalid type"},
		{name: "exclude pattern", content: `exclude = ["[unclosed"]`, errMsg: "invalid exclude pattern"},
		{name: "negative depth", content: "ci \"GITLAB_CI\" {\n  default_depth = -1\n}", errMsg: "invalid default_depth"},
		{name: "missing depth", content: "ci \"GITLAB_CI\" {\n  name = \"GitLab\"\n}", errMsg: "failed to decode"},
		{
			name:    "duplicate ci",
			content: "ci \"CI\" {\n  default_depth = 1\n}\nci \"CI\" {\n  default_depth = 2\n}",
			errMsg:  "duplicate ci block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestDefaultConfigHCL_Loads(t *testing.T) {
	cfg, err := Load(writeConfig(t, DefaultConfigHCL()), "")
	if err != nil {
		t.Fatalf("starter configuration should load: %v", err)
	}

	want := Default()
	want.configPath = cfg.configPath
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(Config{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("starter configuration differs from defaults (-want +got):\n%s", diff)
	}
}
