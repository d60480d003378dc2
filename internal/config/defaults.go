package config

import "github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version:             1,
		FallbackToBuildDate: false,
		Locale:              "en",
		TimeZone:            "UTC",
		Type:                dates.TypeDate,
		EnableCreationDate:  false,
		Include:             []string{"**/*.md"},
		Exclude:             []string{},
		CI:                  []*CIConfig{},
	}
}

// DefaultConfigHCL returns a documented starter configuration file.
func DefaultConfigHCL() string {
	return `# gitrevdate configuration
version = 1

# Use the current time when git history is unavailable (no repository,
# git not installed, unreadable logs) instead of failing.
fallback_to_build_date = false

# Locale for long-form dates, e.g. "en", "de", "pt-BR".
locale = "en"

# tz database name used to display dates.
time_zone = "UTC"

# Default rendering: date, datetime, iso_date, iso_datetime or timeago.
type = "date"

# Also resolve the date each file was first added.
enable_creation_date = false

# Files considered when a directory is given (doublestar patterns,
# relative to that directory).
include = ["**/*.md"]
exclude = []

# Shallow clone warnings. A shallow checkout with fewer than default_depth
# commits on the platform named by the label warns. Declaring any ci block
# replaces the built-in GitLab CI, GitHub Actions and Bitbucket Pipelines
# table.
#
# ci "GITLAB_CI" {
#   name          = "GitLab CI"
#   default_depth = 50
#   remedy        = "set GIT_DEPTH to 1000 in your .gitlab-ci.yml file"
# }
`
}
