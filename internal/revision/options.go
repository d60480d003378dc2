package revision

import (
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
)

// CIProvider describes a continuous-integration platform whose default
// checkout is a shallow clone.
type CIProvider struct {
	// Name is the human readable platform name used in warnings.
	Name string
	// EnvVar is set to a non-empty value when running on the platform.
	EnvVar string
	// DefaultDepth is the fetch depth a checkout must reach to count as
	// deep enough. A shallow clone whose deepest ref has fewer commits
	// triggers a warning. GitHub Actions fetches a single commit, so its
	// entry is 2.
	DefaultDepth int
	// Remedy tells the user how to fetch more history.
	Remedy string
}

// DefaultCIProviders returns the built-in CI provider table.
func DefaultCIProviders() []CIProvider {
	return []CIProvider{
		{
			Name:         "GitLab CI",
			EnvVar:       "GITLAB_CI",
			DefaultDepth: 50,
			Remedy:       "set GIT_DEPTH to 1000 in your .gitlab-ci.yml file (see https://docs.gitlab.com/ee/ci/pipelines/settings.html#limit-the-number-of-changes-fetched-during-clone)",
		},
		{
			Name:         "GitHub Actions",
			EnvVar:       "GITHUB_ACTIONS",
			DefaultDepth: 2,
			Remedy:       "set fetch-depth to 0 in your actions/checkout step (see https://github.com/actions/checkout)",
		},
		{
			Name:         "Bitbucket Pipelines",
			EnvVar:       "BITBUCKET_BUILD_NUMBER",
			DefaultDepth: 50,
			Remedy:       "set clone depth to full in your bitbucket-pipelines.yml file (see https://support.atlassian.com/bitbucket-cloud/docs/git-clone-behavior/)",
		},
	}
}

// Options configures a Resolver. It is copied on construction.
type Options struct {
	// FallbackToBuildDate substitutes the current time whenever git history
	// is unavailable instead of failing.
	FallbackToBuildDate bool

	// Locale is the locale code used for long-form dates.
	Locale string

	// TimeZone is a tz database name used for display.
	TimeZone string

	// CIProviders overrides DefaultCIProviders when non-nil. An empty,
	// non-nil slice disables shallow clone warnings.
	CIProviders []CIProvider
}

// DefaultOptions returns options for English dates in UTC without fallback.
func DefaultOptions() Options {
	return Options{
		Locale:   "en",
		TimeZone: "UTC",
	}
}

func (o Options) providers() []CIProvider {
	if o.CIProviders == nil {
		return DefaultCIProviders()
	}
	return o.CIProviders
}

// validate checks the formatting options up front so a misconfigured
// locale or zone aborts before any file is processed.
func (o Options) validate() error {
	if err := dates.ValidateLocale(o.Locale); err != nil {
		return err
	}
	if _, err := dates.LoadTimezone(o.TimeZone); err != nil {
		return err
	}
	return nil
}
