package cli

import (
	"github.com/spf13/cobra"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "gitrevdate",
	Short: "Localized git revision dates for documentation pages",
	Long: `gitrevdate reads the author date of the last commit touching each
documentation file and renders it for a locale and time zone.

It can also run as a plugin serving revision dates to a site generator.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
