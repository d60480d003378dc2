package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/git"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version, commit, and build date of gitrevdate, and the git it runs.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitrevdate version %s\n", versionStr)
		if commitStr != "none" && commitStr != "" {
			fmt.Printf("  commit: %s\n", commitStr)
		}
		if dateStr != "unknown" && dateStr != "" {
			fmt.Printf("  built:  %s\n", dateStr)
		}
		if v, err := git.GetVersion(); err == nil {
			fmt.Printf("  git:    %s\n", v)
		} else {
			fmt.Printf("  git:    not found\n")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
