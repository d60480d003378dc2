package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List supported locales",
	Long: `List the locale codes with bundled long-form date formats.

Regional variants such as "de-AT" fall back to their base language.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, code := range dates.Locales() {
			fmt.Fprintln(cmd.OutOrStdout(), code)
		}
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}
