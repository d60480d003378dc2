package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/config"
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/revision"
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/plugin"
)

var serveConfigFlag string

var serveCmd = &cobra.Command{
	Use:   "serve [docs_dir]",
	Short: "Serve revision dates to a plugin host",
	Long: `Run as a go-plugin plugin. The host starts this command and
dispenses the "revision_date" plugin over net/rpc.

The repository is located once from docs_dir (default ".") and reused for
every request.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveConfigFlag, "config", "", "Path to config file (default: search for .gitrevdate.hcl)")
}

func runServe(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := config.Load(serveConfigFlag, dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stderr is forwarded to the host log by go-plugin
	logger := newLogger(cmd.ErrOrStderr())
	resolver, err := revision.NewWithLogger(dir, cfg.Options(), logger)
	if err != nil {
		return err
	}

	plugin.Serve(resolver, logger)
	return nil
}
