package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/config"
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/output"
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/pathfilter"
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/revision"
)

var (
	configFlag       string
	typeFlag         string
	formatFlag       string
	outputFlag       string
	localeFlag       string
	timeZoneFlag     string
	colorFlag        string
	fallbackFlag     bool
	creationDateFlag bool
	quietFlag        bool
	verboseFlag      bool
)

var dateCmd = &cobra.Command{
	Use:   "date [paths...]",
	Short: "Print the revision date of documentation files",
	Long: `Print the localized date of the last commit touching each file.

Directories are expanded with the include and exclude patterns of the
configuration. Explicit files are only checked against exclude. With no
arguments the current directory is used.`,
	RunE: runDate,
}

func init() {
	rootCmd.AddCommand(dateCmd)

	dateCmd.Flags().StringVar(&configFlag, "config", "", "Path to config file (default: search for .gitrevdate.hcl)")
	dateCmd.Flags().StringVar(&typeFlag, "type", dates.TypeDate, "Date type: date, datetime, iso_date, iso_datetime, timeago")
	dateCmd.Flags().StringVar(&formatFlag, "format", "text", "Output format: text, json")
	dateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	dateCmd.Flags().StringVar(&localeFlag, "locale", "en", "Locale for long-form dates")
	dateCmd.Flags().StringVar(&timeZoneFlag, "time-zone", "UTC", "tz database name used for display")
	dateCmd.Flags().BoolVar(&fallbackFlag, "fallback-to-build-date", false, "Use the current time when git history is unavailable")
	dateCmd.Flags().BoolVar(&creationDateFlag, "creation-date", false, "Also print the date each file was first added")
	dateCmd.Flags().StringVar(&colorFlag, "color", "auto", "Color mode: auto, always, never")
	dateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
	dateCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

func runDate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	cfg, err := config.Load(configFlag, docsDir(args[0]))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if formatFlag != string(output.FormatText) && formatFlag != string(output.FormatJSON) {
		return fmt.Errorf("invalid --format value %q (must be text or json)", formatFlag)
	}

	filter := pathfilter.New(cfg.Include, cfg.Exclude)
	files, err := collectFiles(args, filter)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())
	resolver, err := revision.NewWithLogger(args[0], cfg.Options(), logger)
	if err != nil {
		return err
	}

	report := &output.Report{
		Type:     cfg.Type,
		Locale:   cfg.Locale,
		TimeZone: cfg.TimeZone,
		Entries:  make([]*output.Entry, 0, len(files)),
	}
	for _, file := range files {
		entry, err := resolveEntry(resolver, file, cfg.EnableCreationDate)
		if err != nil {
			return err
		}
		report.Entries = append(report.Entries, entry)
	}

	var writer io.Writer = cmd.OutOrStdout()
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	renderer := output.NewRenderer(output.Format(formatFlag), shouldUseColor(writer, colorFlag))
	if err := renderer.Render(writer, report); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

func resolveEntry(resolver *revision.Resolver, path string, withCreation bool) (*output.Entry, error) {
	revised, err := resolver.RevisionDate(path)
	if err != nil {
		return nil, err
	}
	entry := &output.Entry{Path: path, Revision: revised}

	if withCreation {
		created, err := resolver.CreationDate(path)
		if err != nil {
			return nil, err
		}
		entry.Creation = &created
	}
	return entry, nil
}

// applyFlagOverrides copies explicitly set flags over the configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Type = typeFlag
	}
	if flags.Changed("locale") {
		cfg.Locale = localeFlag
	}
	if flags.Changed("time-zone") {
		cfg.TimeZone = timeZoneFlag
	}
	if flags.Changed("fallback-to-build-date") {
		cfg.FallbackToBuildDate = fallbackFlag
	}
	if flags.Changed("creation-date") {
		cfg.EnableCreationDate = creationDateFlag
	}
}

// collectFiles expands directory arguments and drops excluded files.
func collectFiles(args []string, filter *pathfilter.Filter) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			matches, err := filter.FilterFiles(arg)
			if err != nil {
				return nil, fmt.Errorf("failed to list files in %s: %w", arg, err)
			}
			for _, match := range matches {
				files = append(files, filepath.Join(arg, filepath.FromSlash(match)))
			}
			continue
		}

		excluded, err := filter.Excluded(filepath.Clean(arg))
		if err != nil {
			return nil, err
		}
		if !excluded {
			files = append(files, arg)
		}
	}
	return files, nil
}

// docsDir returns the directory searched for a config file.
func docsDir(path string) string {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}

func newLogger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	switch {
	case verboseFlag:
		level = hclog.Debug
	case quietFlag:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   revision.LoggerName,
		Level:  level,
		Output: w,
	})
}

func shouldUseColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
