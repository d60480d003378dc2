package main

import (
	"os"
	"runtime/debug"
	// embedded zone database for hosts without /usr/share/zoneinfo
	_ "time/tzdata"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/cli"
)

// Version information (set via ldflags during build, or read from build info)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	info, ok := debug.ReadBuildInfo()

	// go install module@version
	if version == "dev" && ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	if commit == "none" && ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commit = setting.Value
				if len(commit) > 7 {
					commit = commit[:7]
				}
			case "vcs.time":
				date = setting.Value
			}
		}
	}

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
