// Package git runs the system git binary to answer the few questions the
// revision date resolver needs.
//
// This package never reads git object files itself. Every answer comes from
// a git subcommand, so the user's git configuration (safe.directory,
// worktrees, alternates) is honored.
//
// Supported queries:
//   - Repository root discovery from any path inside a work tree
//   - Shallow clone detection through the git-dir "shallow" marker
//   - Reference listing and reachable commit counts per reference
//   - Author timestamps of the newest and oldest commit touching a path
//   - Installed git version
//
// Example usage:
//
//	root, err := git.FindGitRoot("docs")
//	if err != nil {
//	    return err
//	}
//
//	ts, ok, err := git.LastAuthorTime(root, "docs/index.md")
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    // file has no history yet
//	}
package git
