package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGitNotFound is returned when git is not installed or not in PATH.
var ErrGitNotFound = errors.New("git is not installed or not in PATH")

// GitError wraps errors from git command execution with full context.
type GitError struct {
	Command  []string
	ExitCode int
	Stderr   string
}

func (e *GitError) Error() string {
	name := "<none>"
	if len(e.Command) > 0 {
		name = e.Command[0]
	}
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed (exit %d): %s", name, e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("git %s failed (exit %d)", name, e.ExitCode)
}

// ErrNotARepository is returned when the directory is not inside a git repository.
type ErrNotARepository struct {
	Dir string
	Err error
}

func (e *ErrNotARepository) Error() string {
	return fmt.Sprintf("'%s' is not a git repository (or any parent directory)", e.Dir)
}

func (e *ErrNotARepository) Unwrap() error {
	return e.Err
}

// IsNoCommits returns true if the error comes from a history query against a
// repository whose current branch has no commits yet.
func IsNoCommits(err error) bool {
	var gitErr *GitError
	if !errors.As(err, &gitErr) {
		return false
	}
	if gitErr.ExitCode != 128 {
		return false
	}

	stderr := strings.ToLower(gitErr.Stderr)
	return strings.Contains(stderr, "does not have any commits yet") ||
		strings.Contains(stderr, "bad default revision") ||
		strings.Contains(stderr, "unknown revision or path not in the working tree")
}
