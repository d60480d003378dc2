package revision

import (
	"fmt"
)

// RepositoryNotFoundError is returned by New when no repository contains the
// starting path, or git is not installed, and fallback is disabled.
type RepositoryNotFoundError struct {
	Path string
	Err  error
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("unable to find a git repository for '%s': %v", e.Path, e.Err)
}

func (e *RepositoryNotFoundError) Unwrap() error {
	return e.Err
}

// HistoryQueryError is returned when the history of one file cannot be read
// and fallback is disabled. Err is a *git.GitError or git.ErrGitNotFound.
type HistoryQueryError struct {
	Path string
	Err  error
}

func (e *HistoryQueryError) Error() string {
	return fmt.Sprintf("unable to read git logs of '%s': %v", e.Path, e.Err)
}

func (e *HistoryQueryError) Unwrap() error {
	return e.Err
}
