package revision

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/git"
)

// LoggerName is the name of the default logger and the prefix of every
// message it writes.
const LoggerName = "git-revision-date-localized"

// State tells whether a Resolver is bound to a repository.
type State int

const (
	// StateBound means history queries run against a located repository.
	StateBound State = iota
	// StateFallbackOnly means no repository was found and every query
	// answers with the current time.
	StateFallbackOnly
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "bound"
	case StateFallbackOnly:
		return "fallback-only"
	default:
		return "unknown"
	}
}

// Resolver answers revision date queries for files of one repository.
type Resolver struct {
	state  State
	root   string
	opts   Options
	logger hclog.Logger

	now    func() time.Time
	getenv func(string) string
}

// New locates the repository containing path and returns a Resolver bound to
// it, logging warnings to stderr.
func New(path string, opts Options) (*Resolver, error) {
	return NewWithLogger(path, opts, DefaultLogger())
}

// DefaultLogger returns the stderr logger used by New.
func DefaultLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   LoggerName,
		Level:  hclog.Warn,
		Output: os.Stderr,
	})
}

// NewWithLogger is New with a caller supplied logger.
//
// If no repository is found, or git is missing, the Resolver is returned in
// StateFallbackOnly when opts.FallbackToBuildDate is set. Otherwise a
// *RepositoryNotFoundError is returned. An invalid locale or time zone is
// always an error.
func NewWithLogger(path string, opts Options, logger hclog.Logger) (*Resolver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	r := &Resolver{
		opts:   opts,
		logger: logger,
		now:    time.Now,
		getenv: os.Getenv,
	}

	root, err := git.FindGitRoot(path)
	if err != nil {
		if opts.FallbackToBuildDate {
			logger.Warn("Unable to find a git directory and/or git is not installed." +
				" Option 'fallback_to_build_date' set to 'true': Falling back to build date",
				"path", path, "error", err)
			r.state = StateFallbackOnly
			return r, nil
		}
		logger.Error("Unable to find a git directory and/or git is not installed."+
			" To ignore this error, set option 'fallback_to_build_date: true'",
			"path", path, "error", err)
		return nil, &RepositoryNotFoundError{Path: path, Err: err}
	}

	r.state = StateBound
	r.root = root
	logger.Debug("located git repository", "root", root)

	r.checkShallowClone()
	return r, nil
}

// State returns whether the Resolver is bound or in fallback-only mode.
func (r *Resolver) State() State {
	return r.state
}

// Root returns the repository root, or "" in fallback-only mode.
func (r *Resolver) Root() string {
	return r.root
}

// Options returns the options the Resolver was created with.
func (r *Resolver) Options() Options {
	return r.opts
}

// Timestamp returns the author time of the last commit touching path, in
// Unix seconds.
//
// A file without history gets the current time. A failed git query gets the
// current time when allowFallback is set and a *HistoryQueryError otherwise.
func (r *Resolver) Timestamp(path string, allowFallback bool) (int64, error) {
	return r.resolve(path, allowFallback, git.LastAuthorTime)
}

// CreationTimestamp returns the author time of the commit that added path,
// with the same fallback policy as Timestamp.
func (r *Resolver) CreationTimestamp(path string, allowFallback bool) (int64, error) {
	return r.resolve(path, allowFallback, git.FirstAuthorTime)
}

// RevisionDate returns the formatted last-modified date of path.
func (r *Resolver) RevisionDate(path string) (dates.Formats, error) {
	ts, err := r.Timestamp(path, r.opts.FallbackToBuildDate)
	if err != nil {
		return dates.Formats{}, err
	}
	return dates.Format(ts, r.opts.Locale, r.opts.TimeZone)
}

// CreationDate returns the formatted creation date of path.
func (r *Resolver) CreationDate(path string) (dates.Formats, error) {
	ts, err := r.CreationTimestamp(path, r.opts.FallbackToBuildDate)
	if err != nil {
		return dates.Formats{}, err
	}
	return dates.Format(ts, r.opts.Locale, r.opts.TimeZone)
}

type historyQuery func(dir, path string) (int64, bool, error)

func (r *Resolver) resolve(path string, allowFallback bool, query historyQuery) (int64, error) {
	if r.state == StateFallbackOnly {
		return r.now().Unix(), nil
	}

	ts, ok, err := query(r.root, absPath(path))
	if err != nil {
		if !allowFallback {
			r.logQueryError(path, err)
			return 0, &HistoryQueryError{Path: path, Err: err}
		}
		r.logQueryFallback(path, err)
		return r.now().Unix(), nil
	}

	if !ok {
		r.logger.Warn("file has no git logs, using current timestamp", "path", path)
		return r.now().Unix(), nil
	}

	return ts, nil
}

func (r *Resolver) logQueryError(path string, err error) {
	if errors.Is(err, git.ErrGitNotFound) {
		r.logger.Error("Unable to perform command 'git log'. Is git installed?"+
			" To ignore this error, set option 'fallback_to_build_date: true'",
			"path", path)
		return
	}
	r.logger.Error("Unable to read git logs."+
		" To ignore this error, set option 'fallback_to_build_date: true'",
		"path", path, "error", err)
}

func (r *Resolver) logQueryFallback(path string, err error) {
	if errors.Is(err, git.ErrGitNotFound) {
		r.logger.Warn("Unable to perform command: 'git log'. Is git installed?"+
			" Option 'fallback_to_build_date' set to 'true': Falling back to build date",
			"path", path)
		return
	}
	r.logger.Warn("Unable to read git logs. Is git log readable?"+
		" Option 'fallback_to_build_date' set to 'true': Falling back to build date",
		"path", path, "error", err)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
