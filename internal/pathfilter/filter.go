// Package pathfilter selects documentation files with doublestar include and
// exclude patterns.
package pathfilter

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns for file filtering
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter returns a filter matching Markdown pages
func DefaultFilter() *Filter {
	return New([]string{"**/*.md"}, nil)
}

// FilterFiles returns the sorted slash-separated paths, relative to dir, of
// regular files that match an include pattern and no exclude pattern.
func (f *Filter) FilterFiles(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range f.include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			excluded, err := f.excluded(match)
			if err != nil {
				return nil, err
			}
			if !excluded {
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

// Excluded reports whether path, relative to the documentation root, matches
// an exclude pattern. Explicitly named files skip the include patterns.
func (f *Filter) Excluded(path string) (bool, error) {
	return f.excluded(strings.ReplaceAll(path, string(filepath.Separator), "/"))
}

func (f *Filter) excluded(path string) (bool, error) {
	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
