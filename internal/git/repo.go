package git

import (
	"errors"
	"os"
	"path/filepath"
)

// FindGitRoot finds the root directory of the git repository containing path.
// path may name a file or a directory; files are resolved from their parent.
// Returns ErrGitNotFound if git is missing, or *ErrNotARepository when no
// repository contains path.
func FindGitRoot(path string) (string, error) {
	dir, err := searchDir(path)
	if err != nil {
		return "", &ErrNotARepository{Dir: path, Err: err}
	}

	root, err := Run([]string{"rev-parse", "--show-toplevel"}, &RunOptions{Dir: dir})
	if err != nil {
		if errors.Is(err, ErrGitNotFound) {
			return "", err
		}
		return "", &ErrNotARepository{Dir: path, Err: err}
	}

	return root, nil
}

// IsShallowClone returns true if the repository at dir is a shallow clone.
// A shallow clone has a "shallow" file in its git directory.
func IsShallowClone(dir string) (bool, error) {
	gitDir, err := GitDir(dir)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(filepath.Join(gitDir, "shallow"))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GitDir returns the absolute path of the git directory for the repository
// containing dir.
func GitDir(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	gitDir, err := Run([]string{"rev-parse", "--git-dir"}, &RunOptions{Dir: absDir})
	if err != nil {
		if errors.Is(err, ErrGitNotFound) {
			return "", err
		}
		return "", &ErrNotARepository{Dir: dir, Err: err}
	}

	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(absDir, gitDir)
	}

	return gitDir, nil
}

// searchDir returns the absolute directory to start the upward search from.
func searchDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return abs, nil
}
