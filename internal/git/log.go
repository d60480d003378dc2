package git

import (
	"fmt"
	"strconv"
)

// LastAuthorTime returns the author timestamp (Unix seconds) of the most
// recent commit touching path in the repository at dir.
//
// The boolean is false with a nil error when path has no history, which is
// the case for untracked files, files only staged, and repositories
// without commits.
func LastAuthorTime(dir, path string) (int64, bool, error) {
	// %at is the author date as a Unix timestamp
	out, err := Run([]string{"log", "-n", "1", "--format=%at", "--", path}, &RunOptions{Dir: dir})
	if err != nil {
		if IsNoCommits(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return parseTimestamp(firstLine(out))
}

// FirstAuthorTime returns the author timestamp of the commit that added path,
// following renames. The boolean has the same meaning as in LastAuthorTime.
func FirstAuthorTime(dir, path string) (int64, bool, error) {
	out, err := Run([]string{"log", "--follow", "--diff-filter=A", "--format=%at", "--", path}, &RunOptions{Dir: dir})
	if err != nil {
		if IsNoCommits(err) {
			return 0, false, nil
		}
		return 0, false, err
	}

	// newest first, the addition we want is at the bottom
	lines := splitLines(out)
	if len(lines) == 0 {
		return 0, false, nil
	}
	return parseTimestamp(lines[len(lines)-1])
}

func parseTimestamp(s string) (int64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse author timestamp %q: %w", s, err)
	}
	return ts, true, nil
}

func firstLine(s string) string {
	lines := splitLines(s)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
