package git

import (
	"fmt"
	"strconv"
	"strings"
)

// ListRefs returns the full names of all references (branches, tags and
// remote-tracking branches) in the repository at dir.
func ListRefs(dir string) ([]string, error) {
	out, err := Run([]string{"for-each-ref", "--format=%(refname)"}, &RunOptions{Dir: dir})
	if err != nil {
		return nil, fmt.Errorf("failed to list refs: %w", err)
	}
	return splitLines(out), nil
}

// CommitCount returns the number of first-parent commits reachable from ref.
func CommitCount(dir, ref string) (int, error) {
	out, err := Run([]string{"rev-list", "--count", "--first-parent", ref}, &RunOptions{Dir: dir})
	if err != nil {
		return 0, fmt.Errorf("failed to count commits of %q: %w", ref, err)
	}

	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("failed to parse commit count of %q: %q", ref, out)
	}
	return n, nil
}

// CommitCounts returns the reachable commit count for every reference in the
// repository at dir, keyed by reference name.
func CommitCounts(dir string) (map[string]int, error) {
	refs, err := ListRefs(dir)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(refs))
	for _, ref := range refs {
		n, err := CommitCount(dir, ref)
		if err != nil {
			return nil, err
		}
		counts[ref] = n
	}
	return counts, nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
