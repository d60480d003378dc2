package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func skipWithoutGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed, skipping test")
	}
}

// initTestRepo creates an empty repository with a configured identity.
func initTestRepo(t *testing.T, dir string) {
	t.Helper()

	runGit(t, dir, nil, "init")
	runGit(t, dir, nil, "config", "user.email", "test@test.com")
	runGit(t, dir, nil, "config", "user.name", "Test User")
	runGit(t, dir, nil, "config", "commit.gpgsign", "false")
}

// commitFile writes name and commits it with the given author and committer time.
func commitFile(t *testing.T, dir, name, content string, unix int64) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	date := strconv.FormatInt(unix, 10) + " +0000"
	env := []string{"GIT_AUTHOR_DATE=" + date, "GIT_COMMITTER_DATE=" + date}
	runGit(t, dir, nil, "add", name)
	runGit(t, dir, env, "commit", "-m", "update "+name)
}

func runGit(t *testing.T, dir string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output))
}

// resolvePath returns path with symlinks evaluated, since temp dirs on some
// platforms live behind a symlink and git reports the physical path.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", path, err)
	}
	return resolved
}
