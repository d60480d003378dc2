package revision

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
)

var fixedNow = time.Unix(1700000000, 0)

func skipWithoutGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed, skipping test")
	}
}

// bufferLogger returns a debug level logger writing into the returned buffer.
func bufferLogger() (hclog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   LoggerName,
		Level:  hclog.Debug,
		Output: &buf,
	})
	return logger, &buf
}

// clearCIEnv keeps the host CI environment from leaking into shallow clone tests.
func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, p := range DefaultCIProviders() {
		t.Setenv(p.EnvVar, "")
	}
}

// outsideAnyRepo returns a temp dir git will not resolve to a parent repository.
func outsideAnyRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	return dir
}

func initTestRepo(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, nil, "init")
	runGit(t, dir, nil, "config", "user.email", "test@test.com")
	runGit(t, dir, nil, "config", "user.name", "Test User")
	runGit(t, dir, nil, "config", "commit.gpgsign", "false")
}

func commitFile(t *testing.T, dir, name, content string, unix int64) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	date := strconv.FormatInt(unix, 10) + " +0000"
	runGit(t, dir, nil, "add", name)
	runGit(t, dir, []string{"GIT_AUTHOR_DATE=" + date, "GIT_COMMITTER_DATE=" + date}, "commit", "-m", "update "+name)
	return path
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
