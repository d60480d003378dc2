package cli

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/pflag"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/revision"
)

func skipWithoutGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed, skipping test")
	}
}

// resetDateFlags restores the date command flags to their defaults.
func resetDateFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		dateCmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset()
	t.Cleanup(reset)
}

// runCLI executes the root command and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetDateFlags(t)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, p := range revision.DefaultCIProviders() {
		t.Setenv(p.EnvVar, "")
	}
}

func outsideAnyRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// initDocsRepo creates a repository with docs committed at known times.
func initDocsRepo(t *testing.T) string {
	t.Helper()
	skipWithoutGit(t)
	clearCIEnv(t)

	dir := outsideAnyRepo(t)
	runGit(t, dir, nil, "init")
	runGit(t, dir, nil, "config", "user.email", "test@test.com")
	runGit(t, dir, nil, "config", "user.name", "Test User")
	runGit(t, dir, nil, "config", "commit.gpgsign", "false")

	commitDoc(t, dir, "docs/index.md", "# Home", 1600000000)
	commitDoc(t, dir, "docs/index.md", "# Home\n\nupdated", 1690000000)
	commitDoc(t, dir, "docs/drafts/wip.md", "# WIP", 1690000000)
	return dir
}

func commitDoc(t *testing.T, dir, name, content string, unix int64) {
	t.Helper()
	writeFile(t, dir, name, content)
	date := strconv.FormatInt(unix, 10) + " +0000"
	runGit(t, dir, nil, "add", name)
	runGit(t, dir, []string{"GIT_AUTHOR_DATE=" + date, "GIT_COMMITTER_DATE=" + date}, "commit", "-m", "update "+name)
}

func runGit(t *testing.T, dir string, env []string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
}
