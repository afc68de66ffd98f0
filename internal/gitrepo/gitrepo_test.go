package gitrepo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/stackforge/internal/model"
)

// requireGit skips tests on machines without a git binary.
func requireGit(t *testing.T) *Runner {
	t.Helper()
	r := NewRunner()
	if !r.IsInstalled() {
		t.Skip("git not installed")
	}
	return r
}

// TestVersion verifies the "git version " prefix is stripped.
func TestVersion(t *testing.T) {
	r := requireGit(t)

	v, err := r.Version()
	require.NoError(t, err)
	assert.NotEmpty(t, v)
	assert.NotContains(t, v, "git version")
}

// TestInitAndCommitAll verifies the full scaffold flow: init a repo,
// write a file, commit it, and confirm the repository is clean.
func TestInitAndCommitAll(t *testing.T) {
	r := requireGit(t)
	dir := t.TempDir()

	require.NoError(t, r.Init(dir))
	assert.DirExists(t, filepath.Join(dir, ".git"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hello\n"), 0o644))
	require.NoError(t, r.CommitAll(dir, "chore: initial scaffold"))

	// After the commit, the working tree must be clean.
	out, err := runGit(dir, "status", "--porcelain")
	require.NoError(t, err)
	assert.Empty(t, out)

	// The commit must exist with our message.
	out, err = runGit(dir, "log", "--oneline")
	require.NoError(t, err)
	assert.Contains(t, out, "initial scaffold")
}

// TestRunGit_ErrorCarriesGitExitCode verifies failures surface as
// CLIError with ExitGitError and include git's stderr.
func TestRunGit_ErrorCarriesGitExitCode(t *testing.T) {
	requireGit(t)

	_, err := runGit(t.TempDir(), "log") // not a repository
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGitError, cliErr.Code)
}
