// Package gitrepo wraps the Git CLI operations the scaffolder needs:
// initializing a repository in a freshly generated project and creating
// the initial commit.
//
// We shell out to `git` rather than using a Go Git library because the
// generated repository must be byte-for-byte what the user's own git
// would produce (hooks, templates, and config included), and because
// git is already a hard prerequisite for the projects being scaffolded.
package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tessera-labs/stackforge/internal/model"
)

// Runner executes git operations in a repository directory. It is
// stateless; all methods receive the repository path as a parameter.
type Runner struct{}

// NewRunner creates a new git Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// IsInstalled reports whether a git binary is available on PATH.
func (r *Runner) IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Version returns the installed git version string (e.g. "2.45.2"),
// with the "git version " prefix stripped.
func (r *Runner) Version() (string, error) {
	out, err := runGit("", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimPrefix(out, "git version ")), nil
}

// Init initializes a new repository at path with "main" as the initial
// branch name.
func (r *Runner) Init(path string) error {
	_, err := runGit(path, "init", "--initial-branch", "main")
	return err
}

// CommitAll stages everything in the repository and creates a commit
// with the given message. Author identity falls back to a scaffold
// identity when the user has no git config, so the initial commit never
// fails on a fresh machine.
func (r *Runner) CommitAll(path, message string) error {
	if _, err := runGit(path, "add", "-A"); err != nil {
		return err
	}

	args := []string{
		"-c", "user.name=stackforge",
		"-c", "user.email=stackforge@localhost",
		"commit", "-m", message,
	}
	_, err := runGit(path, args...)
	return err
}

// runGit executes a git command in the given directory and returns its
// combined output. Errors are wrapped in model.CLIError with
// ExitGitError and include git's own stderr, which is usually the only
// useful diagnostic.
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			detail = err.Error()
		}
		return "", model.WrapCLIError(
			model.ExitGitError,
			fmt.Sprintf("git %s failed", strings.Join(args, " ")),
			fmt.Errorf("%s", detail),
		)
	}
	return string(out), nil
}
