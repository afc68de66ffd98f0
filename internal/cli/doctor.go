// Package cli — doctor.go implements the "stackforge doctor" command.
//
// The doctor command checks the local environment for everything init
// relies on: a git binary for repository initialization, a reachable
// Docker daemon for container-targeting stacks, a parseable config
// file, and a readable user preset directory.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/stackforge/internal/config"
	"github.com/tessera-labs/stackforge/internal/dockercheck"
	"github.com/tessera-labs/stackforge/internal/gitrepo"
	"github.com/tessera-labs/stackforge/internal/model"
	"github.com/tessera-labs/stackforge/internal/preset"
)

// Check statuses used in the doctor report.
const (
	statusOK   = "ok"
	statusWarn = "warn"
	statusFail = "fail"
)

// doctorCheck is one line of the doctor report.
type doctorCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// doctorReport is the full report plus the error to return when a
// hard check failed.
type doctorReport struct {
	Checks []doctorCheck `json:"checks"`

	failure *model.CLIError
}

// add appends a check result to the report.
func (r *doctorReport) add(name, status, detail string) {
	r.Checks = append(r.Checks, doctorCheck{Name: name, Status: status, Detail: detail})
}

// fail appends a failed check and records the first failure's exit code.
func (r *doctorReport) fail(name, detail string, code model.ExitCode) {
	r.add(name, statusFail, detail)
	if r.failure == nil {
		r.failure = model.NewCLIError(code, fmt.Sprintf("%s check failed: %s", name, detail))
	}
}

// NewDoctorCommand creates the "doctor" cobra command.
func NewDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the local environment for scaffolding prerequisites",
		Long: `Check that the tools stackforge relies on are available:

  - git binary (repository initialization)
  - Docker daemon (container-targeting deployment stacks)
  - .stackforge.jsonc config file (when present)
  - user preset directory (when configured)

Examples:
  stackforge doctor
  stackforge doctor --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context())
		},
	}

	return cmd
}

// runDoctor executes all environment checks and prints the report.
// Returns the first hard failure so the process exits with its code;
// warnings alone still exit 0.
func runDoctor(ctx context.Context) error {
	report := &doctorReport{}

	checkGit(report)
	checkDocker(ctx, report)
	checkConfig(report)

	printDoctorResult(report)
	if report.failure != nil {
		return report.failure
	}
	return nil
}

// checkGit verifies the git binary is on PATH. Missing git is a
// warning: init degrades to skipping repository initialization.
func checkGit(report *doctorReport) {
	runner := gitrepo.NewRunner()
	if !runner.IsInstalled() {
		report.add("git", statusWarn, "git not found on PATH; init will skip repository setup")
		return
	}

	version, err := runner.Version()
	if err != nil {
		report.add("git", statusWarn, fmt.Sprintf("git found but version query failed: %v", err))
		return
	}
	report.add("git", statusOK, version)
}

// checkDocker verifies a Docker daemon is reachable. An unreachable
// daemon is a hard failure here, unlike in init, because the user is
// explicitly asking whether their environment is ready.
func checkDocker(ctx context.Context, report *doctorReport) {
	cli, err := dockercheck.NewClient()
	if err != nil {
		report.fail("docker", err.Error(), model.ExitDockerNotRunning)
		return
	}
	defer func() { _ = cli.Close() }()

	if err := cli.Ping(ctx); err != nil {
		report.fail("docker", "daemon did not respond to ping", model.ExitDockerNotRunning)
		return
	}

	version, err := cli.ServerVersion(ctx)
	if err != nil {
		report.add("docker", statusOK, "daemon reachable")
		return
	}
	report.add("docker", statusOK, fmt.Sprintf("daemon reachable (server %s)", version))
}

// checkConfig parses the resolved config file and scans the preset
// directory. A present-but-broken config is a hard failure: init would
// refuse to run with it.
func checkConfig(report *doctorReport) {
	cwd, err := os.Getwd()
	if err != nil {
		report.fail("config", err.Error(), model.ExitGeneralError)
		return
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		report.fail("config", err.Error(), model.ExitConfigError)
		return
	}
	if cfg.Path == "" {
		report.add("config", statusOK, "no config file (defaults in effect)")
	} else {
		report.add("config", statusOK, cfg.Path)
	}

	catalog, err := preset.NewCatalog(cfg.ResolvePresetDir())
	if err != nil {
		report.fail("presets", err.Error(), model.ExitConfigError)
		return
	}
	userCount := 0
	for _, p := range catalog.All() {
		if !p.Builtin {
			userCount++
		}
	}
	report.add("presets", statusOK,
		fmt.Sprintf("%d templates available (%d user-defined)", len(catalog.All()), userCount))
}

// printDoctorResult outputs the report in text or JSON format.
func printDoctorResult(report *doctorReport) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(data))
		return
	}

	for _, c := range report.Checks {
		marker := "✓"
		switch c.Status {
		case statusWarn:
			marker = "!"
		case statusFail:
			marker = "✗"
		}
		if c.Detail != "" {
			fmt.Printf("%s %-8s %s\n", marker, c.Name, c.Detail)
		} else {
			fmt.Printf("%s %s\n", marker, c.Name)
		}
	}
}
