// Package cli — init.go implements the "stackforge init" command.
//
// The init command is the primary user-facing operation. It resolves a
// project spec from flags, config defaults, a template preset, or the
// interactive wizard, then generates the project tree.
//
// Orchestration steps:
//  1. Load config defaults (.stackforge.jsonc) and the preset catalog
//  2. Resolve the project spec (flags / preset / interactive wizard)
//  3. Validate the name and stack selections
//  4. Build the scaffold plan (pure, no filesystem access)
//  5. Apply the plan atomically (rollback on partial failure)
//  6. Initialize a Git repository with an initial commit (unless --no-git)
//  7. Warn if Docker is unreachable but the stack targets containers
//  8. Output results (text or JSON)
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessera-labs/stackforge/internal/config"
	"github.com/tessera-labs/stackforge/internal/dockercheck"
	"github.com/tessera-labs/stackforge/internal/gitrepo"
	"github.com/tessera-labs/stackforge/internal/ident"
	"github.com/tessera-labs/stackforge/internal/model"
	"github.com/tessera-labs/stackforge/internal/preset"
	"github.com/tessera-labs/stackforge/internal/scaffold"
	"github.com/tessera-labs/stackforge/internal/tui"
)

// initFlags holds the flag values for the init command.
// These are bound to cobra flags in NewInitCommand.
type initFlags struct {
	name        string // --name: project name
	frontend    string // --frontend: frontend framework
	backend     string // --backend: backend runtime
	database    string // --database: database engine
	deployment  string // --deployment: deployment target
	template    string // --template: preset bundle, overrides stack flags
	interactive bool   // --interactive: run the wizard instead of flags
	output      string // --output: parent directory for the project
	docs        bool   // --docs: include the documentation skeleton
	ci          bool   // --ci: include a CI workflow stub
	noGit       bool   // --no-git: skip repository initialization
	force       bool   // --force: allow an existing empty target directory
}

// NewInitCommand creates the "init" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a new full-stack project",
		Long: `Generate a new project directory with frontend and backend starters,
database environment files, deployment manifests, and optional docs.

Stack selections come from flags, from defaults in .stackforge.jsonc,
or from a template preset. A template pins the whole stack and
overrides any individual stack flags.

Examples:
  stackforge init --name shop --frontend react --backend node --database postgresql
  stackforge init -n shop -t ecommerce
  stackforge init --interactive
  stackforge init -n api-only -b python --deployment docker --no-git`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "Project name (required unless --interactive)")
	cmd.Flags().StringVarP(&flags.frontend, "frontend", "f", "", "Frontend framework (react, vue, angular, nextjs)")
	cmd.Flags().StringVarP(&flags.backend, "backend", "b", "", "Backend runtime (node, python, dotnet, java)")
	cmd.Flags().StringVarP(&flags.database, "database", "d", "", "Database engine (postgresql, mysql, mongodb, sqlite)")
	cmd.Flags().StringVar(&flags.deployment, "deployment", "", "Deployment target (docker, kubernetes, serverless)")
	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Template preset (saas, ecommerce, api, dashboard, mobile)")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Choose stacks in an interactive wizard")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Parent directory for the project (default: current directory)")
	cmd.Flags().BoolVar(&flags.docs, "docs", false, "Include the documentation skeleton")
	cmd.Flags().BoolVar(&flags.ci, "ci", false, "Include a CI workflow stub")
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, "Skip Git repository initialization")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Allow generating into an existing empty directory")

	return cmd
}

// runInit is the main orchestration function for the init command.
func runInit(ctx context.Context, flags *initFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
	}

	// Step 1: Config defaults and the preset catalog.
	cfg, err := config.Load(cwd)
	if err != nil {
		return err // Load already returns CLIError with ExitConfigError
	}
	if cfg.Path != "" {
		VerboseLog("Loaded config: %s", cfg.Path)
	}

	catalog, err := preset.NewCatalog(cfg.ResolvePresetDir())
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to load preset catalog", err)
	}

	// Step 2: Resolve the spec.
	var spec model.ProjectSpec
	if flags.interactive {
		spec, err = resolveInteractive(flags, cfg, catalog)
	} else {
		spec, err = resolveFromFlags(flags, cfg, catalog)
	}
	if err != nil {
		return err
	}

	spec.Author = cfg.Author
	spec.License = cfg.License
	spec.InitGit = !flags.noGit
	spec.ID = ident.NewID()
	spec.CreatedAt = time.Now().UTC()

	// Step 3: Target directory. --output names the parent; the project
	// directory itself is always named after the project.
	parent := flags.output
	if parent == "" {
		parent = cwd
	}
	spec.TargetPath, err = filepath.Abs(filepath.Join(parent, spec.Name))
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve target path", err)
	}
	VerboseLog("Target directory: %s", spec.TargetPath)

	// Step 4: Build the plan.
	plan, err := scaffold.BuildPlan(&spec)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to plan project", err)
	}
	VerboseLog("Planned %d files for %q", plan.FileCount(), spec.Name)

	// Step 5: Write the tree. Progress only shows in verbose mode; the
	// plan is small enough that a progress bar would be noise.
	progress := func(done, total int, path string) {
		VerboseLog("step %d/%d (%.2f%%) %s", done, total, Percentage(float64(done), float64(total)), path)
	}
	if err := scaffold.Apply(plan, flags.force, progress); err != nil {
		if errors.Is(err, scaffold.ErrTargetExists) {
			return model.WrapCLIError(model.ExitGeneralError, "cannot create project directory", err)
		}
		return model.WrapCLIError(model.ExitWriteError, "failed to write project files", err)
	}

	// Step 6: Git repository.
	gitDone := false
	if spec.InitGit {
		gitDone, err = initRepository(spec.TargetPath)
		if err != nil {
			return err
		}
	} else {
		VerboseLog("Skipping Git initialization (--no-git)")
	}

	// Step 7: Docker reachability. A container-targeting stack with no
	// running daemon is worth a warning, but the scaffold itself is fine.
	var dockerWarning string
	if spec.Deployment.UsesContainers() {
		if pingErr := pingDocker(ctx); pingErr != nil {
			dockerWarning = "Docker daemon is not reachable; start it before running the generated compose setup"
			fmt.Fprintf(os.Stderr, "Warning: %s\n", dockerWarning)
		}
	}

	// Step 8: Output results.
	printInitResult(&spec, plan, gitDone, dockerWarning)
	return nil
}

// resolveFromFlags builds the project spec from flags layered over the
// config defaults, with a template preset overriding stack flags.
func resolveFromFlags(flags *initFlags, cfg *config.Config, catalog *preset.Catalog) (model.ProjectSpec, error) {
	var spec model.ProjectSpec

	if flags.name == "" {
		return spec, model.NewCLIError(model.ExitGeneralError, "project name is required (--name or --interactive)")
	}
	if err := model.ValidateName(flags.name); err != nil {
		return spec, model.WrapCLIError(model.ExitGeneralError, "invalid project name", err)
	}
	spec.Name = flags.name

	// Flags win over config defaults; unset means the config value.
	frontend := pick(flags.frontend, cfg.Defaults.Frontend)
	backend := pick(flags.backend, cfg.Defaults.Backend)
	database := pick(flags.database, cfg.Defaults.Database)
	deployment := pick(flags.deployment, cfg.Defaults.Deployment)

	var err error
	if spec.Frontend, err = model.ParseFrontend(frontend); err != nil {
		return spec, model.WrapCLIError(model.ExitGeneralError, "invalid --frontend value", err)
	}
	if spec.Backend, err = model.ParseBackend(backend); err != nil {
		return spec, model.WrapCLIError(model.ExitGeneralError, "invalid --backend value", err)
	}
	if spec.Database, err = model.ParseDatabase(database); err != nil {
		return spec, model.WrapCLIError(model.ExitGeneralError, "invalid --database value", err)
	}
	if spec.Deployment, err = model.ParseDeployment(deployment); err != nil {
		return spec, model.WrapCLIError(model.ExitGeneralError, "invalid --deployment value", err)
	}

	spec.WithDocs = flags.docs
	spec.WithCI = flags.ci

	// A template pins the whole stack and overrides the flags above.
	if flags.template != "" {
		p, err := catalog.Get(flags.template)
		if err != nil {
			return spec, model.WrapCLIError(model.ExitGeneralError, "invalid --template value", err)
		}
		p.Apply(&spec)
		VerboseLog("Applied template %q", p.Name)
	}

	if !spec.HasStack() {
		return spec, model.NewCLIError(model.ExitGeneralError,
			"nothing to generate: select at least a frontend or a backend")
	}
	return spec, nil
}

// resolveInteractive runs the wizard. Flags still seed the initial
// values, so `init -i -n shop` starts with the name pre-filled.
func resolveInteractive(flags *initFlags, cfg *config.Config, catalog *preset.Catalog) (model.ProjectSpec, error) {
	defaults := model.ProjectSpec{Name: flags.name}
	defaults.Frontend = model.Frontend(pick(flags.frontend, cfg.Defaults.Frontend))
	defaults.Backend = model.Backend(pick(flags.backend, cfg.Defaults.Backend))
	defaults.Database = model.Database(pick(flags.database, cfg.Defaults.Database))
	defaults.Deployment = model.Deployment(pick(flags.deployment, cfg.Defaults.Deployment))
	defaults.WithDocs = flags.docs
	defaults.WithCI = flags.ci

	spec, err := tui.Run(defaults, catalog.All())
	if err != nil {
		return model.ProjectSpec{}, err
	}
	if !spec.HasStack() {
		return model.ProjectSpec{}, model.NewCLIError(model.ExitGeneralError,
			"nothing to generate: select at least a frontend or a backend")
	}
	return spec, nil
}

// pick returns the flag value when set, the config default otherwise.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

// initRepository initializes a Git repository with an initial commit.
// Missing git is a warning, not a failure: the scaffold is complete
// either way.
func initRepository(path string) (bool, error) {
	runner := gitrepo.NewRunner()
	if !runner.IsInstalled() {
		fmt.Fprintln(os.Stderr, "Warning: git is not installed; skipping repository initialization")
		return false, nil
	}

	VerboseLog("Initializing Git repository...")
	if err := runner.Init(path); err != nil {
		return false, err
	}
	if err := runner.CommitAll(path, "chore: initial scaffold"); err != nil {
		return false, err
	}
	VerboseLog("Created initial commit")
	return true, nil
}

// pingDocker checks whether a Docker daemon is reachable.
func pingDocker(ctx context.Context) error {
	cli, err := dockercheck.NewClient()
	if err != nil {
		return err
	}
	defer func() { _ = cli.Close() }()
	return cli.Ping(ctx)
}

// Percentage returns v as a share of t, in percent, rounded to two
// decimal places. A zero total yields 0 rather than NaN, so callers can
// pass empty plans without guarding.
func Percentage(v, t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Round(v/t*10000) / 100
}

// printInitResult outputs the init command results in text or JSON format.
func printInitResult(spec *model.ProjectSpec, plan *scaffold.Plan, gitDone bool, dockerWarning string) {
	if IsJSONOutput() {
		printInitResultJSON(spec, plan, gitDone, dockerWarning)
	} else {
		printInitResultText(spec, plan, gitDone)
	}
}

// printInitResultJSON outputs the init result as structured JSON.
func printInitResultJSON(spec *model.ProjectSpec, plan *scaffold.Plan, gitDone bool, dockerWarning string) {
	type resultJSON struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Path       string   `json:"path"`
		Template   string   `json:"template,omitempty"`
		Frontend   string   `json:"frontend,omitempty"`
		Backend    string   `json:"backend,omitempty"`
		Database   string   `json:"database,omitempty"`
		Deployment string   `json:"deployment,omitempty"`
		Files      int      `json:"files"`
		Git        bool     `json:"git"`
		Warnings   []string `json:"warnings,omitempty"`
	}

	result := resultJSON{
		ID:         spec.ID,
		Name:       spec.Name,
		Path:       spec.TargetPath,
		Template:   spec.Template,
		Frontend:   spec.Frontend.String(),
		Backend:    spec.Backend.String(),
		Database:   spec.Database.String(),
		Deployment: spec.Deployment.String(),
		Files:      plan.FileCount(),
		Git:        gitDone,
	}
	if dockerWarning != "" {
		result.Warnings = append(result.Warnings, dockerWarning)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printInitResultText outputs the init result as human-readable text.
func printInitResultText(spec *model.ProjectSpec, plan *scaffold.Plan, gitDone bool) {
	fmt.Printf("Created project %q (%d files)\n", spec.Name, plan.FileCount())
	fmt.Printf("  Path:       %s\n", spec.TargetPath)
	if spec.Template != "" {
		fmt.Printf("  Template:   %s\n", spec.Template)
	}
	printStackLine("Frontend", spec.Frontend.String())
	printStackLine("Backend", spec.Backend.String())
	printStackLine("Database", spec.Database.String())
	printStackLine("Deployment", spec.Deployment.String())
	if gitDone {
		fmt.Println("  Git:        initialized with initial commit")
	}

	fmt.Println()
	fmt.Printf("Next steps:\n  cd %s\n", spec.Name)
	if spec.Deployment.UsesContainers() {
		fmt.Println("  docker compose up")
	}
}

// printStackLine prints one stack dimension, skipping unset ones.
func printStackLine(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %-11s %s\n", label+":", value)
}
