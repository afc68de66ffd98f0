// Package scaffold implements the project generation engine.
//
// Generation is split into two phases: planning and writing. BuildPlan
// computes the complete set of directories and rendered files for a
// ProjectSpec without touching the filesystem, which keeps the template
// logic pure and testable. Apply then materializes a plan on disk.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tessera-labs/stackforge/internal/deploy"
	"github.com/tessera-labs/stackforge/internal/envfile"
	"github.com/tessera-labs/stackforge/internal/model"
)

// File is a single file to be written, with a path relative to the
// project root.
type File struct {
	// Path is the project-relative file path, always with forward slashes.
	Path string

	// Content is the fully rendered file body.
	Content []byte

	// Mode is the file permission bits. Zero means the default 0644.
	Mode os.FileMode
}

// Plan is the complete, ordered description of a scaffold: every
// directory to create and every file to write. Plans are deterministic
// for a given spec, so two runs with the same inputs produce identical
// trees.
type Plan struct {
	// Root is the absolute path of the project directory to create.
	Root string

	// Dirs lists project-relative directories, sorted, parents first.
	Dirs []string

	// Files lists the files to write, sorted by path.
	Files []File
}

// FileCount returns the number of files in the plan. Used for the
// progress display.
func (p *Plan) FileCount() int {
	return len(p.Files)
}

// BuildPlan computes the scaffold plan for a fully resolved spec.
// The spec must already be validated; BuildPlan only rejects specs with
// no stack at all, since those would generate an empty shell.
func BuildPlan(spec *model.ProjectSpec) (*Plan, error) {
	if !spec.HasStack() {
		return nil, fmt.Errorf("nothing to generate: select at least a frontend or a backend")
	}

	plan := &Plan{Root: spec.TargetPath}

	// Shared project files: README, manifest, editorconfig, gitignore.
	files, err := sharedFiles(spec)
	if err != nil {
		return nil, err
	}
	plan.Files = append(plan.Files, files...)

	if spec.Frontend != "" {
		files, err := frontendFiles(spec)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, files...)
	}

	if spec.Backend != "" {
		files, err := backendFiles(spec)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files, files...)
	}

	// Database selection produces .env and .env.example at the root.
	if spec.Database != "" {
		env, example, err := envfile.Render(spec.Name, spec.Database)
		if err != nil {
			return nil, err
		}
		plan.Files = append(plan.Files,
			File{Path: ".env", Content: env, Mode: 0o600},
			File{Path: ".env.example", Content: example},
		)
	}

	// Deployment manifests.
	if spec.Deployment != "" {
		manifests, err := deploy.Render(spec)
		if err != nil {
			return nil, err
		}
		for _, m := range manifests {
			plan.Files = append(plan.Files, File{Path: m.Path, Content: m.Content})
		}
	}

	// Documentation skeleton, when the preset (or flag) asks for it.
	if spec.WithDocs {
		docs, err := DocsFiles(spec.CreatedAt)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			plan.Files = append(plan.Files, File{Path: d.Path, Content: d.Content})
		}
	}

	finalize(plan)
	return plan, nil
}

// finalize sorts the file list, derives the directory list from file
// paths, and fills in default permissions. Called once at the end of
// BuildPlan so individual generators don't have to care about ordering.
func finalize(plan *Plan) {
	sort.Slice(plan.Files, func(i, j int) bool { return plan.Files[i].Path < plan.Files[j].Path })

	seen := make(map[string]bool)
	for i := range plan.Files {
		if plan.Files[i].Mode == 0 {
			plan.Files[i].Mode = 0o644
		}
		// Collect every ancestor directory of the file.
		for dir := filepath.Dir(plan.Files[i].Path); dir != "." && dir != "/"; dir = filepath.Dir(dir) {
			seen[dir] = true
		}
	}

	plan.Dirs = plan.Dirs[:0]
	for dir := range seen {
		plan.Dirs = append(plan.Dirs, dir)
	}
	// Lexicographic order guarantees parents sort before children.
	sort.Strings(plan.Dirs)
}
