package scaffold

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/stackforge/internal/model"
)

// fullSpec returns a resolved spec covering every generator.
func fullSpec() *model.ProjectSpec {
	return &model.ProjectSpec{
		Name:       "shop",
		TargetPath: "/tmp/shop",
		Frontend:   model.FrontendReact,
		Backend:    model.BackendNode,
		Database:   model.DatabasePostgres,
		Deployment: model.DeployDocker,
		ID:         "id_1700000000000_0000abcdef",
		CreatedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func planPaths(t *testing.T, plan *Plan) []string {
	t.Helper()
	paths := make([]string, 0, len(plan.Files))
	for _, f := range plan.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

func TestBuildPlanFullStack(t *testing.T) {
	plan, err := BuildPlan(fullSpec())
	require.NoError(t, err)

	paths := planPaths(t, plan)
	for _, want := range []string{
		"README.md",
		"stackforge.json",
		".editorconfig",
		".gitignore",
		".env",
		".env.example",
		"frontend/package.json",
		"frontend/src/App.jsx",
		"backend/package.json",
		"backend/src/server.js",
		"backend/Dockerfile",
		"frontend/Dockerfile",
		"docker-compose.yml",
	} {
		assert.Contains(t, paths, want)
	}

	// No docs skeleton unless asked for.
	assert.NotContains(t, paths, "docs/README.md")
}

func TestBuildPlanRejectsEmptyStack(t *testing.T) {
	spec := &model.ProjectSpec{
		Name:       "shop",
		TargetPath: "/tmp/shop",
		Database:   model.DatabaseSQLite,
	}
	_, err := BuildPlan(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to generate")
}

func TestBuildPlanBackendOnly(t *testing.T) {
	spec := &model.ProjectSpec{
		Name:       "svc",
		TargetPath: "/tmp/svc",
		Backend:    model.BackendPython,
	}
	plan, err := BuildPlan(spec)
	require.NoError(t, err)

	paths := planPaths(t, plan)
	assert.Contains(t, paths, "backend/app/main.py")
	assert.NotContains(t, paths, ".env")
	for _, p := range paths {
		assert.NotContains(t, p, "frontend/")
	}
}

func TestBuildPlanWithDocs(t *testing.T) {
	spec := fullSpec()
	spec.WithDocs = true

	plan, err := BuildPlan(spec)
	require.NoError(t, err)

	paths := planPaths(t, plan)
	assert.Contains(t, paths, "docs/README.md")
	assert.Contains(t, paths, "docs/adr/0001-record-architecture-decisions.md")
}

func TestBuildPlanWithCI(t *testing.T) {
	spec := fullSpec()
	spec.WithCI = true

	plan, err := BuildPlan(spec)
	require.NoError(t, err)
	assert.Contains(t, planPaths(t, plan), ".github/workflows/ci.yml")
}

func TestBuildPlanDeterministic(t *testing.T) {
	a, err := BuildPlan(fullSpec())
	require.NoError(t, err)
	b, err := BuildPlan(fullSpec())
	require.NoError(t, err)

	require.Equal(t, a.FileCount(), b.FileCount())
	for i := range a.Files {
		assert.Equal(t, a.Files[i].Path, b.Files[i].Path)
		assert.Equal(t, string(a.Files[i].Content), string(b.Files[i].Content))
	}
}

func TestBuildPlanEnvFileModes(t *testing.T) {
	plan, err := BuildPlan(fullSpec())
	require.NoError(t, err)

	for _, f := range plan.Files {
		switch f.Path {
		case ".env":
			// Credentials never land world-readable.
			assert.EqualValues(t, 0o600, f.Mode)
		default:
			assert.EqualValues(t, 0o644, f.Mode, f.Path)
		}
	}
}

func TestBuildPlanDirsCoverFileParents(t *testing.T) {
	plan, err := BuildPlan(fullSpec())
	require.NoError(t, err)

	dirs := make(map[string]bool, len(plan.Dirs))
	for _, d := range plan.Dirs {
		dirs[d] = true
	}
	assert.True(t, dirs["frontend/src"])
	assert.True(t, dirs["backend/src"])

	// Parents sort before children.
	for i := 1; i < len(plan.Dirs); i++ {
		assert.Less(t, plan.Dirs[i-1], plan.Dirs[i])
	}
}

func TestBuildPlanRendersProjectName(t *testing.T) {
	plan, err := BuildPlan(fullSpec())
	require.NoError(t, err)

	for _, f := range plan.Files {
		if f.Path == "README.md" {
			assert.Contains(t, string(f.Content), "# shop")
		}
		if f.Path == "stackforge.json" {
			assert.Contains(t, string(f.Content), `"id_1700000000000_0000abcdef"`)
		}
	}
}
