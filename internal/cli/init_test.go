package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/stackforge/internal/config"
	"github.com/tessera-labs/stackforge/internal/model"
	"github.com/tessera-labs/stackforge/internal/preset"
)

// emptyCatalog returns a catalog backed by an empty preset directory,
// so only the built-in templates are available.
func emptyCatalog(t *testing.T) *preset.Catalog {
	t.Helper()
	catalog, err := preset.NewCatalog(filepath.Join(t.TempDir(), "presets"))
	require.NoError(t, err)
	return catalog
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name string
		v, t float64
		want float64
	}{
		{name: "zero total yields zero", v: 5, t: 0, want: 0},
		{name: "one third rounds to two decimals", v: 1, t: 3, want: 33.33},
		{name: "two thirds rounds up", v: 2, t: 3, want: 66.67},
		{name: "half", v: 50, t: 100, want: 50},
		{name: "complete", v: 7, t: 7, want: 100},
		{name: "zero of many", v: 0, t: 12, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentage(tt.v, tt.t), 0.0001)
		})
	}
}

func TestResolveFromFlags(t *testing.T) {
	t.Run("full stack from flags", func(t *testing.T) {
		flags := &initFlags{
			name:       "shop",
			frontend:   "react",
			backend:    "node",
			database:   "postgresql",
			deployment: "docker",
		}
		spec, err := resolveFromFlags(flags, &config.Config{}, emptyCatalog(t))
		require.NoError(t, err)
		assert.Equal(t, "shop", spec.Name)
		assert.Equal(t, model.FrontendReact, spec.Frontend)
		assert.Equal(t, model.BackendNode, spec.Backend)
		assert.Equal(t, model.DatabasePostgres, spec.Database)
		assert.Equal(t, model.DeployDocker, spec.Deployment)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		_, err := resolveFromFlags(&initFlags{backend: "node"}, &config.Config{}, emptyCatalog(t))
		require.Error(t, err)
		cliErr, ok := err.(*model.CLIError)
		require.True(t, ok)
		assert.Equal(t, model.ExitGeneralError, cliErr.Code)
	})

	t.Run("invalid frontend value", func(t *testing.T) {
		flags := &initFlags{name: "shop", frontend: "svelte"}
		_, err := resolveFromFlags(flags, &config.Config{}, emptyCatalog(t))
		require.Error(t, err)
		cliErr, ok := err.(*model.CLIError)
		require.True(t, ok)
		assert.Equal(t, model.ExitGeneralError, cliErr.Code)
	})

	t.Run("empty stack is rejected", func(t *testing.T) {
		_, err := resolveFromFlags(&initFlags{name: "shop"}, &config.Config{}, emptyCatalog(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to generate")
	})

	t.Run("config defaults fill unset flags", func(t *testing.T) {
		cfg := &config.Config{
			Defaults: config.StackDefaults{Backend: "python", Database: "sqlite"},
		}
		spec, err := resolveFromFlags(&initFlags{name: "shop"}, cfg, emptyCatalog(t))
		require.NoError(t, err)
		assert.Equal(t, model.BackendPython, spec.Backend)
		assert.Equal(t, model.DatabaseSQLite, spec.Database)
	})

	t.Run("flags win over config defaults", func(t *testing.T) {
		cfg := &config.Config{
			Defaults: config.StackDefaults{Backend: "python"},
		}
		spec, err := resolveFromFlags(&initFlags{name: "shop", backend: "node"}, cfg, emptyCatalog(t))
		require.NoError(t, err)
		assert.Equal(t, model.BackendNode, spec.Backend)
	})

	t.Run("template overrides stack flags", func(t *testing.T) {
		flags := &initFlags{
			name:     "shop",
			frontend: "vue",
			backend:  "java",
			template: "ecommerce",
		}
		spec, err := resolveFromFlags(flags, &config.Config{}, emptyCatalog(t))
		require.NoError(t, err)
		assert.Equal(t, "ecommerce", spec.Template)
		assert.Equal(t, model.FrontendReact, spec.Frontend)
		assert.Equal(t, model.BackendNode, spec.Backend)
	})

	t.Run("unknown template is rejected", func(t *testing.T) {
		flags := &initFlags{name: "shop", template: "blog"}
		_, err := resolveFromFlags(flags, &config.Config{}, emptyCatalog(t))
		require.Error(t, err)
		cliErr, ok := err.(*model.CLIError)
		require.True(t, ok)
		assert.Equal(t, model.ExitGeneralError, cliErr.Code)
	})
}

func TestRunInitCreatesProject(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	output := t.TempDir()
	flags := &initFlags{
		name:     "shop",
		frontend: "react",
		backend:  "node",
		database: "sqlite",
		output:   output,
		noGit:    true,
	}
	require.NoError(t, runInit(t.Context(), flags))

	root := filepath.Join(output, "shop")
	for _, rel := range []string{
		"README.md",
		"stackforge.json",
		".gitignore",
		".env",
		"frontend/package.json",
		"backend/package.json",
	} {
		_, err := os.Stat(filepath.Join(root, rel))
		assert.NoError(t, err, rel)
	}
}

func TestRunInitRejectsExistingTarget(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	output := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(output, "shop", "src"), 0o755))

	flags := &initFlags{
		name:    "shop",
		backend: "node",
		output:  output,
		noGit:   true,
	}
	err := runInit(t.Context(), flags)
	require.Error(t, err)
	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

func TestPick(t *testing.T) {
	assert.Equal(t, "react", pick("react", "vue"))
	assert.Equal(t, "vue", pick("", "vue"))
	assert.Equal(t, "", pick("", ""))
}
