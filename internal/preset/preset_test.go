package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/stackforge/internal/model"
)

// TestParse verifies YAML decoding, name normalization, and validation.
func TestParse(t *testing.T) {
	t.Run("valid preset", func(t *testing.T) {
		p, err := Parse([]byte(`name: Blog
description: Simple blog
frontend: vue
backend: python
database: sqlite
deployment: docker
extras:
  docs: true
`))
		require.NoError(t, err)
		assert.Equal(t, "blog", p.Name) // name is lowercased
		assert.Equal(t, "vue", p.Frontend)
		assert.Equal(t, "python", p.Backend)
		assert.Equal(t, "sqlite", p.Database)
		assert.Equal(t, "docker", p.Deployment)
		assert.True(t, p.Extras.Docs)
		assert.False(t, p.Extras.CI)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := Parse([]byte("  \n"))
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Parse([]byte("frontend: react\n"))
		assert.Error(t, err)
	})

	t.Run("invalid stack value", func(t *testing.T) {
		_, err := Parse([]byte("name: bad\nfrontend: svelte\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "svelte")
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := Parse([]byte("{invalid: [yaml"))
		assert.Error(t, err)
	})
}

// TestBuiltins verifies every builtin document parses, validates, and
// carries the builtin marker. This is the guard that keeps the panic in
// Builtins unreachable.
func TestBuiltins(t *testing.T) {
	builtins := Builtins()
	require.Len(t, builtins, 5)

	names := make([]string, 0, len(builtins))
	for _, p := range builtins {
		assert.True(t, p.Builtin)
		assert.NotEmpty(t, p.Description)
		assert.NoError(t, p.Validate())
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"saas", "ecommerce", "api", "dashboard", "mobile"}, names)
}

// TestPreset_Apply verifies preset values override flag-level choices and
// that unset preset fields leave the spec alone.
func TestPreset_Apply(t *testing.T) {
	p := Preset{
		Name:       "api",
		Backend:    "node",
		Database:   "postgresql",
		Deployment: "docker",
		Extras:     Extras{Docs: true},
	}

	spec := &model.ProjectSpec{
		Name:     "svc",
		Frontend: model.FrontendVue, // preset has no frontend; must survive
		Backend:  model.BackendJava, // preset overrides this
	}
	p.Apply(spec)

	assert.Equal(t, "api", spec.Template)
	assert.Equal(t, model.FrontendVue, spec.Frontend)
	assert.Equal(t, model.BackendNode, spec.Backend)
	assert.Equal(t, model.DatabasePostgres, spec.Database)
	assert.Equal(t, model.DeployDocker, spec.Deployment)
	assert.True(t, spec.WithDocs)
}

// TestLoadDir covers directory scanning: missing dirs, non-YAML files,
// and sort order.
func TestLoadDir(t *testing.T) {
	t.Run("missing directory is empty", func(t *testing.T) {
		presets, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, presets)
	})

	t.Run("empty dir string is empty", func(t *testing.T) {
		presets, err := LoadDir("  ")
		require.NoError(t, err)
		assert.Empty(t, presets)
	})

	t.Run("loads yaml files sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "zeta.yaml", "name: zeta\nbackend: java\n")
		writeFile(t, dir, "alpha.yml", "name: alpha\nfrontend: react\n")
		writeFile(t, dir, "notes.txt", "not a preset")

		presets, err := LoadDir(dir)
		require.NoError(t, err)
		require.Len(t, presets, 2)
		assert.Equal(t, "alpha", presets[0].Name)
		assert.Equal(t, "zeta", presets[1].Name)
	})

	t.Run("invalid preset fails the whole load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.yaml", "name: bad\nbackend: cobol\n")

		_, err := LoadDir(dir)
		assert.Error(t, err)
	})
}

// TestNewCatalog verifies builtin/user merging and name collision handling.
func TestNewCatalog(t *testing.T) {
	t.Run("builtins only", func(t *testing.T) {
		c, err := NewCatalog("")
		require.NoError(t, err)
		assert.Len(t, c.All(), 5)

		p, err := c.Get("SaaS") // lookup is case insensitive
		require.NoError(t, err)
		assert.Equal(t, "saas", p.Name)
	})

	t.Run("user preset added", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "blog.yaml", "name: blog\nfrontend: vue\nbackend: python\n")

		c, err := NewCatalog(dir)
		require.NoError(t, err)
		assert.Len(t, c.All(), 6)
		assert.Contains(t, c.Names(), "blog")
	})

	t.Run("collision with builtin rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "saas.yaml", "name: saas\nfrontend: vue\n")

		_, err := NewCatalog(dir)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "builtin")
	})

	t.Run("unknown template lists valid names", func(t *testing.T) {
		c, err := NewCatalog("")
		require.NoError(t, err)

		_, err = c.Get("microservice")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "saas")
	})
}

// writeFile is a test helper that writes content under dir.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
