package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/stackforge/internal/model"
)

// TestLoad_MissingFile verifies that a directory without a config file
// yields zero-valued defaults rather than an error.
func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Empty(t, cfg.Defaults.Frontend)
}

// TestLoadFile_JSONC verifies that comments and trailing commas are
// stripped before parsing, matching what users actually write.
func TestLoadFile_JSONC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `{
  // my usual stack
  "defaults": {
    "frontend": "react",
    "backend": "node",
    "database": "postgresql", // trailing comma next line
  },
  "author": {
    "name": "Dana Smith",
    "email": "dana@example.com"
  },
  "license": "MIT"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "react", cfg.Defaults.Frontend)
	assert.Equal(t, "node", cfg.Defaults.Backend)
	assert.Equal(t, "postgresql", cfg.Defaults.Database)
	assert.Equal(t, "Dana Smith", cfg.Author.Name)
	assert.Equal(t, "MIT", cfg.License)
}

// TestLoadFile_Invalid covers parse and validation failures, all of which
// must surface as CLIError with the config exit code.
func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"defaults": `},
		{"unknown frontend", `{"defaults": {"frontend": "svelte"}}`},
		{"unknown deployment", `{"defaults": {"deployment": "heroku"}}`},
		{"bad author email", `{"author": {"email": "not-an-email"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadFile(path)
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitConfigError, cliErr.Code)
		})
	}
}

// TestLoad_LocalBeforeGlobal verifies the per-project file wins over the
// per-user file.
func TestLoad_LocalBeforeGlobal(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	globalDir := filepath.Join(xdg, "stackforge")
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.jsonc"),
		[]byte(`{"defaults": {"backend": "java"}}`), 0o644))

	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, FileName),
		[]byte(`{"defaults": {"backend": "python"}}`), 0o644))

	cfg, err := Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, "python", cfg.Defaults.Backend)

	// Remove the local file; the global one should now be found.
	require.NoError(t, os.Remove(filepath.Join(cwd, FileName)))
	cfg, err = Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.Defaults.Backend)
}

// TestResolvePresetDir verifies the override and the XDG default.
func TestResolvePresetDir(t *testing.T) {
	t.Run("explicit override", func(t *testing.T) {
		cfg := &Config{PresetDir: "/opt/presets"}
		assert.Equal(t, "/opt/presets", cfg.ResolvePresetDir())
	})

	t.Run("xdg default", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		cfg := &Config{}
		assert.Equal(t, filepath.Join(xdg, "stackforge", "presets"), cfg.ResolvePresetDir())
	})
}
