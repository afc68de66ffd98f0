package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(root string) *Plan {
	plan := &Plan{
		Root: root,
		Files: []File{
			{Path: "README.md", Content: []byte("# demo\n")},
			{Path: "backend/src/server.js", Content: []byte("// server\n")},
			{Path: ".env", Content: []byte("PORT=3000\n"), Mode: 0o600},
		},
	}
	finalize(plan)
	return plan
}

func TestApplyWritesPlan(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	plan := testPlan(root)

	var seen []string
	progress := func(done, total int, path string) {
		assert.Equal(t, plan.FileCount(), total)
		seen = append(seen, path)
	}
	require.NoError(t, Apply(plan, false, progress))
	assert.Len(t, seen, plan.FileCount())

	data, err := os.ReadFile(filepath.Join(root, "backend/src/server.js"))
	require.NoError(t, err)
	assert.Equal(t, "// server\n", string(data))

	info, err := os.Stat(filepath.Join(root, ".env"))
	require.NoError(t, err)
	assert.EqualValues(t, 0o600, info.Mode().Perm())

	// No stray temp files left behind.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".stackforge-tmp-")
	}
}

func TestApplyRejectsExistingTarget(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	err := Apply(testPlan(root), false, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTargetExists))

	// The pre-existing directory is untouched.
	_, statErr := os.Stat(filepath.Join(root, "src"))
	assert.NoError(t, statErr)
}

func TestApplyForceRequiresEmptyDir(t *testing.T) {
	t.Run("empty directory is accepted", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "demo")
		require.NoError(t, os.MkdirAll(root, 0o755))

		require.NoError(t, Apply(testPlan(root), true, nil))
		_, err := os.Stat(filepath.Join(root, "README.md"))
		assert.NoError(t, err)
	})

	t.Run("non-empty directory is rejected", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "demo")
		require.NoError(t, os.MkdirAll(root, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "keep.txt"), []byte("x"), 0o644))

		err := Apply(testPlan(root), true, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTargetExists))

		// Rollback must not delete a directory we refused to write into.
		_, statErr := os.Stat(filepath.Join(root, "keep.txt"))
		assert.NoError(t, statErr)
	})
}

func TestApplyRejectsFileTarget(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	err := Apply(testPlan(root), false, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTargetExists))
}

func TestWriteFiles(t *testing.T) {
	files := []File{
		{Path: "docs/README.md", Content: []byte("# docs\n")},
		{Path: "docs/adr/README.md", Content: []byte("# adr\n")},
	}

	t.Run("writes into existing directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, WriteFiles(root, files, false, nil))

		data, err := os.ReadFile(filepath.Join(root, "docs/adr/README.md"))
		require.NoError(t, err)
		assert.Equal(t, "# adr\n", string(data))
	})

	t.Run("conflict aborts before writing anything", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "docs/adr"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "docs/adr/README.md"), []byte("mine\n"), 0o644))

		err := WriteFiles(root, files, false, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--force")

		// The first file in the list was not written either.
		_, statErr := os.Stat(filepath.Join(root, "docs/README.md"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("force overwrites", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "docs/adr"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "docs/adr/README.md"), []byte("mine\n"), 0o644))

		require.NoError(t, WriteFiles(root, files, true, nil))
		data, err := os.ReadFile(filepath.Join(root, "docs/adr/README.md"))
		require.NoError(t, err)
		assert.Equal(t, "# adr\n", string(data))
	})
}
