package scaffold

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsFiles(t *testing.T) {
	when := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	files, err := DocsFiles(when)
	require.NoError(t, err)
	require.Len(t, files, 7)

	byPath := make(map[string]string, len(files))
	for _, f := range files {
		assert.True(t, strings.HasPrefix(f.Path, "docs/"), f.Path)
		byPath[f.Path] = string(f.Content)
	}

	// Date placeholders are fully substituted.
	for path, content := range byPath {
		assert.NotContains(t, content, "@DATE@", path)
	}
	assert.Contains(t, byPath["docs/adr/0001-record-architecture-decisions.md"], "2026-08-30")
	assert.Contains(t, byPath["docs/adr/0001-record-architecture-decisions.md"], "# 1. Record architecture decisions")
	assert.Contains(t, byPath["docs/README.md"], "Branching strategy")
}

func TestDocsFilesRejectsZeroTime(t *testing.T) {
	_, err := DocsFiles(time.Time{})
	assert.Error(t, err)
}
