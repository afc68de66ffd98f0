package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessera-labs/stackforge/internal/model"
	"github.com/tessera-labs/stackforge/internal/preset"
)

func TestIsValidKind(t *testing.T) {
	for _, k := range listKinds {
		assert.True(t, isValidKind(k), k)
	}
	assert.False(t, isValidKind("runtimes"))
	assert.False(t, isValidKind(""))
	assert.False(t, isValidKind("Templates"))
}

func TestChoiceStrings(t *testing.T) {
	got := choiceStrings(model.Frontends())
	assert.Equal(t, []string{"react", "vue", "angular", "nextjs"}, got)

	assert.Empty(t, choiceStrings([]model.Database(nil)))
}

func TestDashIfEmpty(t *testing.T) {
	assert.Equal(t, "-", dashIfEmpty(""))
	assert.Equal(t, "react", dashIfEmpty("react"))
}

func TestPresetSource(t *testing.T) {
	assert.Equal(t, "builtin", presetSource(preset.Preset{Builtin: true}))
	assert.Equal(t, "user", presetSource(preset.Preset{}))
}
