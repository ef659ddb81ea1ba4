package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/docshift/pkg/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, string(types.InputGuess), cfg.InputStyle)
	assert.Equal(t, string(types.OutputGoogle), cfg.OutputStyle)
	assert.Equal(t, []string{"python"}, cfg.AcceptedShebangs)
	assert.True(t, cfg.Output.FirstLine)
	assert.Equal(t, "    ", cfg.Output.StandardIndent)
	assert.Equal(t, 4, cfg.Output.TabLength)
	assert.True(t, cfg.Output.Realign)
	assert.Equal(t, PEP8Max, cfg.Output.MaxLineLength)
	assert.False(t, cfg.Output.UseOptional)
	assert.Equal(t, BackTicksKeepDirectives, cfg.Output.RemoveTypeBackTicks)
	assert.True(t, cfg.Output.UseTypes)
	assert.False(t, cfg.Output.SeparateKeywords)
	assert.Equal(t, MarkupOff, cfg.Output.ConvertMarkup)
}

func TestLoadFromJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "docshift.json")
	content := `{
	"input_style": "epytext",
	"output_style": "numpy",
	"output": {
		"max_line_length": 100,
		"use_optional": true
	}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "epytext", cfg.InputStyle)
	assert.Equal(t, "numpy", cfg.OutputStyle)
	assert.Equal(t, 100, cfg.Output.MaxLineLength)
	assert.True(t, cfg.Output.UseOptional)
	// Untouched options keep their defaults.
	assert.True(t, cfg.Output.Realign)
	assert.Equal(t, []string{"python"}, cfg.AcceptedShebangs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateRejectsBadStyles(t *testing.T) {
	cfg := Default()
	cfg.InputStyle = "markdown"
	assert.ErrorIs(t, cfg.Validate(), types.ErrUnsupportedStyle)

	cfg = Default()
	cfg.OutputStyle = "markdown"
	assert.ErrorIs(t, cfg.Validate(), types.ErrUnsupportedStyle)
}

func TestValidateRejectsBadModes(t *testing.T) {
	cfg := Default()
	cfg.Output.RemoveTypeBackTicks = "sometimes"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output.ConvertMarkup = "sometimes"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Workers = -1
	assert.Error(t, cfg.Validate())
}

func TestFingerprintChangesWithOptions(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	b.Output.MaxLineLength = 100
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	c := Default()
	c.OutputStyle = string(types.OutputRest)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
