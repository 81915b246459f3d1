package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".loxrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"lox$ \"\ncolor: false\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lox$ ", cfg.Prompt)
	assert.False(t, cfg.Color)
	assert.Equal(t, Default().Banner, cfg.Banner)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".loxrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unterminated\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
