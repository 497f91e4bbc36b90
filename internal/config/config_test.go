package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFilePresent(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)

	assert.False(t, cfg.Headless)
	assert.Equal(t, Default().NavTimeout, cfg.NavTimeout)
}

func TestLoad_ReadsTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "browsercli.toml")
	content := "headless = true\nhistory_db_path = \"custom.db\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Headless)
	assert.Equal(t, "custom.db", cfg.HistoryDBPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "browsercli.toml")
	require.NoError(t, os.WriteFile(path, []byte("headless = false\n"), 0o600))

	t.Setenv("BROWSERCLI_HEADLESS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Headless)
}
