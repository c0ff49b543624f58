package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webnotify/internal/config"
)

func setTestDirs(t *testing.T) (configDir, dataDir string) {
	t.Helper()
	configDir = t.TempDir()
	dataDir = t.TempDir()
	t.Setenv("WEBNOTIFY_CONFIG_DIR", configDir)
	t.Setenv("WEBNOTIFY_DATA_DIR", dataDir)
	return configDir, dataDir
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	configDir, dataDir := setTestDirs(t)

	manager, err := config.NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	// A commented default config file is written on first run.
	_, err = os.Stat(filepath.Join(configDir, "config.toml"))
	require.NoError(t, err)

	cfg := manager.Get()
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, time.Duration(0), cfg.Permissions.PromptTimeout)
	assert.False(t, cfg.Permissions.Ephemeral)
	assert.Equal(t, filepath.Join(dataDir, "webnotify.sqlite"), cfg.Database.Path)
}

func TestManager_LoadReadsExistingConfig(t *testing.T) {
	configDir, _ := setTestDirs(t)

	content := `
[logging]
level = "debug"
format = "json"

[permissions]
prompt_timeout = "30s"
ephemeral = true
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	manager, err := config.NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Permissions.PromptTimeout)
	assert.True(t, cfg.Permissions.Ephemeral)
}

func TestManager_LoadRejectsInvalidLevel(t *testing.T) {
	configDir, _ := setTestDirs(t)

	content := `
[logging]
level = "loud"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	manager, err := config.NewManager()
	require.NoError(t, err)
	assert.Error(t, manager.Load())
}

func TestManager_LoadRejectsNegativeTimeout(t *testing.T) {
	configDir, _ := setTestDirs(t)

	content := `
[permissions]
prompt_timeout = "-5s"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	manager, err := config.NewManager()
	require.NoError(t, err)
	assert.Error(t, manager.Load())
}

func TestGetDatabaseFile_UsesDataDir(t *testing.T) {
	_, dataDir := setTestDirs(t)

	path, err := config.GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "webnotify.sqlite"), path)
}

func TestSchemaJSON(t *testing.T) {
	data, err := config.SchemaJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "Webnotify Configuration")
	assert.Contains(t, string(data), "permissions")
}
