package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_PATH", "ENV", "LOG_PATH", "MAX_NAME_LENGTH", "SQLITE_EXTENSIONS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_DefaultsWithoutAnySource(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Empty(t, cfg.LogPath)
	assert.Equal(t, 19, cfg.Roster.MaxNameLength)
	assert.Equal(t, []string{".db", ".sqlite", ".sqlite3"}, cfg.Storage.SQLiteExtensions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "dev")
	t.Setenv("MAX_NAME_LENGTH", "30")
	t.Setenv("SQLITE_EXTENSIONS", ".sqlite")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 30, cfg.Roster.MaxNameLength)
	assert.Equal(t, []string{".sqlite"}, cfg.Storage.SQLiteExtensions)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: "staging"
log_path: "roster.log"
roster:
  max_name_length: 12
storage:
  sqlite_extensions: [".db"]
`), 0o644))

	t.Run("explicit path", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "staging", cfg.Env)
		assert.Equal(t, "roster.log", cfg.LogPath)
		assert.Equal(t, 12, cfg.Roster.MaxNameLength)
		assert.Equal(t, []string{".db"}, cfg.Storage.SQLiteExtensions)
	})

	t.Run("CONFIG_PATH", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", path)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "staging", cfg.Env)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}
