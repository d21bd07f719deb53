package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ARB_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "data/arb_bot.sqlite", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data/bot.log", cfg.Logs.BotLogPath)
	assert.Equal(t, 500, cfg.Logs.TailLines)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9100
database:
  path: /tmp/from_file.sqlite
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	t.Setenv("ARB_CONFIG_FILE", configFile)
	t.Setenv("ARB_DATABASE_PATH", "/tmp/from_env.sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "file value survives when env is unset")
	assert.Equal(t, "/tmp/from_env.sqlite", cfg.Database.Path, "env takes precedence over file")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidPort(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("server:\n  port: -1\n"), 0o644))
	t.Setenv("ARB_CONFIG_FILE", configFile)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("ARB_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ARB_LOGGING_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("server: [not a map"), 0o644))
	t.Setenv("ARB_CONFIG_FILE", configFile)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}
