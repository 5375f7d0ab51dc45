package eventcore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nstrict: true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 256, cfg.DefaultQueueCapacityHint)
}

func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventcore.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"warn\"\ndefault_queue_capacity_hint = 64\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 64, cfg.DefaultQueueCapacityHint)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o600))

	t.Setenv("EVENTCORE_LOG_LEVEL", "error")
	t.Setenv("EVENTCORE_STRICT", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestConfigSetupRejectsUnknownLogLevel(t *testing.T) {
	cfg := Config{LogLevel: "verbose"}
	err := cfg.Setup()
	assert.Error(t, err)
}
