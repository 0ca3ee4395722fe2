package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrucache/internal/cache"
	"lrucache/internal/config"
	"lrucache/internal/logger"
)

// Tests here use t.Setenv and cannot run in parallel.

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LRU_CAPACITY", "LRU_VERIFY", "LRU_LOG_LEVEL", "LRU_LOG_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{Capacity: 5, LogLevel: "info", LogFormat: "text"}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("LRU_CAPACITY", "2")
	t.Setenv("LRU_VERIFY", "true")
	t.Setenv("LRU_LOG_LEVEL", "debug")
	t.Setenv("LRU_LOG_FORMAT", "json")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Capacity)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("LRU_CAPACITY", "3")
	t.Setenv("LRU_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LRU_LOG_FORMAT"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LRU_CAPACITY=9\nLRU_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LRU_LOG_FORMAT") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Capacity)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("LRU_CAPACITY", "many")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{Capacity: 1, LogLevel: "info", LogFormat: "text"}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.Capacity = 0
	assert.ErrorIs(t, bad.Validate(), cache.ErrInvalidCapacity)

	bad = valid
	bad.LogFormat = "xml"
	assert.ErrorIs(t, bad.Validate(), logger.ErrUnknownFormat)

	for _, format := range []string{"", " JSON ", "Text"} {
		ok := valid
		ok.LogFormat = format
		assert.NoError(t, ok.Validate(), "format %q", format)
	}

	bad = valid
	bad.LogLevel = "loud"
	assert.Error(t, bad.Validate())
}
