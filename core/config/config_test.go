package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "pik_yauza.db", cfg.Database.Name)
	assert.Equal(t, "https://api.pik.ru", cfg.Source.BaseURL)
	assert.Equal(t, int64(1220), cfg.Source.BlockID)
	assert.Equal(t, 30, cfg.Source.TimeoutSeconds)
	assert.Equal(t, "PikYauzaBot/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 3600, cfg.Monitor.IntervalSeconds)
	assert.Equal(t, 5, cfg.Monitor.FirstDelaySeconds)
	assert.Equal(t, "Yauza Park", cfg.Monitor.ComplexName)
	assert.Equal(t, 3, cfg.Monitor.TopLimit)
	assert.Equal(t, 10, cfg.Monitor.CheapestLimit)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.BaseURL)
	assert.Equal(t, 4096, cfg.Telegram.MaxMessageLength)
	assert.False(t, cfg.Storage.Enabled())
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("SOURCE_BLOCK_ID", "42")
	t.Setenv("MONITOR_COMPLEX_NAME", "Test Park")
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Source.BlockID)
	assert.Equal(t, "Test Park", cfg.Monitor.ComplexName)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TELEGRAM_TOKEN=abc\nTELEGRAM_CHAT_ID=7\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("TELEGRAM_TOKEN")
		os.Unsetenv("TELEGRAM_CHAT_ID")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Telegram.Token)
	assert.Equal(t, "7", cfg.Telegram.ChatID)
	assert.True(t, cfg.Telegram.Enabled())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "monitor:\n  complex_name: File Park\n  top_limit: 5\nsource:\n  block_id: 99\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(yaml), 0o600))

	t.Run("File Overrides Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "File Park", cfg.Monitor.ComplexName)
		assert.Equal(t, 5, cfg.Monitor.TopLimit)
		assert.Equal(t, int64(99), cfg.Source.BlockID)
		assert.Equal(t, 10, cfg.Monitor.CheapestLimit)
	})

	t.Run("Environment Overrides File", func(t *testing.T) {
		t.Setenv("MONITOR_TOP_LIMIT", "7")
		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Monitor.TopLimit)
		assert.Equal(t, "File Park", cfg.Monitor.ComplexName)
	})
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".json"), []byte("{not json"), 0o600))

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Driver = "oracle"
		assert.ErrorContains(t, cfg.Validate(), "database.driver")
	})

	t.Run("Bad Source", func(t *testing.T) {
		cfg := valid()
		cfg.Source.BaseURL = "ftp://example.com"
		cfg.Source.BlockID = 0
		err := cfg.Validate()
		assert.ErrorContains(t, err, "source.base_url")
		assert.ErrorContains(t, err, "source.block_id")
	})

	t.Run("Token Without Chat", func(t *testing.T) {
		cfg := valid()
		cfg.Telegram.Token = "abc"
		assert.ErrorContains(t, cfg.Validate(), "telegram.token")
	})

	t.Run("Rejected At Load", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "oracle")
		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "invalid configuration")
	})
}
