package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	t.Run("overlays present keys only", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"base_url":        "http://staging:8080",
			"request_timeout": "25s",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "http://staging:8080", cfg.BaseURL)
		assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "session.db", cfg.SessionDB)
		assert.Equal(t, "ADMIN-2025-KEY", cfg.AdminSecurityCode)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{BaseURL: "http://keep", RequestTimeout: time.Second}
		require.NoError(t, parseJSON(cfg, []string{"-a", "x"}))
		assert.Equal(t, "http://keep", cfg.BaseURL)
		assert.Equal(t, time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})
}

func TestLoad_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"base_url":  "http://from-json",
		"log_level": "warn",
	})

	cfg, err := Load([]string{"-c", path, "-a", "http://from-flag"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}
