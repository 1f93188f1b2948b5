package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "session.db", c.SessionDB)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "ADMIN-2025-KEY", c.AdminSecurityCode)
	assert.Equal(t, "123456", c.DemoAdminOTP)
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoad_BadFileFails(t *testing.T) {
	_, err := Load([]string{"-c", "/definitely/not/here.json"})
	require.Error(t, err)
}
