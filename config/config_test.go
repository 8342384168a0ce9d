package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	err := LoadConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 2*time.Hour, cfg.Session.LegacyMaxAge)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.NotEmpty(t, cfg.Admin.AllowedEmails)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("VAULT_SERVER_PORT", "8081")
	t.Setenv("VAULT_ADMIN_PASSWORD", "s3cret")
	t.Setenv("VAULT_ADMIN_ALLOWED_EMAILS", "a@example.com,b@example.com")
	t.Setenv("VAULT_SESSION_LEGACY_MAX_AGE", "30m")

	cfg := &Config{}
	err := LoadConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Admin.AllowedEmails)
	assert.Equal(t, 30*time.Minute, cfg.Session.LegacyMaxAge)
}
