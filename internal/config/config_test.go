package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/neurotask.db", cfg.Database.Path)
	assert.Equal(t, 24*60, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NEUROTASK_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("NEUROTASK_AUTH_JWTSECRET", "env-secret")
	t.Setenv("NEUROTASK_AUTH_BCRYPTCOST", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}
