package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_FileValues(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("catalog_test", "testdata")
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "file-secret", cfg.SecretKey.Access)
	assert.Equal(t, 4, cfg.BcryptCost())
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
	assert.False(t, cfg.EnforceBookOwnership())
	require.NotNil(t, cfg.LoginRateLimit)
	assert.Equal(t, 5, cfg.LoginRateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.LoginRateLimit.Window)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("AUTH_ENFORCEBOOKOWNERSHIP", "true")
	t.Setenv("AUTH_ACCESSTOKENTTL", "15m")
	t.Setenv("LOGINRATELIMIT_LIMIT", "3")

	cfg, err := LoadWithEnv[Config]("catalog_test", "testdata")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	assert.True(t, cfg.EnforceBookOwnership())
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, 3, cfg.LoginRateLimit.Limit)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does_not_exist", "testdata")
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, defaultBcryptCost, cfg.BcryptCost())
	assert.Equal(t, defaultAccessTokenTTL, cfg.AccessTokenTTL())
	assert.False(t, cfg.EnforceBookOwnership())
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
