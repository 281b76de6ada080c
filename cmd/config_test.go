package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(map[string]string{"SECRET_KEY": "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, 240*time.Minute, cfg.TokenTTL)
	assert.Equal(t, auth.DefaultAPIKeyName, cfg.APIKeyName)
	assert.Equal(t, auth.DefaultAPIKeyGroup, cfg.APIKeyGroup)
	assert.Equal(t, kernel.ObjectID(1), cfg.BotUserID)
	assert.Equal(t, 5, cfg.WorkerPoolSize)
	assert.Equal(t, 30*time.Second, cfg.BackendTxTimeout)
	assert.Equal(t, "@hourly", cfg.KeyReaperSchedule)
}

func TestParseConfig_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := ParseConfig(map[string]string{})
		assert.ErrorIs(t, err, auth.ErrImproperlyConfigured)
	})

	t.Run("all problems reported at once", func(t *testing.T) {
		_, err := ParseConfig(map[string]string{
			"SECRET_KEY":       "s3cret",
			"WORKER_POOL_SIZE": "many",
			"BOT_USER_ID":      "0",
		})

		require.Error(t, err)
		assert.ErrorContains(t, err, "WORKER_POOL_SIZE")
		assert.ErrorContains(t, err, "BOT_USER_ID")
	})
}

func TestConfig_AuthSettings(t *testing.T) {
	cfg, err := ParseConfig(map[string]string{"SECRET_KEY": "s3cret", "ACCESS_TOKEN_EXPIRE_MINUTES": "15"})
	require.NoError(t, err)

	settings, err := cfg.AuthSettings()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, settings.TokenTTL())
}

func TestLoadConfig_Layering(t *testing.T) {
	dir := t.TempDir()
	shared := filepath.Join(dir, ".env.shared")
	secret := filepath.Join(dir, ".env.secret")
	require.NoError(t, os.WriteFile(shared, []byte("HTTP_PORT=9000\nDB_NAME=shared\nSECRET_KEY=from-shared\n"), 0o600))
	require.NoError(t, os.WriteFile(secret, []byte("SECRET_KEY=from-secret\nDB_NAME=secret\n"), 0o600))
	t.Setenv("DB_NAME", "from-env")

	cfg, err := LoadConfig(shared, secret, filepath.Join(dir, "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "from-secret", cfg.SecretKey)
	assert.Equal(t, "from-env", cfg.DBName)
}
