package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "data/site.json", cfg.Storage.DataFile)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=8080\nAPP_ENV=production\nJWT_SECRET=file-secret\nJWT_ACCESS_EXPIRY=2h\nADMIN_USERNAME=owner\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, "owner", cfg.Admin.Username)
}

func TestLoad_RequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownStorageDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
