package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	toml := `
ServicePort = 9090
RedisEndpoint = "localhost:6379"
HaulerCacheTTL = "30s"
MinioBucket = "docks"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte(toml), 0o644))
	t.Chdir(dir)
	t.Setenv("CONFIG_NAME", "")
	t.Setenv("REDIS_ENDPOINT", "redis:6379")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServiceHost)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "redis:6379", cfg.RedisEndpoint)
	assert.Equal(t, 30*time.Second, cfg.HaulerCacheTTL)
	assert.Equal(t, "docks", cfg.MinioBucket)
	assert.True(t, cfg.SeedOnStartup)
}

func TestNewConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_NAME", "absent")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_HOST=db.internal\nDB_PORT=6432\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("DB_HOST", "")
	require.NoError(t, os.Unsetenv("DB_HOST"))
	t.Setenv("DB_PORT", "5432")

	LoadEnv()

	assert.Equal(t, "db.internal", os.Getenv("DB_HOST"))
	assert.Equal(t, "5432", os.Getenv("DB_PORT"))
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NotPanics(t, LoadEnv)
}
