package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_TYPE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "auto", cfg.DBMigrationMode)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.RedisEnabled)
	assert.False(t, cfg.StrictDeviceProperties)
	assert.Equal(t, []string{"PC", "Laptop", "Smartphone", "Tablet"}, cfg.DefaultDeviceTypes)
	assert.Equal(t, "root:@tcp(localhost:3306)/device_inventory?charset=utf8mb4&parseTime=True&loc=Local", cfg.GetDSN())
}

func TestLoadConfigPrefersEnvironmentPrefix(t *testing.T) {
	t.Setenv("ENV_TYPE", "server")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_DB_HOST", "db.prod")
	t.Setenv("LOCAL_DB_HOST", "db.local")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "5432")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "SERVER", cfg.EnvType)
	assert.Equal(t, "db.prod", cfg.DBHost)
	assert.Contains(t, cfg.GetDSN(), "host=db.prod")
	assert.Contains(t, cfg.GetDSN(), "port=5432")
}

func TestLoadConfigParsesTypedValues(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("STRICT_DEVICE_PROPERTIES", "true")
	t.Setenv("DEFAULT_DEVICE_TYPES", "Desktop PC, Laptop ,,Printer")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example,http://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.True(t, cfg.StrictDeviceProperties)
	assert.Equal(t, []string{"Desktop PC", "Laptop", "Printer"}, cfg.DefaultDeviceTypes)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoadConfigReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_driver: sqlite
db_name: inventory.db
default_device_types:
  - Monitor
  - Dock
`), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "inventory.db", cfg.GetDSN())
	assert.Equal(t, []string{"Monitor", "Dock"}, cfg.DefaultDeviceTypes)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DBDriver")
}
