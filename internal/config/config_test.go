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

	assert.Equal(t, BackendSQLite, c.StoreBackend)
	assert.Equal(t, "localstorage.db", c.SQLitePath)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, 3*time.Second, c.StoreTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.Namespace)
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	cfg := load(nil)

	require.NotNil(t, cfg, "load must not return nil")
	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoad_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"store_backend": "redis",
		"redis_addr":    "cache:6379",
		"log_level":     "warn",
	})

	cfg := load([]string{"-c", path, "-l", "debug"})

	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}
