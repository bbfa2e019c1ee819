package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_ADDR", "DB_PATH", "KV_BACKEND", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_PREFIX",
	"AI_BASE_URL", "AI_ACCOUNT_ID", "AI_API_TOKEN", "AI_MODEL", "AI_TIMEOUT", "ASSETS_DIR",
	"LOG_LEVEL", "LOG_FORMAT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "./taskboard.db", cfg.DBPath)
	assert.Equal(t, KVBackendSQLite, cfg.KVBackend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, time.Duration(0), cfg.AITimeout)
	assert.Equal(t, float64(0), cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Empty(t, cfg.AssetsDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("KV_BACKEND", "redis")
	os.Setenv("REDIS_ADDR", "localhost:6379")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("AI_TIMEOUT", "15s")
	os.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, KVBackendRedis, cfg.KVBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 15*time.Second, cfg.AITimeout)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("AI_MODEL=@cf/test/model\nASSETS_DIR=./public\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "@cf/test/model", cfg.AIModel)
	assert.Equal(t, "./public", cfg.AssetsDir)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"sqlite ok", Config{KVBackend: KVBackendSQLite}, ""},
		{"redis ok", Config{KVBackend: KVBackendRedis, RedisAddr: "r:6379"}, ""},
		{"redis without addr", Config{KVBackend: KVBackendRedis}, "REDIS_ADDR"},
		{"unknown backend", Config{KVBackend: "memcached"}, "unknown KV_BACKEND"},
		{"negative rate", Config{KVBackend: KVBackendSQLite, RateLimitRPS: -1}, "RATE_LIMIT_RPS"},
		{"zero burst", Config{KVBackend: KVBackendSQLite, RateLimitRPS: 1}, "RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
