package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 1.0, cfg.Tracing.Probability)
	assert.Equal(t, 10, cfg.Gateway.CacheSize)
	assert.Equal(t, 60*time.Second, cfg.Gateway.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Gateway.CleanupInterval)
	assert.Empty(t, cfg.Gateway.RedisAddr)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
log:
  level: debug
gateway:
  cache_size: 25
  cache_ttl: 5s
  routes: /etc/storefront/routes.json
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("STOREFRONT_TRACING_HOST", "collector:4317")
	t.Setenv("STOREFRONT_GATEWAY_CACHE_SIZE", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "collector:4317", cfg.Tracing.Host)
	assert.Equal(t, 3, cfg.Gateway.CacheSize)
	assert.Equal(t, 5*time.Second, cfg.Gateway.CacheTTL)
	assert.Equal(t, "/etc/storefront/routes.json", cfg.Gateway.Routes)
}

func TestLoadRejectsBadCacheSize(t *testing.T) {
	t.Setenv("STOREFRONT_GATEWAY_CACHE_SIZE", "0")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	tests := map[string]string{
		"zero cleanup interval":     "STOREFRONT_GATEWAY_CLEANUP_INTERVAL=0s",
		"negative cleanup interval": "STOREFRONT_GATEWAY_CLEANUP_INTERVAL=-1s",
		"zero ttl":                  "STOREFRONT_GATEWAY_CACHE_TTL=0s",
		"negative ttl":              "STOREFRONT_GATEWAY_CACHE_TTL=-5s",
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			k, v, _ := strings.Cut(env, "=")
			t.Setenv(k, v)

			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
