package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CorsOrigins)
	assert.Equal(t, 5.0, cfg.Matching.ThresholdKm)
	assert.Equal(t, 5*time.Second, cfg.Providers.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Empty(t, cfg.Providers.Google.APIKey, "credentials must never have defaults")
	assert.Empty(t, cfg.Providers.OpenRoute.APIKey)
	assert.Empty(t, cfg.Weather.APIKey)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TOLLS_SERVER_PORT", "9090")
	t.Setenv("TOLLS_PROVIDERS_GOOGLE_API_KEY", "test-key")
	t.Setenv("TOLLS_MATCHING_THRESHOLD_KM", "7.5")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Providers.Google.APIKey)
	assert.Equal(t, 7.5, cfg.Matching.ThresholdKm)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 3000
providers:
  preferred: openroute
  openroute:
    api_key: file-key
dataset:
  path: /data/plazas.json
  reload_interval: 15m
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "openroute", cfg.Providers.Preferred)
	assert.Equal(t, "file-key", cfg.Providers.OpenRoute.APIKey)
	assert.Equal(t, "/data/plazas.json", cfg.Dataset.Path)
	assert.Equal(t, 15*time.Minute, cfg.Dataset.ReloadInterval)
	// Unset sections keep their defaults.
	assert.Equal(t, 5.0, cfg.Matching.ThresholdKm)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
