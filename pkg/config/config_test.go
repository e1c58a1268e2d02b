package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	App        App        `mapstructure:"app"`
	API        API        `mapstructure:"api"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "app:\n  name: analyzer\napi:\n  port: 9000\n  cors_allowed_origins:\n    - https://example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg testConfig
	err := Load(path, &cfg, map[string]interface{}{
		"api.port":            8000,
		"http_client.timeout": "10s",
	})
	require.NoError(t, err)

	assert.Equal(t, "analyzer", cfg.App.Name)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.API.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.HTTPClient.Timeout)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	var cfg testConfig
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg, map[string]interface{}{
		"api.port": 8000,
	})
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.API.Port)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("API_PORT", "7070")

	var cfg testConfig
	err := Load("", &cfg, map[string]interface{}{
		"api.port": 8000,
	})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.API.Port)
}
