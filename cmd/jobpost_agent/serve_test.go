package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobpost-studio/internal/config"
)

func TestResolveConfigDefaults(t *testing.T) {
	t.Setenv(config.EnvServiceURL, "")
	t.Setenv(config.EnvPort, "")

	cfg, err := resolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 120, cfg.TimeoutSeconds)
	assert.Equal(t, "generated", cfg.OutputDir)
	assert.Empty(t, cfg.ServiceURL)
}

func TestResolveConfigFromFile(t *testing.T) {
	t.Setenv(config.EnvServiceURL, "")
	t.Setenv(config.EnvPort, "")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"service_url":"http://svc:9000","port":9090}`), 0o644))

	cfg, err := resolveConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://svc:9000", cfg.ServiceURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 120, cfg.TimeoutSeconds, "missing values still fall back to defaults")
}

func TestResolveConfigEnvOverridesFile(t *testing.T) {
	t.Setenv(config.EnvServiceURL, "http://env-svc:9000")
	t.Setenv(config.EnvPort, "7070")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"service_url":"http://file-svc:9000","port":9090}`), 0o644))

	cfg, err := resolveConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env-svc:9000", cfg.ServiceURL)
	assert.Equal(t, 7070, cfg.Port)
}

func TestResolveConfigMissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
