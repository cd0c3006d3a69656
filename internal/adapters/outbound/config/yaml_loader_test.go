package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	appconfig "github.com/zestyzomato/zesty/internal/adapters/outbound/config"
	"github.com/zestyzomato/zesty/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, appconfig.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(filepath.Join(dir, appconfig.FileName))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
data_file: orders.json
log_level: debug
strict_statuses: true
currency: "€"
`)

	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "orders.json"), cfg.DataFile)
	assert.Equal(t, domain.BackendJSON, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.StrictStatuses)
	assert.Equal(t, "€", cfg.Currency)
}

func TestYAMLLoader_PebbleDefaultsDataPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `backend: pebble`)

	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.BackendPebble, cfg.Backend)
	assert.Equal(t, filepath.Join(dir, "zesty_data.pebble"), cfg.DataFile)
}

func TestYAMLLoader_AbsoluteDataFileKept(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere.json")
	path := writeConfig(t, dir, "data_file: "+abs)

	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.DataFile)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{{{invalid yaml`)

	_, err := appconfig.New().Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .zesty.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `backend: floppy`)

	_, err := appconfig.New().Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .zesty.yaml")
	assert.Contains(t, err.Error(), "floppy")
}

func TestRender_RoundTrips(t *testing.T) {
	out, err := appconfig.Render(domain.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(out), "# Zesty configuration")

	var cfg domain.Config
	require.NoError(t, yaml.Unmarshal(out, &cfg))
	assert.Equal(t, domain.DefaultConfig(), cfg)
}
