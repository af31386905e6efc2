package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)

	assert.False(t, info.FileFound)
	assert.False(t, info.PortSpecified)
	assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Data.PreviewRows)
	assert.Equal(t, ":memory:", cfg.Data.DSN)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 8088
dev_mode = true

[log]
level = "debug"
format = "json"

[data]
dataset_url = "https://example.com/crops.csv"
preview_rows = 0

[fuzzy]
resolution = 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)

	assert.True(t, info.FileFound)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.True(t, cfg.Server.DevMode)
	assert.True(t, cfg.Server.OpenBrowser, "unset keys keep defaults")
	assert.True(t, cfg.Server.Metrics)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://example.com/crops.csv", cfg.Data.DatasetURL)
	assert.Equal(t, 5, cfg.Data.PreviewRows, "invalid preview_rows falls back to default")
	assert.Equal(t, 0.5, cfg.Fuzzy.Resolution)
}

func TestLoadConfigPortNotSpecified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0644))

	_, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)
	assert.False(t, info.PortSpecified)
}

func TestLoadConfigInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0644))

	_, _, err := LoadConfigWithInfo(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CROPWISE_DATASET_URL", "file.csv")
	t.Setenv("CROPWISE_LOG_LEVEL", "error")

	cfg, _, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "file.csv", cfg.Data.DatasetURL)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.Port = 9000
	cfg.Data.DatasetURL = "https://example.com/data.xlsx"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, cfg, loaded)
}
