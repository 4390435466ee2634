package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.ini"))

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 1024, cfg.Server.ReadBufferSize)
	assert.Equal(t, 1024, cfg.Server.WriteBufferSize)
	assert.Equal(t, 16, cfg.Server.HistorySize)

	assert.Equal(t, 200.0, cfg.Defaults.Current)
	assert.Equal(t, 25.0, cfg.Defaults.Voltage)
	assert.Equal(t, 5.0, cfg.Defaults.TravelSpeed)
	assert.Equal(t, 0.7, cfg.Defaults.ArcEfficiency)
	assert.Equal(t, 10.0, cfg.Defaults.PlateThickness)
	assert.Equal(t, "Steel", cfg.Defaults.Material)

	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	contents := `
[server]
addr = :8088
history_size = 4

[defaults]
current = 150
material = Titanium

[log]
level = debug
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg := Load(path)
	assert.Equal(t, ":8088", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Server.HistorySize)
	assert.Equal(t, 150.0, cfg.Defaults.Current)
	assert.Equal(t, "Titanium", cfg.Defaults.Material)
	assert.Equal(t, "debug", cfg.LogLevel)

	// unset keys keep their defaults
	assert.Equal(t, 1024, cfg.Server.ReadBufferSize)
	assert.Equal(t, 25.0, cfg.Defaults.Voltage)
}
