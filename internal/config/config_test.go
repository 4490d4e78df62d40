package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/wheelpicker/internal/wheel"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Len(t, cfg.Picker.Items, 24)
	assert.Equal(t, "00:00", cfg.Picker.Items[0])
}

func TestConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wheelpicker", "config.toml"), path)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Picker.Items = []string{"red", "green", "blue"}
	cfg.Picker.DefaultItem = "green"
	cfg.Picker.Axis = "horizontal"
	cfg.Haptics.Enabled = false
	require.NoError(t, cfg.Save())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFilePartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[picker]
items = ["one", "two"]
item_extent = 24
axis = "h"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, cfg.Picker.Items)
	assert.Equal(t, wheel.DefaultDistanceMultiplier, cfg.Picker.DistanceMultiplier)
	assert.Equal(t, 480, cfg.UI.Height)

	wc, err := cfg.WheelConfig()
	require.NoError(t, err)
	assert.Equal(t, 24.0, wc.ItemExtent)
	assert.Equal(t, wheel.Horizontal, wc.Axis)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad toml", data: "[picker\nitems = 3"},
		{name: "bad axis", data: "[picker]\naxis = \"sideways\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestWheelConfigResolvesZeroes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker.ItemExtent = 0
	cfg.Picker.EndOffset = 0

	wc, err := cfg.WheelConfig()
	require.NoError(t, err)
	assert.Equal(t, wheel.DefaultItemExtent, wc.ItemExtent)
	assert.Equal(t, wheel.DefaultEndOffset, wc.EndOffset)
}
