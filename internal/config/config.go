package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/wheelpicker/internal/wheel"
)

type Config struct {
	Picker   PickerConfig  `toml:"picker"`
	UI       UIConfig      `toml:"ui"`
	Haptics  HapticsConfig `toml:"haptics"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type PickerConfig struct {
	Items                 []string `toml:"items"`
	DefaultItem           string   `toml:"default_item"`
	ItemExtent            float64  `toml:"item_extent"`
	DistanceMultiplier    float64  `toml:"distance_multiplier"`
	WheelHeightMultiplier float64  `toml:"wheel_height_multiplier"`
	EndOffset             int      `toml:"end_offset"`
	Axis                  string   `toml:"axis"`
}

type UIConfig struct {
	Fullscreen   bool `toml:"fullscreen"`
	Width        int  `toml:"width"`
	Height       int  `toml:"height"`
	VisibleItems int  `toml:"visible_items"`
}

type HapticsConfig struct {
	Enabled    bool    `toml:"enabled"`
	DurationMS int     `toml:"duration_ms"`
	Magnitude  float64 `toml:"magnitude"`
}

type KeybindConfig struct {
	Next       string `toml:"next"`
	Prev       string `toml:"prev"`
	Confirm    string `toml:"confirm"`
	Quit       string `toml:"quit"`
	Fullscreen string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			Items:                 defaultItems(),
			ItemExtent:            wheel.DefaultItemExtent,
			DistanceMultiplier:    wheel.DefaultDistanceMultiplier,
			WheelHeightMultiplier: wheel.DefaultWheelHeightMultiplier,
			EndOffset:             wheel.DefaultEndOffset,
			Axis:                  wheel.Vertical.String(),
		},
		UI: UIConfig{
			Fullscreen:   false,
			Width:        640,
			Height:       480,
			VisibleItems: 7,
		},
		Haptics: HapticsConfig{
			Enabled:    true,
			DurationMS: 12,
			Magnitude:  0.35,
		},
		Keybinds: KeybindConfig{
			Next:       "Down",
			Prev:       "Up",
			Confirm:    "Enter",
			Quit:       "Escape",
			Fullscreen: "F",
		},
	}
}

// defaultItems lists the hours of a day, the classic wheel demo.
func defaultItems() []string {
	items := make([]string, 24)
	for h := range items {
		items[h] = fmt.Sprintf("%02d:00", h)
	}
	return items
}

// WheelConfig maps the [picker] section onto the controller configuration.
func (c *Config) WheelConfig() (wheel.Config, error) {
	axis, err := wheel.ParseAxis(c.Picker.Axis)
	if err != nil {
		return wheel.Config{}, fmt.Errorf("picker.axis: %w", err)
	}
	cfg := wheel.DefaultConfig()
	cfg.ItemExtent = c.Picker.ItemExtent
	cfg.DistanceMultiplier = c.Picker.DistanceMultiplier
	cfg.WheelHeightMultiplier = c.Picker.WheelHeightMultiplier
	cfg.EndOffset = c.Picker.EndOffset
	cfg.Axis = axis
	return cfg.Resolve(), nil
}

// HapticDuration returns the configured impact length.
func (c *Config) HapticDuration() time.Duration {
	return time.Duration(c.Haptics.DurationMS) * time.Millisecond
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wheelpicker"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the default config file. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if _, err := cfg.WheelConfig(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
