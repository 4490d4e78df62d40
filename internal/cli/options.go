package cli

import (
	"fmt"
	"strings"

	"github.com/depeter/wheelpicker/internal/config"
	"github.com/depeter/wheelpicker/internal/wheel"
)

// options holds the persistent flags shared by every command.
type options struct {
	verbose     bool
	configPath  string
	axis        string
	items       []string
	defaultItem string
}

// loadConfig reads the config file and applies the flag overrides on top.
func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.axis != "" {
		a, err := wheel.ParseAxis(o.axis)
		if err != nil {
			return nil, fmt.Errorf("--axis: %w", err)
		}
		cfg.Picker.Axis = a.String()
	}
	if len(o.items) > 0 {
		items := make([]string, 0, len(o.items))
		for _, it := range o.items {
			if it = strings.TrimSpace(it); it != "" {
				items = append(items, it)
			}
		}
		cfg.Picker.Items = items
	}
	if o.defaultItem != "" {
		cfg.Picker.DefaultItem = o.defaultItem
	}
	return cfg, nil
}
