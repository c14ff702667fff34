// Package config loads editor configuration from TOML.
// Absent files and absent keys fall back to defaults; out-of-range
// values clamp instead of erroring so a bad config never blocks the
// editor from starting.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds editor tunables
type Config struct {
	// Gesture geometry, in cells
	DragThreshold int `toml:"drag_threshold"`
	RowTolerance  int `toml:"row_tolerance"`

	// Card layout, in cells
	CardWidth  int `toml:"card_width"`
	CardHeight int `toml:"card_height"`
	LabelWidth int `toml:"label_width"`

	Sound   bool   `toml:"sound"`
	LogFile string `toml:"log_file"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		DragThreshold: 1,
		RowTolerance:  2,
		CardWidth:     14,
		CardHeight:    3,
		LabelWidth:    8,
		Sound:         true,
	}
}

// Load reads path over the defaults. A missing file returns defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Clamp()
	return cfg, nil
}

// Clamp forces all tunables into workable ranges
func (c *Config) Clamp() {
	c.DragThreshold = clamp(c.DragThreshold, 1, 20)
	c.RowTolerance = clamp(c.RowTolerance, 1, 10)
	c.CardWidth = clamp(c.CardWidth, 4, 40)
	c.CardHeight = clamp(c.CardHeight, 1, 10)
	c.LabelWidth = clamp(c.LabelWidth, 3, 20)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
