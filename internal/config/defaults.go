package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration: a 10x20 well at 50
// pulses per second, starting at one gravity step per second, ten rows per
// level.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			TickMS:            20,
			StartTicksPerStep: 50,
			RowsPerLevel:      10,
		},
	}
}

// DefaultYAML returns the embedded default config file contents, used by
// the loader fallback and as a template for user configs.
func DefaultYAML() []byte {
	return defaultYAML
}
