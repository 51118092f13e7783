// Package config provides YAML-based configuration loading and difficulty
// presets for blockfall.
package config

import "fmt"

// Config holds all tunable parameters for one blockfall session.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
}

// GridConfig fixes the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig controls the external clock and the gravity pacing.
type SpeedConfig struct {
	TickMS            int `yaml:"tick_ms"`              // clock pulse interval in milliseconds
	StartTicksPerStep int `yaml:"start_ticks_per_step"` // initial gravity threshold in pulses
	RowsPerLevel      int `yaml:"rows_per_level"`       // cleared rows per level advance
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width < 4 {
		return fmt.Errorf("grid width %d is too small (minimum 4)", c.Grid.Width)
	}
	if c.Grid.Height < 6 {
		return fmt.Errorf("grid height %d is too small (minimum 6)", c.Grid.Height)
	}
	if c.Speed.TickMS < 5 {
		return fmt.Errorf("tick interval %dms is too short (minimum 5ms)", c.Speed.TickMS)
	}
	if c.Speed.StartTicksPerStep < 1 {
		return fmt.Errorf("start ticks per step must be at least 1, got %d", c.Speed.StartTicksPerStep)
	}
	if c.Speed.RowsPerLevel < 1 {
		return fmt.Errorf("rows per level must be at least 1, got %d", c.Speed.RowsPerLevel)
	}
	return nil
}
