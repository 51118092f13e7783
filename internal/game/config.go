package game

import "time"

// Config fixes the simulation parameters for the lifetime of one Game.
// It is built by the composition root (CLI flags + config file) and never
// changes after construction.
type Config struct {
	Width        int           // grid width in cells
	Height       int           // grid height in cells
	TickInterval time.Duration // wall-clock spacing of external clock pulses
	TicksPerStep int           // initial gravity threshold: pulses per gravity step
	RowsPerLevel int           // cleared rows required to advance one level
	Seed         int64         // RNG seed for tile colors; resolved by the caller
}

// DefaultConfig returns the parameters used when no config file or flags
// override them: a 10x20 well at 50 pulses per second, one gravity step
// per second to start.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       20,
		TickInterval: 20 * time.Millisecond,
		TicksPerStep: 50,
		RowsPerLevel: 10,
		Seed:         0,
	}
}
