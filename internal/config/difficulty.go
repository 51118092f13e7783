package config

import "fmt"

// DifficultyPreset names a bundled speed setup. Presets adjust the loaded
// speed block before the game starts; the in-game level staircase itself
// is fixed and not part of a preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyZen    DifficultyPreset = "zen"
)

// Presets lists the valid preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyZen}
}

// ParsePreset validates a preset name from a flag or config value.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyZen:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (valid: easy, normal, hard, zen)", s)
	}
}

// ApplyPreset adjusts the speed block for a named preset. Normal keeps the
// loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.StartTicksPerStep = 70
		cfg.Speed.RowsPerLevel = 15
	case DifficultyHard:
		cfg.Speed.StartTicksPerStep = 20
		cfg.Speed.RowsPerLevel = 6
	case DifficultyZen:
		// Relaxed fixed pace: the level threshold sits beyond any realistic
		// row count, so the speed staircase never engages.
		cfg.Speed.StartTicksPerStep = 60
		cfg.Speed.RowsPerLevel = 1000000
	}
}
