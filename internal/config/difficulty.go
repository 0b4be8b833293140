package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed turns the board rotation off and leaves everything else as loaded.
func ApplyPreset(cfg *HexMatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rotation.Enabled = false
		cfg.Session.TimeLimitSecs = 300
		cfg.Scoring.ComboWindowSecs = 4
	case DifficultyNormal:
		cfg.Rotation.Enabled = true
	case DifficultyHard:
		cfg.Rotation.Enabled = true
		cfg.Rotation.IntervalSecs = 4
		cfg.Rotation.WarningSecs = 1
		cfg.Session.TimeLimitSecs = 120
		cfg.Board.PaletteSize = 5
		cfg.Scoring.ComboWindowSecs = 2
	case DifficultyFixed:
		cfg.Rotation.Enabled = false
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
