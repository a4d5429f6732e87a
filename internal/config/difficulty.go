package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// An empty string means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// StartDelayForPreset returns the initial fall delay for a preset.
// Returns 0 for presets that keep the configured delay.
func StartDelayForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 900 * time.Millisecond
	case DifficultyNormal:
		return 700 * time.Millisecond
	case DifficultyHard:
		return 400 * time.Millisecond
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlockfallPreset modifies the config based on a difficulty preset.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Timing.DecrementPerRow = 0
		return
	}

	if d := StartDelayForPreset(preset); d > 0 {
		cfg.Timing.StartDelay = d
		if cfg.Timing.MinDelay > d {
			cfg.Timing.MinDelay = d
		}
	}
}
