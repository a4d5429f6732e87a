package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default blockfall rules.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Timing: TimingConfig{
			StartDelay:      700 * time.Millisecond,
			DecrementPerRow: 3 * time.Millisecond,
			MinDelay:        100 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			LockBonus: 10,
			LineBase:  100,
		},
	}
}
