// Package config provides YAML-based rules configuration loading and
// difficulty presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlockfallConfig contains all tunable rules for a blockfall round.
type BlockfallConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// TimingConfig defines the auto-drop speed curve.
// The fall delay is max(MinDelay, StartDelay - DecrementPerRow*rowsCleared).
type TimingConfig struct {
	StartDelay      time.Duration `yaml:"start_delay"`
	DecrementPerRow time.Duration `yaml:"decrement_per_row"`
	MinDelay        time.Duration `yaml:"min_delay"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	LockBonus int `yaml:"lock_bonus"` // Awarded for every locked piece
	LineBase  int `yaml:"line_base"`  // Clearing n rows awards LineBase * 2^(n-1)
}

// Validate checks that the configuration describes a playable game.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if c.Timing.StartDelay <= 0 {
		errs = append(errs, fmt.Errorf("timing.start_delay must be positive, got %s", c.Timing.StartDelay))
	}
	if c.Timing.MinDelay <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_delay must be positive, got %s", c.Timing.MinDelay))
	}
	if c.Timing.DecrementPerRow < 0 {
		errs = append(errs, fmt.Errorf("timing.decrement_per_row must not be negative, got %s", c.Timing.DecrementPerRow))
	}
	if c.Timing.MinDelay > c.Timing.StartDelay {
		errs = append(errs, fmt.Errorf("timing.min_delay (%s) exceeds timing.start_delay (%s)", c.Timing.MinDelay, c.Timing.StartDelay))
	}
	if c.Scoring.LockBonus < 0 {
		errs = append(errs, fmt.Errorf("scoring.lock_bonus must not be negative, got %d", c.Scoring.LockBonus))
	}
	if c.Scoring.LineBase < 0 {
		errs = append(errs, fmt.Errorf("scoring.line_base must not be negative, got %d", c.Scoring.LineBase))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid blockfall config: %w", errors.Join(errs...))
	}
	return nil
}
