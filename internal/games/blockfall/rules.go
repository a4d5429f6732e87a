package blockfall

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
)

// Rules holds the scoring and speed parameters of a round.
type Rules struct {
	StartDelay     time.Duration // Fall delay with no rows cleared
	DelayDecrement time.Duration // Delay reduction per cleared row
	MinDelay       time.Duration // Floor for the fall delay
	LockBonus      int           // Points for every locked piece
	LineBase       int           // Points for a single-row clear
}

// RulesFromConfig converts a loaded configuration into engine rules.
func RulesFromConfig(cfg config.BlockfallConfig) Rules {
	return Rules{
		StartDelay:     cfg.Timing.StartDelay,
		DelayDecrement: cfg.Timing.DecrementPerRow,
		MinDelay:       cfg.Timing.MinDelay,
		LockBonus:      cfg.Scoring.LockBonus,
		LineBase:       cfg.Scoring.LineBase,
	}
}

// LineScore returns the points for clearing n rows at once:
// LineBase * 2^(n-1), or 0 when nothing was cleared.
func (r Rules) LineScore(n int) int {
	if n <= 0 {
		return 0
	}
	return r.LineBase << (n - 1)
}

// DelayFor returns the fall delay after rows rows have been cleared.
func (r Rules) DelayFor(rows int) time.Duration {
	return max(r.MinDelay, r.StartDelay-time.Duration(rows)*r.DelayDecrement)
}
