package blockfall

import "time"

// DropClock accumulates elapsed time toward the next auto-drop.
// It is owned by the driving loop and passed into Engine.Tick.
type DropClock struct {
	elapsed time.Duration
}

// Reset discards accumulated time.
func (c *DropClock) Reset() {
	c.elapsed = 0
}

// Advance adds dt and reports whether an auto-drop is due. When it fires
// the delay is subtracted, so leftover time carries into the next drop.
// At most one drop fires per call.
func (c *DropClock) Advance(dt, delay time.Duration) bool {
	if dt > 0 {
		c.elapsed += dt
	}
	if c.elapsed > delay {
		c.elapsed -= delay
		return true
	}
	return false
}
