package blockfall

import "time"

// Snapshot is an immutable copy of the engine state for presentation,
// determinism tests and replay comparison.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Board     [BoardHeight][BoardWidth]Kind
	Filled    int    // Locked cells on the board
	Current   *Piece // nil when no round is in progress
	Next      *Piece
	Score     int
	Rows      int
	Level     int
	Delay     time.Duration
	ToppedOut bool
	Pieces    uint64
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      e.tick,
		Phase:     e.phase,
		Board:     e.board.Grid(),
		Filled:    e.board.Count(),
		Score:     e.score,
		Rows:      e.rows,
		Level:     e.Level(),
		Delay:     e.delay,
		ToppedOut: e.toppedOut,
		Pieces:    e.pieces,
	}
	if e.current != nil {
		p := *e.current
		s.Current = &p
	}
	if e.next != nil {
		p := *e.next
		s.Next = &p
	}
	return s
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}
