package blockfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Phase is the lifecycle state of the engine.
type Phase int

const (
	PhaseCancelled Phase = iota // No round in progress
	PhasePaused                 // Round suspended, ticks ignored
	PhasePlaying                // Round active
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCancelled:
		return "cancelled"
	case PhasePaused:
		return "paused"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Direction selects a move or rotation. Left and Right rotate
// counter-clockwise and clockwise respectively.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// DropResult is the outcome of a soft or hard drop.
type DropResult int

const (
	DropIgnored   DropResult = iota // Not playing, nothing happened
	DropMoved                       // Piece moved down one row
	DropLocked                      // Piece locked and a new piece spawned
	DropToppedOut                   // Piece locked and the new piece had no room
)

// String returns the result name.
func (r DropResult) String() string {
	switch r {
	case DropIgnored:
		return "ignored"
	case DropMoved:
		return "moved"
	case DropLocked:
		return "locked"
	case DropToppedOut:
		return "topped_out"
	default:
		return "unknown"
	}
}

// Engine is the blockfall state machine. It owns the board, the current
// and next pieces, score and speed. It is not safe for concurrent use;
// the driver calls it from a single goroutine.
type Engine struct {
	rules Rules
	rng   *rand.Rand

	phase   Phase
	board   *Board
	current *Piece // nil while cancelled
	next    *Piece

	score     int
	rows      int
	delay     time.Duration
	toppedOut bool   // Last round ended by a spawn collision
	pieces    uint64 // Pieces locked this round
	tick      uint64

	events []core.Event
}

// NewEngine creates an engine in the Cancelled phase with an empty board.
func NewEngine(rules Rules, seed int64) *Engine {
	return &Engine{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		phase: PhaseCancelled,
		board: NewBoard(),
		delay: rules.StartDelay,
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Rows returns the number of rows cleared this round.
func (e *Engine) Rows() int { return e.rows }

// Level returns the display level, one per ten cleared rows.
func (e *Engine) Level() int { return e.rows/10 + 1 }

// Delay returns the current fall delay.
func (e *Engine) Delay() time.Duration { return e.delay }

// ToppedOut reports whether the last round was lost.
func (e *Engine) ToppedOut() bool { return e.toppedOut }

// Current returns the falling piece, if any.
func (e *Engine) Current() (Piece, bool) {
	if e.current == nil {
		return Piece{}, false
	}
	return *e.current, true
}

// Next returns the preview piece, if any.
func (e *Engine) Next() (Piece, bool) {
	if e.next == nil {
		return Piece{}, false
	}
	return *e.next, true
}

// CellAt returns the locked kind at (x, y).
func (e *Engine) CellAt(x, y int) Kind {
	return e.board.CellAt(x, y)
}

// StartOrContinue starts a fresh round from Cancelled or resumes from Paused.
// It does nothing while already playing.
func (e *Engine) StartOrContinue() {
	switch e.phase {
	case PhaseCancelled:
		e.board.Reset()
		e.score = 0
		e.rows = 0
		e.pieces = 0
		e.delay = e.rules.DelayFor(0)
		e.toppedOut = false
		e.current = e.spawn()
		e.next = e.spawn()
		e.setPhase(PhasePlaying)
	case PhasePaused:
		e.setPhase(PhasePlaying)
	}
}

// Pause suspends the round. Pausing while paused is a no-op. A paused
// engine always holds current and next pieces, so Pause from Cancelled
// does nothing.
func (e *Engine) Pause() {
	if e.phase == PhaseCancelled {
		return
	}
	e.setPhase(PhasePaused)
}

// Cancel ends the round and discards the current and next pieces.
func (e *Engine) Cancel() {
	e.current = nil
	e.next = nil
	e.setPhase(PhaseCancelled)
}

// Move shifts the current piece one cell. It reports false when the
// target position collides or no round is playing.
func (e *Engine) Move(dir Direction) bool {
	if e.phase != PhasePlaying || e.current == nil {
		return false
	}
	p := *e.current
	x, y := p.X, p.Y
	switch dir {
	case DirLeft:
		x--
	case DirRight:
		x++
	case DirDown:
		y++
	default:
		return false
	}
	if p.WouldCollide(e.board, x, y, p.Orientation) {
		return false
	}
	moved := p.At(x, y, p.Orientation)
	e.current = &moved
	return true
}

// Rotate turns the current piece in place. There is no wall kick: a
// rotation that would collide is rejected outright.
func (e *Engine) Rotate(dir Direction) bool {
	if e.phase != PhasePlaying || e.current == nil {
		return false
	}
	p := *e.current
	var o Orientation
	switch dir {
	case DirLeft:
		o = p.Orientation.RotateLeft()
	case DirRight:
		o = p.Orientation.RotateRight()
	default:
		return false
	}
	if p.WouldCollide(e.board, p.X, p.Y, o) {
		return false
	}
	rotated := p.At(p.X, p.Y, o)
	e.current = &rotated
	return true
}

// SoftDrop moves the current piece down one row, locking it when it is
// already resting. scoreOnLock adds the lock bonus for a lock.
func (e *Engine) SoftDrop(scoreOnLock bool) DropResult {
	if e.phase != PhasePlaying || e.current == nil {
		return DropIgnored
	}
	if e.Move(DirDown) {
		return DropMoved
	}
	if scoreOnLock {
		e.score += e.rules.LockBonus
	}
	return e.lock(*e.current)
}

// HardDrop drops the current piece to the lowest free position and
// locks it. The lock bonus is always awarded.
func (e *Engine) HardDrop() DropResult {
	if e.phase != PhasePlaying || e.current == nil {
		return DropIgnored
	}
	p := *e.current
	y := p.Y
	for !p.WouldCollide(e.board, p.X, y+1, p.Orientation) {
		y++
	}
	e.score += e.rules.LockBonus
	return e.lock(p.At(p.X, y, p.Orientation))
}

// GhostY returns the row the current piece would land on after a hard drop.
func (e *Engine) GhostY() (int, bool) {
	if e.current == nil {
		return 0, false
	}
	p := *e.current
	y := p.Y
	for !p.WouldCollide(e.board, p.X, y+1, p.Orientation) {
		y++
	}
	return y, true
}

// Dispatch routes a queued player action. Control and unknown actions
// are ignored here.
func (e *Engine) Dispatch(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		e.Move(DirLeft)
	case core.ActionMoveRight:
		e.Move(DirRight)
	case core.ActionMoveDown:
		e.Move(DirDown)
	case core.ActionRotateLeft:
		e.Rotate(DirLeft)
	case core.ActionRotateRight:
		e.Rotate(DirRight)
	case core.ActionHardDrop:
		e.HardDrop()
	}
}

// Tick runs one driver step: it dispatches at most one queued action and
// then advances the drop clock by dt, auto-dropping when the fall delay
// has elapsed. Any lock empties the queue. While not playing nothing is
// processed and the clock is held at zero.
func (e *Engine) Tick(q *core.ActionQueue, clock *DropClock, dt time.Duration) {
	e.tick++
	if e.phase != PhasePlaying {
		clock.Reset()
		return
	}

	locked := e.pieces
	if a, ok := q.Pop(); ok {
		e.Dispatch(a)
	}
	if e.phase == PhasePlaying && clock.Advance(dt, e.delay) {
		e.SoftDrop(true)
	}
	if e.pieces != locked {
		q.Clear()
	}
	if e.phase != PhasePlaying {
		clock.Reset()
	}
}

// DrainEvents returns the events recorded since the last call.
func (e *Engine) DrainEvents() []core.Event {
	ev := e.events
	e.events = nil
	return ev
}

// lock places p, clears rows, updates score and speed and promotes the
// next piece. A promoted piece that collides at spawn ends the round.
func (e *Engine) lock(p Piece) DropResult {
	e.board.Place(p)
	e.pieces++
	e.emit(core.EventLocked, int(p.Kind))

	n := e.board.ClearCompletedRows()
	e.rows += n
	e.delay = e.rules.DelayFor(e.rows)
	e.score += e.rules.LineScore(n)
	if n > 0 {
		e.emit(core.EventLinesCleared, n)
	}

	e.current = e.next
	e.next = e.spawn()
	if e.current.Collides(e.board) {
		e.toppedOut = true
		e.emit(core.EventGameOver, e.score)
		e.Cancel()
		return DropToppedOut
	}
	return DropLocked
}

// spawn draws a uniformly random kind at a random column on row 0.
func (e *Engine) spawn() *Piece {
	k := AllKinds[e.rng.Intn(len(AllKinds))]
	x := e.rng.Intn(BoardWidth - k.Size() + 1)
	return &Piece{Kind: k, X: x, Y: 0, Orientation: 0}
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.phase = p
	e.emit(core.EventPhaseChanged, int(p))
}

func (e *Engine) emit(kind core.EventKind, value int) {
	e.events = append(e.events, core.Event{Kind: kind, Value: value})
}
