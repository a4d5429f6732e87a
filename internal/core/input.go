package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // Left, H - shift piece one column left
	ActionMoveRight          // Right, L - shift piece one column right
	ActionMoveDown           // Down, J - soft drop by one row
	ActionRotateLeft         // Z, Ctrl+Up - rotate counter-clockwise
	ActionRotateRight        // Up, X, K - rotate clockwise
	ActionHardDrop           // Space - drop to the floor and lock
	ActionPause              // Enter, P - start, pause or resume
	ActionCancel             // Esc - abandon the current round
	ActionRestart            // R - cancel and start a fresh round
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveDown:
		return "MoveDown"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsControl reports whether the action changes the game phase rather than
// moving the falling piece. Control actions are applied immediately instead
// of being queued.
func (a Action) IsControl() bool {
	switch a {
	case ActionPause, ActionCancel, ActionRestart, ActionQuit:
		return true
	default:
		return false
	}
}

// InputFrame represents the input for a single player during one simulation tick.
// Actions are kept in the order they were triggered.
type InputFrame struct {
	Actions []Action

	// Elapsed is the real time since the previous tick.
	// Zero means one fixed tick at the configured tick rate.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
	f.Elapsed = 0
}

// ActionQueue is an ordered buffer of pending player actions.
// It has a single producer (input capture) and a single consumer (the tick
// driver) running on the same goroutine, so it is not safe for concurrent use.
type ActionQueue struct {
	items []Action
	head  int
}

// Push appends an action to the back of the queue.
func (q *ActionQueue) Push(a Action) {
	q.items = append(q.items, a)
}

// Pop removes and returns the oldest queued action.
// Returns false when the queue is empty.
func (q *ActionQueue) Pop() (Action, bool) {
	if q.head >= len(q.items) {
		return ActionNone, false
	}
	a := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		// Drained: reuse the backing array
		q.items = q.items[:0]
		q.head = 0
	}
	return a, true
}

// Len returns the number of pending actions.
func (q *ActionQueue) Len() int {
	return len(q.items) - q.head
}

// Clear discards all pending actions.
func (q *ActionQueue) Clear() {
	q.items = q.items[:0]
	q.head = 0
}
