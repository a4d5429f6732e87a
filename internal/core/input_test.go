package core

import (
	"testing"
	"time"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveLeft)
	f.Set(ActionNone)
	f.Set(ActionRotateRight)
	f.Set(ActionMoveLeft)

	want := []Action{ActionMoveLeft, ActionRotateRight, ActionMoveLeft}
	if len(f.Actions) != len(want) {
		t.Fatalf("len(Actions) = %d, expected %d", len(f.Actions), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveDown)
	f.Elapsed = 16 * time.Millisecond

	f.Clear()
	if len(f.Actions) != 0 || f.Elapsed != 0 {
		t.Errorf("after Clear: Actions=%v Elapsed=%v, want empty", f.Actions, f.Elapsed)
	}
}

func TestActionQueueFIFO(t *testing.T) {
	var q ActionQueue
	q.Push(ActionMoveLeft)
	q.Push(ActionMoveRight)
	q.Push(ActionHardDrop)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	for _, want := range []Action{ActionMoveLeft, ActionMoveRight} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %v, %v; expected %v, true", got, ok, want)
		}
	}

	// Interleaved push keeps order after partial drain
	q.Push(ActionRotateLeft)
	for _, want := range []Action{ActionHardDrop, ActionRotateLeft} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %v, %v; expected %v, true", got, ok, want)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should return false")
	}
}

func TestActionQueueClear(t *testing.T) {
	var q ActionQueue
	q.Push(ActionMoveDown)
	q.Push(ActionMoveDown)
	q.Pop()
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() after Clear should return false")
	}
}

func TestActionIsControl(t *testing.T) {
	control := []Action{ActionPause, ActionCancel, ActionRestart, ActionQuit}
	for _, a := range control {
		if !a.IsControl() {
			t.Errorf("%v should be a control action", a)
		}
	}
	movement := []Action{ActionMoveLeft, ActionMoveRight, ActionMoveDown, ActionRotateLeft, ActionRotateRight, ActionHardDrop}
	for _, a := range movement {
		if a.IsControl() {
			t.Errorf("%v should not be a control action", a)
		}
	}
}
