package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"h", runeKey('h'), core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"l", runeKey('l'), core.ActionMoveRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionMoveDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateRight},
		{"x", runeKey('x'), core.ActionRotateRight},
		{"z", runeKey('z'), core.ActionRotateLeft},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPause},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('y'), core.ActionNone},
		{"tab is not a game action", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()
	var n int
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 12 {
		t.Errorf("full help lists %d bindings, want 12", n)
	}
}

func TestShortHelpFitsDefaultWidth(t *testing.T) {
	h := help.New()
	h.Width = 80

	view := h.ShortHelpView(DefaultKeyMap().ShortHelp())
	for _, want := range []string{"move", "drop", "more keys", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("short help %q is missing %q", view, want)
		}
	}
	if strings.Contains(view, h.Ellipsis) {
		t.Errorf("short help %q was truncated", view)
	}
}
