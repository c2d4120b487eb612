package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"W", runeKey('W'), core.ActionUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"m", runeKey('m'), core.ActionMute},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, core.ActionResetHighScore},
		{"c", runeKey('c'), core.ActionChangeColor},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"unbound letter", runeKey('x'), core.ActionAnyKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameKeepsRawKey(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('y'), &frame) {
		t.Fatal("y should not quit")
	}
	if km.MapKeyToFrame(runeKey('r'), &frame) {
		t.Fatal("r should not quit")
	}

	events := frame.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0] != (core.KeyEvent{Action: core.ActionAnyKey, Key: "y"}) {
		t.Errorf("events[0] = %+v", events[0])
	}
	// Color selection matches "r" as Red even though it is the restart key.
	if events[1] != (core.KeyEvent{Action: core.ActionRestart, Key: "r"}) {
		t.Errorf("events[1] = %+v", events[1])
	}
}

func TestCtrlCQuitsImmediately(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should request quit")
	}
	if frame.Len() != 0 {
		t.Errorf("ctrl+c should not be queued, got %d events", frame.Len())
	}
}
