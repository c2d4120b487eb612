package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the game key bindings. Keys without a binding still reach
// the game as ActionAnyKey with their raw name.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Mute        key.Binding
	Restart     key.Binding
	Quit        key.Binding
	ResetHigh   key.Binding
	ChangeColor key.Binding
	Confirm     key.Binding
	ForceQuit   key.Binding
	Screenshot  key.Binding
}

// DefaultKeyMap returns the standard bindings: WASD and arrows to steer.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d/→", "right"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "toggle music"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		ResetHigh: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "reset high score"),
		),
		ChangeColor: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "change color"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to a game action.
// Keys that are not bound map to ActionAnyKey.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.ResetHigh):
		return core.ActionResetHighScore
	case key.Matches(msg, k.ChangeColor):
		return core.ActionChangeColor
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	}
	return core.ActionAnyKey
}

// MapKeyToFrame queues the key in the input frame.
// Returns true if the key asks to leave the program immediately.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.ForceQuit) {
		return true
	}
	frame.Add(k.MapKey(msg), msg.String())
	return false
}
