package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Finish  key.Binding
}

// DefaultKeyMap returns arrows, WASD and vim keys for moves.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Up:      key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("↓/s", "down")),
		Left:    key.NewBinding(key.WithKeys("a", "left", "h"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("d", "right", "l"), key.WithHelp("→/d", "right")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Finish:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "finish")),
	}
}

func (k KeyMap) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Finish, core.ActionFinish},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range k.actions() {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to frame and reports a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
