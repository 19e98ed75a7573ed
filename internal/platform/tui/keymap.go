package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Reset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.Reset, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "climb"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "descend"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// MapKey translates a key message into an engine event. Keys without a
// binding still produce a key event so "press any key" screens react to
// them. isQuit reports a request to leave the program immediately.
func (k KeyMap) MapKey(msg tea.KeyMsg) (ev core.Event, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Event{}, true
	case key.Matches(msg, k.Left):
		return core.KeyEvent(core.KeyLeft), false
	case key.Matches(msg, k.Right):
		return core.KeyEvent(core.KeyRight), false
	case key.Matches(msg, k.Up):
		return core.KeyEvent(core.KeyUp), false
	case key.Matches(msg, k.Down):
		return core.KeyEvent(core.KeyDown), false
	case key.Matches(msg, k.Select):
		return core.KeyEvent(core.KeyEnter), false
	case key.Matches(msg, k.Back):
		return core.KeyEvent(core.KeyEscape), false
	case key.Matches(msg, k.Reset):
		return core.CharEvent('r'), false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return core.CharEvent(msg.Runes[0]), false
	}
	return core.KeyEvent(core.KeyNone), false
}
