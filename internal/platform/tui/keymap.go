package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
)

// KeyMap binds terminal keys to held keys and one-shot actions.
// It also satisfies help.KeyMap for the help line under the playfield.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Menu    key.Binding
	Quit    key.Binding
	Shot    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "z"),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Fire},
		{k.Start, k.Pause, k.Restart, k.Menu},
		{k.Shot, k.Quit},
	}
}

// MapKey translates a key message. It returns the held key (may be
// KeyNone) and the one-shot action (may be ActionNone).
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, core.Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyNone, core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.KeyUp, core.ActionNone
	case key.Matches(msg, k.Down):
		return core.KeyDown, core.ActionNone
	case key.Matches(msg, k.Left):
		return core.KeyLeft, core.ActionNone
	case key.Matches(msg, k.Right):
		return core.KeyRight, core.ActionNone
	case key.Matches(msg, k.Fire):
		return core.KeyFire, core.ActionNone
	case key.Matches(msg, k.Start):
		return core.KeyNone, core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.KeyNone, core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.KeyNone, core.ActionRestart
	case key.Matches(msg, k.Menu):
		return core.KeyNone, core.ActionMenu
	}
	return core.KeyNone, core.ActionNone
}

// Apply feeds a key message into the input producer. It reports whether
// the key was a quit request.
func (k KeyMap) Apply(msg tea.KeyMsg, in *core.InputState, at time.Time) bool {
	held, action := k.MapKey(msg)
	if held != core.KeyNone {
		in.Press(held, at)
	}
	if action != core.ActionNone {
		in.Trigger(action, at)
	}
	return action == core.ActionQuit
}
