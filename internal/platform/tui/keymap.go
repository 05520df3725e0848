package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap binds terminal keys to game keys. It doubles as the help.KeyMap
// for the footer shown under the playfield.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Confirm    key.Binding
	Next       key.Binding
	Prev       key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Next: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "next level"),
		),
		Prev: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Confirm, k.Next, k.Prev},
		{k.Back, k.Quit, k.Screenshot},
	}
}

// Resolve translates a key message to a game key.
// Back and Quit both resolve to core.KeyQuit; callers that need to tell
// them apart match the bindings directly.
func (k KeyMap) Resolve(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Launch):
		return core.KeyLaunch
	case key.Matches(msg, k.Confirm):
		return core.KeyConfirm
	case key.Matches(msg, k.Next):
		return core.KeyNext
	case key.Matches(msg, k.Prev):
		return core.KeyPrev
	case key.Matches(msg, k.Back), key.Matches(msg, k.Quit):
		return core.KeyQuit
	}
	return core.KeyNone
}

// MenuAction represents a launcher-menu action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a launcher-menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
