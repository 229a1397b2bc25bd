package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the shell screen.
type KeyMap struct {
	Submit      key.Binding
	Complete    key.Binding
	HistoryUp   key.Binding
	HistoryDown key.Binding
	Left        key.Binding
	Right       key.Binding
	Home        key.Binding
	End         key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	ClearScreen key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		HistoryUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		HistoryDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "ctrl+b"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "ctrl+f"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// HelpText returns the one-line help shown under the prompt.
func (k KeyMap) HelpText() string {
	return "enter run • tab complete • ↑/↓ history • pgup/pgdn scroll • ctrl+l clear • ctrl+c quit"
}
