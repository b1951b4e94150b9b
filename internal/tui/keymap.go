package tui

import (
	"charm.land/bubbles/v2/key"
)

// KeyMap defines the keybindings for the editor.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Collapse   key.Binding
	EditRegion key.Binding
	ToggleMode key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Export     key.Binding
	CopyAll    key.Binding
	OpenFile   key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default editor keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter/space", "collapse"),
		),
		EditRegion: key.NewBinding(
			key.WithKeys("e", "i"),
			key.WithHelp("e/i", "edit"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "mode"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "export"),
		),
		CopyAll: key.NewBinding(
			key.WithKeys("ctrl+shift+c"),
			key.WithHelp("ctrl+shift+c", "copy"),
		),
		OpenFile: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
