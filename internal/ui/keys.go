package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the badge's two physical inputs (page turn, refresh)
// plus the terminal-only extras.
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "down", "tab"),
			key.WithHelp("→", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "up", "shift+tab"),
			key.WithHelp("←", "prev page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Refresh, k.Help, k.Quit},
	}
}
