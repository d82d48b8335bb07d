package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start   key.Binding
	Stop    key.Binding
	Config  key.Binding
	Clear   key.Binding
	Refresh key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding

	// Form and palette navigation.
	Next   key.Binding
	Submit key.Binding
	Back   key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	Config: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "config"),
	),
	Clear: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "clear logs"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "wallets"),
	),
	Palette: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "commands"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "up", "down"),
		key.WithHelp("tab", "next field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// ShortHelp returns a compact list for the help bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Config, k.Clear, k.Refresh, k.Palette, k.Quit}
}

// FullHelp returns grouped bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop},
		{k.Config, k.Clear, k.Refresh},
		{k.Palette, k.Next, k.Submit, k.Back},
		{k.Help, k.Quit},
	}
}
