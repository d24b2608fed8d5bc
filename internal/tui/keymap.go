package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Input
	NextField key.Binding
	PrevField key.Binding
	OpenFile  key.Binding
	LoadFile  key.Binding

	// Actions
	Analyze key.Binding
	Back    key.Binding

	// Report
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Application
	Quit        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous field"),
		),
		OpenFile: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("Ctrl+O", "choose file"),
		),
		LoadFile: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "load file"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("ctrl+r", "f5"),
			key.WithHelp("Ctrl+R", "analyze"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("Esc", "back to analyzer"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll report up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll report down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("Ctrl+C", "quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.NextField, k.OpenFile, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.OpenFile, k.LoadFile},
		{k.Analyze, k.Back},
		{k.ScrollUp, k.ScrollDown},
		{k.Quit, k.ClearScreen},
	}
}
