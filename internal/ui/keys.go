package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	FocusSearch key.Binding
	Escape      key.Binding
	NewDesign   key.Binding

	// Focus
	FocusNext key.Binding
	FocusPrev key.Binding
	Forward   key.Binding
	Back      key.Binding
	Activate  key.Binding

	// Extras
	Console      key.Binding
	CopyLocation key.Binding
	DebugLog     key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Close        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "Search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search / close dialog"),
		),
		NewDesign: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "Create a design"),
		),

		// Focus
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next element"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous element"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "down", "l", "j"),
			key.WithHelp("→/↓", "Move forward"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←/↑", "Move back"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Select"),
		),

		// Extras
		Console: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle activity console"),
		),
		CopyLocation: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy editor location"),
		),
		DebugLog: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Toggle debug logging"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Console page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Console page down"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "Close dialog"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.NewDesign, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.Forward, k.Back, k.Activate},
		{k.FocusSearch, k.Escape, k.NewDesign},
		{k.Console, k.PageUp, k.PageDown, k.CopyLocation, k.DebugLog},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
