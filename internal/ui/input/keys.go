package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding the controls and the demo app react to
type KeyMap struct {
	// Menu traversal
	Escape key.Binding
	Next   key.Binding
	Prev   key.Binding

	// Button and menu item activation
	Activate key.Binding

	// Application level, only seen when the focused control does not consume the key
	FocusNext key.Binding
	FocusPrev key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave menu")),
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("↓/tab", "next item")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("↑/shift+tab", "previous item")),
		Activate:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter/space", "activate")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "key reference")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Activate, k.Escape, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Escape},
		{k.Activate},
		{k.FocusNext, k.FocusPrev, k.Help, k.Quit, k.ForceQuit},
	}
}
