package types

import tea "github.com/charmbracelet/bubbletea"

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// KeyHandler is a control that can receive key events.
// HandleKey reports whether the event was consumed.
type KeyHandler interface {
	HandleKey(msg tea.KeyMsg) bool
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// FocusedControl returns the control holding focus, or nil
	FocusedControl() KeyHandler
}
