package types

// Focus actions
type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusPrevAction struct{}

func (a FocusPrevAction) Type() string { return "focus_prev" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
