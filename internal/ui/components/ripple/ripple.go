// Package ripple renders the pulse affordance around an activatable control
// and turns pointer presses into activation callbacks.
package ripple

import (
	"github.com/charmbracelet/lipgloss"
)

// Ripple is a stateless feedback wrapper. The owner rebuilds it on every
// render from its current state.
type Ripple struct {
	Pulse        bool // show the focus pulse
	Pressed      bool // a pointer press landed since the last render
	Disabled     bool
	DisableTouch bool // pointer activation still fires, but no press feedback is drawn
	PointerDown  func()

	PulseStyle lipgloss.Style
}

// View wraps content in the given style and the feedback markers.
// The focus pulse wins over press feedback.
func (r Ripple) View(content string, style lipgloss.Style) string {
	body := style.Render(content)
	switch {
	case r.Pulse:
		return r.PulseStyle.Render("›") + body + r.PulseStyle.Render("‹")
	case r.Pressed && !r.DisableTouch && !r.Disabled:
		return r.PulseStyle.Render("·") + body + r.PulseStyle.Render("·")
	}
	return " " + body + " "
}

// HandlePointerDown forwards a pointer press unless disabled.
// Returns true when the press was handled.
func (r Ripple) HandlePointerDown() bool {
	if r.Disabled {
		return false
	}
	if r.PointerDown != nil {
		r.PointerDown()
	}
	return true
}
