// Package iconbutton implements a single activatable control that tells
// keyboard-origin focus apart from pointer interaction.
package iconbutton

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuskit/internal/ui/components/ripple"
	"focuskit/internal/ui/input"
	"focuskit/internal/ui/views"
)

const defaultTabIndex = 0

// Options configures a Button. All callbacks are optional.
type Options struct {
	Icon    string
	Label   string
	Tooltip string

	Disabled           bool
	DisableTouchRipple bool
	TabIndex           *int // nil means the default order

	Action  func()
	OnFocus func()
	OnBlur  func()

	Keys   *input.KeyMap
	Styles *views.Styles
}

// Attributes is the accessibility contract exposed to the owner
type Attributes struct {
	Role         string
	AriaDisabled bool
	TabIndex     *int // nil removes the control from tab order
}

// Button is the icon button control
type Button struct {
	opts              Options
	keys              input.KeyMap
	styles            *views.Styles
	focusFromKeyboard bool
	pressed           bool // cleared by the next render
}

// New creates a button. Keys and Styles fall back to defaults when nil.
func New(opts Options) *Button {
	b := &Button{opts: opts}
	if opts.Keys != nil {
		b.keys = *opts.Keys
	} else {
		b.keys = input.DefaultKeyMap()
	}
	if opts.Styles != nil {
		b.styles = opts.Styles
	} else {
		b.styles = views.NewStyles()
	}
	return b
}

// Label returns the button label
func (b *Button) Label() string {
	return b.opts.Label
}

// Disabled reports whether the button is disabled
func (b *Button) Disabled() bool {
	return b.opts.Disabled
}

// SetDisabled updates the externally supplied disabled flag
func (b *Button) SetDisabled(disabled bool) {
	b.opts.Disabled = disabled
}

// SetAction replaces the activation callback
func (b *Button) SetAction(action func()) {
	b.opts.Action = action
}

// FocusedViaKeyboard reports whether the button holds keyboard-origin focus
func (b *Button) FocusedViaKeyboard() bool {
	return b.focusFromKeyboard
}

// Focus is called when the button gains input focus.
// The origin of the focus is not inspected, so a pointer press that also
// focuses the button marks it keyboard-focused too.
func (b *Button) Focus() {
	b.focusFromKeyboard = true
	if b.opts.OnFocus != nil {
		b.opts.OnFocus()
	}
}

// Blur is called when the button loses input focus
func (b *Button) Blur() {
	b.focusFromKeyboard = false
	if b.opts.OnBlur != nil {
		b.opts.OnBlur()
	}
}

// PointerActivate runs the action unless the button is disabled
func (b *Button) PointerActivate() {
	if b.opts.Disabled || b.opts.Action == nil {
		return
	}
	b.opts.Action()
}

// PointerDown delivers a pointer press through the ripple
func (b *Button) PointerDown() bool {
	handled := b.ripple().HandlePointerDown()
	b.pressed = handled
	return handled
}

// HandleKey activates on Enter or Space while keyboard-focused and enabled.
// It reports whether the key was consumed.
func (b *Button) HandleKey(msg tea.KeyMsg) bool {
	if !key.Matches(msg, b.keys.Activate) || b.opts.Disabled || !b.focusFromKeyboard {
		return false
	}
	if b.opts.Action != nil {
		b.opts.Action()
	}
	return true
}

// Attributes returns the accessibility attributes for the current state
func (b *Button) Attributes() Attributes {
	attrs := Attributes{
		Role:         "button",
		AriaDisabled: b.opts.Disabled,
	}
	if !b.opts.Disabled {
		idx := defaultTabIndex
		if b.opts.TabIndex != nil {
			idx = *b.opts.TabIndex
		}
		attrs.TabIndex = &idx
	}
	return attrs
}

// Highlighted reports whether the keyboard-focus background is shown
func (b *Button) Highlighted() bool {
	return b.focusFromKeyboard && !b.opts.Disabled
}

// Pulse reports whether the ripple pulse is shown
func (b *Button) Pulse() bool {
	return b.focusFromKeyboard && !b.opts.Disabled
}

// View renders the button
func (b *Button) View() string {
	style := b.styles.Button
	if b.opts.Disabled {
		style = b.styles.ButtonDisabled
	} else if b.Highlighted() {
		style = style.Inherit(b.styles.ButtonHover)
	}

	content := strings.TrimSpace(b.opts.Icon + " " + b.opts.Label)
	view := b.ripple().View(content, style)
	b.pressed = false

	if b.opts.Tooltip != "" && b.Highlighted() {
		view = lipgloss.JoinVertical(lipgloss.Left, view, b.styles.Tooltip.Render(b.opts.Tooltip))
	}
	return view
}

func (b *Button) ripple() ripple.Ripple {
	return ripple.Ripple{
		Pulse:        b.Pulse(),
		Pressed:      b.pressed,
		Disabled:     b.opts.Disabled,
		DisableTouch: b.opts.DisableTouchRipple,
		PointerDown:  b.PointerActivate,
		PulseStyle:   b.styles.Pulse,
	}
}
