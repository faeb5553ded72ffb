package navigation

// Item describes one child of a navigable list as far as focus is concerned
type Item struct {
	Structural bool // separator, never focusable
	Disabled   bool
}

// Eligible reports whether the item can receive keyboard focus
func (i Item) Eligible() bool {
	return !i.Structural && !i.Disabled
}

// State holds all navigation-related state
type State struct {
	FocusIndex      int
	KeyboardFocused bool
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)
