package navigation

// Service handles keyboard focus traversal over a list of items
type Service struct {
	state State
	items []Item

	// OnChange is called after every committed state change
	OnChange func(State)
}

// NewService creates a new navigation service
func NewService(items []Item, keyboardFocused bool) *Service {
	return &Service{
		state: State{
			FocusIndex:      0,
			KeyboardFocused: keyboardFocused,
		},
		items: items,
	}
}

// State returns a copy of the current state
func (s *Service) State() State {
	return s.state
}

// FocusIndex returns the index of the last keyboard-focused item
func (s *Service) FocusIndex() int {
	return s.state.FocusIndex
}

// KeyboardFocused reports whether the item at FocusIndex renders as keyboard-focused
func (s *Service) KeyboardFocused() bool {
	return s.state.KeyboardFocused
}

// Items returns the current item descriptors
func (s *Service) Items() []Item {
	return s.items
}

// SetItems replaces the item collection and re-clamps the focus index
func (s *Service) SetItems(items []Item) {
	s.items = items
	s.state.FocusIndex = s.clampIndex(s.state.FocusIndex)
}

// Navigate moves keyboard focus one eligible item in the given direction.
// Stepping holds at the boundary rather than wrapping; when no eligible item
// lies ahead the boundary index is committed anyway.
func (s *Service) Navigate(direction Direction) {
	if len(s.items) == 0 {
		return
	}

	step, boundary := 1, len(s.items)-1
	if direction == DirectionUp {
		step, boundary = -1, 0
	}

	index := s.clampIndex(s.state.FocusIndex)
	for {
		index = s.clampIndex(index + step)
		if s.items[index].Eligible() || index == boundary {
			break
		}
	}

	s.commit(index, true)
}

// ClearKeyboardFocus drops keyboard focus styling without moving the index
func (s *Service) ClearKeyboardFocus() {
	s.commit(s.state.FocusIndex, false)
}

// Focused reports whether the item at index should render as keyboard-focused
func (s *Service) Focused(index int) bool {
	return s.state.KeyboardFocused && index == s.state.FocusIndex
}

// FocusedItem returns the keyboard-focused index, or -1 when nothing is focused
func (s *Service) FocusedItem() int {
	if !s.state.KeyboardFocused || len(s.items) == 0 {
		return -1
	}
	return s.state.FocusIndex
}

func (s *Service) commit(index int, keyboardFocused bool) {
	s.state.FocusIndex = index
	s.state.KeyboardFocused = keyboardFocused
	if s.OnChange != nil {
		s.OnChange(s.state)
	}
}

func (s *Service) clampIndex(index int) int {
	if index > len(s.items)-1 {
		index = len(s.items) - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

// FocusFlags projects navigation state onto per-item "keyboard-focused" flags.
// Structural items are always false.
func FocusFlags(items []Item, focusIndex int, keyboardFocused bool) []bool {
	flags := make([]bool, len(items))
	for i, item := range items {
		if item.Structural {
			continue
		}
		flags[i] = keyboardFocused && i == focusIndex
	}
	return flags
}
