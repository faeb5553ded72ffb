// Package menu implements a keyboard-navigable list of items with
// separators and disabled entries.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuskit/internal/ui/input"
	"focuskit/internal/ui/services/navigation"
	"focuskit/internal/ui/services/sizing"
	"focuskit/internal/ui/views"
)

// DefaultUnitsPerCell converts terminal cells to layout units for width snapping
const DefaultUnitsPerCell = 8

// Item is one menu entry
type Item struct {
	Label     string
	Disabled  bool
	Separator bool
	Action    func()
}

// Divider returns a separator item
func Divider() Item {
	return Item{Separator: true}
}

// Options configures a Menu. All callbacks are optional.
type Options struct {
	Desktop                  bool
	InitiallyKeyboardFocused bool
	MaxHeight                int // rows; 0 disables scrolling
	UnitsPerCell             float64

	OnEscKeyDown func()
	OnKeyDown    func()

	Keys   *input.KeyMap
	Styles *views.Styles
}

// Menu is the navigable list control
type Menu struct {
	opts     Options
	keys     input.KeyMap
	styles   *views.Styles
	items    []Item
	nav      *navigation.Service
	keyWidth float64

	width    int // explicit width written by the last layout pass
	offset   int // first visible row when scrolling
	viewport viewport.Model
	active   bool
}

// New creates a menu over items
func New(items []Item, opts Options) *Menu {
	m := &Menu{
		opts:     opts,
		items:    items,
		keyWidth: sizing.Increment(opts.Desktop),
		viewport: viewport.New(0, opts.MaxHeight),
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	} else {
		m.keys = input.DefaultKeyMap()
	}
	if opts.Styles != nil {
		m.styles = opts.Styles
	} else {
		m.styles = views.NewStyles()
	}
	if m.opts.UnitsPerCell <= 0 {
		m.opts.UnitsPerCell = DefaultUnitsPerCell
	}

	m.nav = navigation.NewService(descriptors(items), opts.InitiallyKeyboardFocused)
	m.nav.OnChange = func(navigation.State) { m.ensureVisible() }
	return m
}

func descriptors(items []Item) []navigation.Item {
	out := make([]navigation.Item, len(items))
	for i, it := range items {
		out[i] = navigation.Item{Structural: it.Separator, Disabled: it.Disabled}
	}
	return out
}

// Items returns the menu items
func (m *Menu) Items() []Item {
	return m.items
}

// SetItems replaces the items, keeping the focus index in range
func (m *Menu) SetItems(items []Item) {
	m.items = items
	m.nav.SetItems(descriptors(items))
	m.ensureVisible()
}

// FocusIndex returns the index of the last keyboard-focused item
func (m *Menu) FocusIndex() int {
	return m.nav.FocusIndex()
}

// KeyboardFocused reports whether the item at FocusIndex shows keyboard focus
func (m *Menu) KeyboardFocused() bool {
	return m.nav.KeyboardFocused()
}

// FocusFlags returns the per-item keyboard-focused flags used for rendering
func (m *Menu) FocusFlags() []bool {
	return navigation.FocusFlags(m.nav.Items(), m.nav.FocusIndex(), m.nav.KeyboardFocused())
}

// Width returns the width in cells written by the last layout pass
func (m *Menu) Width() int {
	return m.width
}

// SetActive marks whether the menu holds application focus
func (m *Menu) SetActive(active bool) {
	m.active = active
}

// Active reports whether the menu holds application focus
func (m *Menu) Active() bool {
	return m.active
}

// HandleKey handles escape, traversal and item activation keys.
// Every key is consumed.
func (m *Menu) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Escape):
		if m.opts.OnEscKeyDown != nil {
			m.opts.OnEscKeyDown()
		}
	case key.Matches(msg, m.keys.Next):
		m.nav.Navigate(navigation.DirectionDown)
	case key.Matches(msg, m.keys.Prev):
		m.nav.Navigate(navigation.DirectionUp)
	case key.Matches(msg, m.keys.Activate):
		if idx := m.nav.FocusedItem(); idx >= 0 {
			m.ActivateItem(idx)
		}
	}

	if m.opts.OnKeyDown != nil {
		m.opts.OnKeyDown()
	}
	return true
}

// PointerUp clears keyboard focus styling. The focus index is kept.
func (m *Menu) PointerUp() bool {
	m.nav.ClearKeyboardFocus()
	return true
}

// Click handles a pointer release on a visible row, activating the item under it
func (m *Menu) Click(row int) bool {
	idx := m.ItemAtRow(row)
	m.PointerUp()
	if idx >= 0 {
		m.ActivateItem(idx)
	}
	return true
}

// ItemAtRow maps a visible row to an item index, or -1
func (m *Menu) ItemAtRow(row int) int {
	if row < 0 || (m.scrolling() && row >= m.opts.MaxHeight) {
		return -1
	}
	idx := row
	if m.scrolling() {
		idx += m.offset
	}
	if idx >= len(m.items) {
		return -1
	}
	return idx
}

// ActivateItem runs the action of an eligible item and reports whether it was eligible
func (m *Menu) ActivateItem(index int) bool {
	if index < 0 || index >= len(m.items) {
		return false
	}
	it := m.items[index]
	if it.Separator || it.Disabled {
		return false
	}
	if it.Action != nil {
		it.Action()
	}
	return true
}

func (m *Menu) scrolling() bool {
	return m.opts.MaxHeight > 0 && len(m.items) > m.opts.MaxHeight
}

// ensureVisible keeps the focused row inside the scroll window
func (m *Menu) ensureVisible() {
	if !m.scrolling() {
		m.offset = 0
		return
	}
	idx := m.nav.FocusIndex()
	if idx < m.offset {
		m.offset = idx
	} else if idx >= m.offset+m.opts.MaxHeight {
		m.offset = idx - m.opts.MaxHeight + 1
	}
	if maxOffset := len(m.items) - m.opts.MaxHeight; m.offset > maxOffset {
		m.offset = maxOffset
	}
}

// layout snaps the measured content width and stores it as the explicit width
func (m *Menu) layout(measured int) {
	m.width = sizing.SnapCells(measured, m.keyWidth, m.opts.UnitsPerCell)
}

// scrollIndicator shows the visible range below a clipped list
func (m *Menu) scrollIndicator() string {
	last := min(m.offset+m.opts.MaxHeight, len(m.items))
	text := fmt.Sprintf("%d-%d/%d", m.offset+1, last, len(m.items))
	return m.styles.Scroll.Width(m.width).Align(lipgloss.Right).Render(text)
}

// View renders the menu, running a layout pass first
func (m *Menu) View() string {
	measured := 0
	for _, it := range m.items {
		if it.Separator {
			continue
		}
		if w := lipgloss.Width(m.styles.Item.Render(it.Label)); w > measured {
			measured = w
		}
	}
	m.layout(measured)

	flags := m.FocusFlags()
	lines := make([]string, len(m.items))
	for i, it := range m.items {
		switch {
		case it.Separator:
			lines[i] = m.styles.Separator.Render(strings.Repeat("─", m.width))
		case flags[i]:
			lines[i] = m.styles.ItemFocused.Width(m.width).Render(it.Label)
		case it.Disabled:
			lines[i] = m.styles.ItemDisabled.Width(m.width).Render(it.Label)
		default:
			lines[i] = m.styles.Item.Width(m.width).Render(it.Label)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.scrolling() {
		m.viewport.Width = m.width
		m.viewport.Height = m.opts.MaxHeight
		m.viewport.SetContent(body)
		m.viewport.SetYOffset(m.offset)
		body = lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.scrollIndicator())
	}

	frame := m.styles.Menu
	if m.active {
		frame = m.styles.MenuFocused
	}
	return frame.Render(body)
}
