package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	down     = tea.KeyMsg{Type: tea.KeyDown}
	up       = tea.KeyMsg{Type: tea.KeyUp}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	letter   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func sampleItems(activated *[]string) []Item {
	act := func(name string) func() {
		return func() { *activated = append(*activated, name) }
	}
	return []Item{
		{Label: "Open", Action: act("Open")},
		Divider(),
		{Label: "Rename", Disabled: true, Action: act("Rename")},
		{Label: "Delete", Action: act("Delete")},
	}
}

func TestArrowAndTabTraversal(t *testing.T) {
	var activated []string
	m := New(sampleItems(&activated), Options{})

	assert.True(t, m.HandleKey(down))
	assert.Equal(t, 3, m.FocusIndex())
	assert.True(t, m.KeyboardFocused())

	assert.True(t, m.HandleKey(up))
	assert.Equal(t, 0, m.FocusIndex())

	m.HandleKey(tab)
	assert.Equal(t, 3, m.FocusIndex())
	m.HandleKey(shiftTab)
	assert.Equal(t, 0, m.FocusIndex())
}

func TestEscapeLeavesStateAlone(t *testing.T) {
	var activated []string
	escapes := 0
	m := New(sampleItems(&activated), Options{OnEscKeyDown: func() { escapes++ }})
	m.HandleKey(down)
	before := m.nav.State()

	assert.True(t, m.HandleKey(esc))
	assert.Equal(t, 1, escapes)
	assert.Equal(t, before, m.nav.State())
}

func TestOnKeyDownRunsAfterSpecificHandling(t *testing.T) {
	var order []string
	var m *Menu
	m = New([]Item{{Label: "a"}, {Label: "b"}}, Options{
		OnEscKeyDown: func() { order = append(order, "esc") },
		OnKeyDown: func() {
			order = append(order, "keydown")
			assert.Equal(t, 1, m.FocusIndex())
		},
	})

	m.HandleKey(down)
	m.HandleKey(esc)
	assert.Equal(t, []string{"keydown", "esc", "keydown"}, order)
}

func TestEveryKeyIsConsumed(t *testing.T) {
	m := New(nil, Options{})

	assert.True(t, m.HandleKey(letter))
	assert.True(t, m.HandleKey(down))
	assert.True(t, m.HandleKey(esc))
	assert.Equal(t, 0, m.FocusIndex())
}

func TestPointerUpClearsKeyboardFocus(t *testing.T) {
	var activated []string
	m := New(sampleItems(&activated), Options{})
	m.HandleKey(down)
	require.True(t, m.KeyboardFocused())

	assert.True(t, m.PointerUp())
	assert.False(t, m.KeyboardFocused())
	assert.Equal(t, 3, m.FocusIndex())
	assert.Equal(t, []bool{false, false, false, false}, m.FocusFlags())
}

func TestInitiallyKeyboardFocused(t *testing.T) {
	m := New([]Item{{Label: "a"}, {Label: "b"}}, Options{InitiallyKeyboardFocused: true})

	assert.Equal(t, []bool{true, false}, m.FocusFlags())
}

func TestEnterActivatesKeyboardFocusedItem(t *testing.T) {
	var activated []string
	m := New(sampleItems(&activated), Options{})

	m.HandleKey(enter)
	assert.Empty(t, activated, "nothing is keyboard-focused yet")

	m.HandleKey(down)
	m.HandleKey(enter)
	assert.Equal(t, []string{"Delete"}, activated)
}

func TestClickActivatesEligibleRow(t *testing.T) {
	var activated []string
	m := New(sampleItems(&activated), Options{})
	m.HandleKey(down)

	assert.True(t, m.Click(0))
	assert.True(t, m.Click(2))
	assert.True(t, m.Click(9))

	assert.Equal(t, []string{"Open"}, activated)
	assert.False(t, m.KeyboardFocused())
	assert.Equal(t, 3, m.FocusIndex())
}

func TestSetItemsReclampsFocus(t *testing.T) {
	var activated []string
	m := New(sampleItems(&activated), Options{})
	m.HandleKey(down)

	m.SetItems([]Item{{Label: "only"}})
	assert.Equal(t, 0, m.FocusIndex())
	assert.Len(t, m.Items(), 1)
}

func TestLayoutSnapsWidth(t *testing.T) {
	m := New([]Item{{Label: "ab"}}, Options{})
	m.View()
	// 8 units per cell, mobile increment 56: floor of 84 units is 11 cells
	assert.Equal(t, 11, m.Width())

	wide := New([]Item{{Label: strings.Repeat("x", 20)}}, Options{Desktop: true})
	wide.View()
	// 22 cells with padding = 176 units -> 3 increments of 64 = 192 units = 24 cells
	assert.Equal(t, 24, wide.Width())
}

func TestScrollingKeepsFocusVisible(t *testing.T) {
	items := make([]Item, 10)
	for i := range items {
		items[i] = Item{Label: string(rune('a' + i))}
	}
	m := New(items, Options{MaxHeight: 3})

	for i := 0; i < 5; i++ {
		m.HandleKey(down)
	}
	require.Equal(t, 5, m.FocusIndex())
	assert.Equal(t, 3, m.offset)
	assert.Equal(t, 5, m.ItemAtRow(2))
	assert.Equal(t, -1, m.ItemAtRow(3))

	view := m.View()
	assert.Contains(t, view, "f")
	assert.NotContains(t, view, " a ")
	assert.Contains(t, view, "4-6/10", "indicator shows the visible range")

	for i := 0; i < 5; i++ {
		m.HandleKey(up)
	}
	assert.Equal(t, 0, m.offset)
}

func TestNoScrollIndicatorWhenEverythingFits(t *testing.T) {
	m := New([]Item{{Label: "a"}, {Label: "b"}}, Options{MaxHeight: 3})
	assert.NotContains(t, m.View(), "/2")
}

func TestViewRendersSeparatorAcrossWidth(t *testing.T) {
	var activated []string
	m := New(sampleItems(&activated), Options{})
	view := m.View()

	assert.Contains(t, view, strings.Repeat("─", m.Width()))
	assert.Contains(t, view, "Open")
	assert.Contains(t, view, "Rename")
}
