package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI.
// Each component gets its own instance; nothing here is shared global state.
type Styles struct {
	Title lipgloss.Style
	Help  lipgloss.Style

	// Icon button
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonHover    lipgloss.Style // keyboard-focused background
	Pulse          lipgloss.Style
	Tooltip        lipgloss.Style

	// Menu
	Menu         lipgloss.Style
	MenuFocused  lipgloss.Style // border when the menu holds focus
	Item         lipgloss.Style
	ItemFocused  lipgloss.Style
	ItemDisabled lipgloss.Style
	Separator    lipgloss.Style
	Scroll       lipgloss.Style

	Status        lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Help: lipgloss.NewStyle().Faint(true),

		Button:         lipgloss.NewStyle().Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240")),
		ButtonHover:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Pulse:          lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Tooltip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),

		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		MenuFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		Item:         lipgloss.NewStyle().Padding(0, 1),
		ItemFocused:  lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Bold(true),
		ItemDisabled: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240")),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
