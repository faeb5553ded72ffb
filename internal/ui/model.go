package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focuskit/internal/config"
	"focuskit/internal/eventbus"
	"focuskit/internal/ui/components/iconbutton"
	"focuskit/internal/ui/components/menu"
	"focuskit/internal/ui/input"
	inputtypes "focuskit/internal/ui/input/types"
	"focuskit/internal/ui/views"
)

const (
	noFocus       = -1
	toolbarGap    = 1
	toolbarTopRow = 2 // title, blank line
)

// zone is one focusable control in the demo layout
type zone struct {
	name   string
	button *iconbutton.Button
	menu   *menu.Menu
}

func (z zone) tabIndex() *int {
	if z.button != nil {
		return z.button.Attributes().TabIndex
	}
	zero := 0
	return &zero
}

// span is the horizontal extent of a rendered button
type span struct {
	x0, x1 int
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	styles    *views.Styles
	keys      input.KeyMap

	width  int
	height int
	help   help.Model

	zones     []zone
	menuZone  int
	focused   int
	unlocked  bool
	status    string
	statusErr bool

	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// layout of the last View, for pointer hit testing
	buttonSpans []span
	menuTop     int

	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService) *Model {
	keys := input.DefaultKeyMap()
	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		styles:       views.NewStyles(),
		keys:         keys,
		help:         help.New(),
		focused:      noFocus,
		inputHandler: input.New(keys),
		helpRenderer: NewHelpRenderer(keys),
	}

	for _, bc := range cfg.Buttons {
		m.zones = append(m.zones, zone{name: bc.Label, button: m.newButton(bc)})
	}

	mn := menu.New(m.menuItems(cfg.Menu.Items), menu.Options{
		Desktop:                  cfg.Menu.Desktop,
		InitiallyKeyboardFocused: cfg.Menu.InitiallyKeyboardFocused,
		MaxHeight:                cfg.Menu.MaxHeight,
		UnitsPerCell:             cfg.UISettings.UnitsPerCell,
		OnEscKeyDown: func() {
			m.bus.Publish(eventbus.MenuEscapedEvent{})
			m.focusFirst()
		},
		Keys:   &m.keys,
		Styles: m.styles,
	})
	m.menuZone = len(m.zones)
	m.zones = append(m.zones, zone{name: "menu", menu: mn})

	return m
}

func (m *Model) newButton(bc config.ButtonConfig) *iconbutton.Button {
	command := bc.Command
	label := bc.Label
	return iconbutton.New(iconbutton.Options{
		Icon:     bc.Icon,
		Label:    bc.Label,
		Tooltip:  bc.Tooltip,
		Disabled: bc.Disabled,
		TabIndex: bc.TabIndex,
		Action: func() {
			m.bus.Publish(eventbus.ActionInvokedEvent{Control: label})
			m.runCommand(command)
		},
		Keys:   &m.keys,
		Styles: m.styles,
	})
}

func (m *Model) menuItems(items []config.ItemConfig) []menu.Item {
	out := make([]menu.Item, len(items))
	for i, it := range items {
		if it.Separator {
			out[i] = menu.Divider()
			continue
		}
		index, label := i, it.Label
		out[i] = menu.Item{
			Label:    it.Label,
			Disabled: it.Disabled && !m.unlocked,
			Action: func() {
				m.bus.Publish(eventbus.MenuItemActivatedEvent{Index: index, Label: label})
			},
		}
	}
	return out
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Menu returns the menu control
func (m *Model) Menu() *menu.Menu {
	return m.zones[m.menuZone].menu
}

// Buttons returns the toolbar buttons in layout order
func (m *Model) Buttons() []*iconbutton.Button {
	buttons := make([]*iconbutton.Button, 0, len(m.zones)-1)
	for _, z := range m.zones {
		if z.button != nil {
			buttons = append(buttons, z.button)
		}
	}
	return buttons
}

// FocusedName returns the name of the focused control, or "" when nothing has focus
func (m *Model) FocusedName() string {
	if m.focused == noFocus {
		return ""
	}
	return m.zones[m.focused].name
}

// FocusedControl implements inputtypes.Context
func (m *Model) FocusedControl() inputtypes.KeyHandler {
	if m.focused == noFocus {
		return nil
	}
	z := m.zones[m.focused]
	if z.button != nil {
		return z.button
	}
	return z.menu
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, m) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		switch len(cmds) {
		case 0:
			return m, nil
		case 1:
			return m, cmds[0]
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.setStatus(fmt.Sprintf("Help pager failed: %v", msg.err), true)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch action.(type) {
	case inputtypes.FocusNextAction:
		m.moveFocus(1)
	case inputtypes.FocusPrevAction:
		m.moveFocus(-1)
	case inputtypes.ShowHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// tabOrder returns zone indices in focus order: positive tab indices
// ascending, then tab index 0 in layout order. Zones without a tab index
// or with a negative one are skipped.
func (m *Model) tabOrder() []int {
	var order []int
	for i, z := range m.zones {
		if idx := z.tabIndex(); idx != nil && *idx >= 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := *m.zones[order[a]].tabIndex(), *m.zones[order[b]].tabIndex()
		if ta == 0 || tb == 0 {
			return ta != 0 && tb == 0
		}
		return ta < tb
	})
	return order
}

func (m *Model) moveFocus(delta int) {
	order := m.tabOrder()
	if len(order) == 0 {
		return
	}

	pos := -1
	for i, z := range order {
		if z == m.focused {
			pos = i
			break
		}
	}

	var next int
	switch {
	case pos == -1 && delta > 0:
		next = 0
	case pos == -1:
		next = len(order) - 1
	default:
		next = (pos + delta + len(order)) % len(order)
	}
	m.setFocus(order[next])
}

// focusFirst moves focus to the first control in tab order
func (m *Model) focusFirst() {
	if order := m.tabOrder(); len(order) > 0 {
		m.setFocus(order[0])
	}
}

func (m *Model) setFocus(idx int) {
	if idx == m.focused {
		return
	}
	from := m.FocusedName()

	if m.focused != noFocus {
		old := m.zones[m.focused]
		if old.button != nil {
			old.button.Blur()
		} else {
			old.menu.SetActive(false)
		}
	}

	m.focused = idx
	if idx != noFocus {
		z := m.zones[idx]
		if z.button != nil {
			z.button.Focus()
		} else {
			z.menu.SetActive(true)
		}
	}

	m.bus.Publish(eventbus.FocusChangedEvent{From: from, To: m.FocusedName()})
}

// handleMouse routes pointer presses to toolbar buttons and releases to the menu
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != toolbarTopRow {
			return
		}
		for i, s := range m.buttonSpans {
			if msg.X >= s.x0 && msg.X < s.x1 {
				b := m.zones[i].button
				// disabled buttons are not focusable by pointer either
				if b.Attributes().TabIndex != nil {
					m.setFocus(i)
				}
				b.PointerDown()
				return
			}
		}

	case tea.MouseActionRelease:
		mn := m.Menu()
		menuHeight := lipgloss.Height(mn.View())
		if msg.Y < m.menuTop || msg.Y >= m.menuTop+menuHeight {
			return
		}
		m.setFocus(m.menuZone)
		// the first row inside the border is item 0
		mn.Click(msg.Y - m.menuTop - 1)
	}
}

// handleEvent updates the status line from domain events
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ActionInvokedEvent:
		m.setStatus(fmt.Sprintf("Ran %s", e.Control), false)
	case eventbus.MenuItemActivatedEvent:
		m.setStatus(fmt.Sprintf("Activated %q", e.Label), false)
	case eventbus.MenuEscapedEvent:
		m.setStatus("Left the menu", false)
	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
	}
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// runCommand executes a toolbar button command
func (m *Model) runCommand(command string) {
	switch command {
	case config.CommandReload:
		cfg, err := m.configSvc.Load()
		if err != nil {
			log.Printf("Failed to reload config: %v", err)
			m.bus.Publish(eventbus.ErrorEvent{Message: "Reload failed", Err: err})
			return
		}
		m.config.Menu.Items = cfg.Menu.Items
		m.Menu().SetItems(m.menuItems(m.config.Menu.Items))
	case config.CommandUnlock:
		m.unlocked = !m.unlocked
		m.Menu().SetItems(m.menuItems(m.config.Menu.Items))
	}
}

func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("focuskit"))
	b.WriteString("\n\n")

	cells := make([]string, 0, 2*len(m.zones))
	m.buttonSpans = m.buttonSpans[:0]
	x := 0
	for _, z := range m.zones {
		if z.button == nil {
			continue
		}
		v := z.button.View()
		w := lipgloss.Width(v)
		m.buttonSpans = append(m.buttonSpans, span{x0: x, x1: x + w})
		x += w + toolbarGap
		cells = append(cells, v, strings.Repeat(" ", toolbarGap))
	}
	toolbar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	b.WriteString(toolbar)
	b.WriteString("\n\n")

	m.menuTop = toolbarTopRow + lipgloss.Height(toolbar) + 1
	b.WriteString(m.Menu().View())
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.StatusSuccess
		if m.statusErr {
			style = m.styles.StatusWarning
		}
		b.WriteString(m.styles.Status.Render(style.Render(m.status)))
		b.WriteString("\n")
	}

	if !m.config.UISettings.HideHelp {
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	}

	return b.String()
}
