package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"focuskit/internal/ui/input/types"
)

// Handler routes key events to the focused control first and turns the
// keys it leaves unconsumed into application actions
type Handler struct {
	keys KeyMap
}

func New(keys KeyMap) *Handler {
	return &Handler{keys: keys}
}

// Keys returns the bindings this handler matches against
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey processes a key message and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	if key.Matches(msg, h.keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}
	}

	if focused := ctx.FocusedControl(); focused != nil {
		if focused.HandleKey(msg) {
			return nil
		}
	}

	switch {
	case key.Matches(msg, h.keys.FocusNext):
		return []types.Action{types.FocusNextAction{}}
	case key.Matches(msg, h.keys.FocusPrev):
		return []types.Action{types.FocusPrevAction{}}
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ShowHelpAction{}}
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}
	}
	return nil
}
