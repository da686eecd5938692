package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/input/types"
)

// AddWidgetMode drives the add widget dialog. Keys it doesn't consume are
// typed into the focused form field by the handler.
type AddWidgetMode struct{}

func NewAddWidgetMode() *AddWidgetMode {
	return &AddWidgetMode{}
}

func (m *AddWidgetMode) Name() string {
	return "add-widget"
}

func (m *AddWidgetMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *AddWidgetMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *AddWidgetMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Closing works even while a submit is pending
		return []types.Action{
			types.CloseDialogAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "tab", "shift+tab":
		return []types.Action{types.NextFieldAction{}}, true
	case "ctrl+s":
		return []types.Action{types.SubmitWidgetAction{}}, true
	default:
		return nil, false
	}
}
