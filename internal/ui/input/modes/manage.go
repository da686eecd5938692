package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/input/types"
)

// ManageMode drives the widget management dialog: per-widget toggles and
// bulk actions over the checked widgets
type ManageMode struct {
	list listKeys
}

func NewManageMode() *ManageMode {
	return &ManageMode{}
}

func (m *ManageMode) Name() string {
	return "manage"
}

func (m *ManageMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ManageMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ManageMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	if actions, ok := m.list.handle(msg); ok {
		return actions, true
	}

	key, onWidget := ctx.CurrentWidget()

	switch msg.String() {
	case "esc", "m", "q":
		return []types.Action{
			types.CloseDialogAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case " ":
		if onWidget {
			return []types.Action{types.ToggleSelectAction{Key: key}}, true
		}
		return nil, true

	case "a":
		return []types.Action{types.ToggleSelectAllAction{}}, true

	case "v", "enter":
		if onWidget {
			return []types.Action{types.ToggleVisibilityAction{Key: key}}, true
		}
		return nil, true

	case "x", "delete":
		if onWidget {
			return []types.Action{types.RemoveWidgetAction{Key: key}}, true
		}
		return nil, true

	case "s":
		if ctx.HasSelection() {
			return []types.Action{types.BulkVisibilityAction{Visible: true}}, true
		}
		return nil, true

	case "h":
		if ctx.HasSelection() {
			return []types.Action{types.BulkVisibilityAction{Visible: false}}, true
		}
		return nil, true

	case "d":
		if ctx.HasSelection() {
			return []types.Action{types.BulkRemoveAction{}}, true
		}
		return nil, true
	}

	return nil, false
}
