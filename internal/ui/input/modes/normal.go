package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/input/types"
)

// NormalMode drives the dashboard
type NormalMode struct {
	list listKeys
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	if actions, ok := m.list.handle(msg); ok {
		return actions, true
	}

	key, onWidget := ctx.CurrentWidget()

	switch msg.String() {
	case "enter":
		// Enter opens the add dialog on a category or its add row, details on a widget
		if onWidget {
			return []types.Action{types.ShowDetailAction{Key: key}, types.ChangeModeAction{Mode: types.ModeDetail}}, true
		}
		return m.openAddWidget(ctx)

	case "a":
		return m.openAddWidget(ctx)

	case "x", "delete":
		if onWidget {
			return []types.Action{types.RemoveWidgetAction{Key: key}}, true
		}
		return nil, true

	case "v":
		// Hiding a widget takes it off the dashboard; it stays in the manage dialog
		if onWidget {
			return []types.Action{types.ToggleVisibilityAction{Key: key}}, true
		}
		return nil, true

	case "i":
		if onWidget {
			return []types.Action{types.ShowDetailAction{Key: key}, types.ChangeModeAction{Mode: types.ModeDetail}}, true
		}
		return nil, true

	case "y":
		if onWidget {
			return []types.Action{types.CopyContentAction{Key: key}}, true
		}
		return nil, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "s":
		// Back to the results of the current search
		if ctx.HasResults() {
			return []types.Action{types.ShowResultsAction{}, types.ChangeModeAction{Mode: types.ModeResults}}, true
		}
		return nil, true

	case "esc":
		if ctx.SearchQuery() != "" {
			return []types.Action{types.CloseSearchAction{}}, true
		}
		return nil, true

	case "m":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeManage}}, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "R":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmReset}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func (m *NormalMode) openAddWidget(ctx types.Context) ([]types.Action, bool) {
	categoryID := ctx.CurrentCategoryID()
	if categoryID == "" {
		return nil, true
	}
	return []types.Action{
		types.OpenAddWidgetAction{CategoryID: categoryID},
		types.ChangeModeAction{Mode: types.ModeAddWidget},
	}, true
}
