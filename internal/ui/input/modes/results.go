package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/input/types"
)

// ResultsMode browses the search results view
type ResultsMode struct {
	list listKeys
}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	if actions, ok := m.list.handle(msg); ok {
		return actions, true
	}

	key, onWidget := ctx.CurrentWidget()

	switch msg.String() {
	case "b", "esc":
		return []types.Action{
			types.BackToDashboardAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "x", "delete":
		if onWidget {
			return []types.Action{types.RemoveWidgetAction{Key: key}}, true
		}
		return nil, true

	case "v":
		if onWidget {
			return []types.Action{types.ToggleVisibilityAction{Key: key}}, true
		}
		return nil, true

	case "enter", "i":
		if onWidget {
			return []types.Action{types.ShowDetailAction{Key: key}, types.ChangeModeAction{Mode: types.ModeDetail}}, true
		}
		return nil, true

	case "y":
		if onWidget {
			return []types.Action{types.CopyContentAction{Key: key}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
