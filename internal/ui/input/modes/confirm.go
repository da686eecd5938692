package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/input/types"
)

// ConfirmMode asks before resetting the dashboard to its seed
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "reset-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.ResetDashboardAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, true
}

// DetailMode shows one widget in a popup; any dismissal key closes it
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "i", "q":
		return []types.Action{types.CloseDialogAction{}}, true
	case "y":
		return []types.Action{types.CopyContentAction{}}, true
	}
	return nil, true
}

// ErrorMode is active while the error screen is shown
type ErrorMode struct{}

func NewErrorMode() *ErrorMode {
	return &ErrorMode{}
}

func (m *ErrorMode) Name() string {
	return "error"
}

func (m *ErrorMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ErrorMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ErrorMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "r", "enter":
		// Try again
		return []types.Action{types.RefreshAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	return nil, true
}
