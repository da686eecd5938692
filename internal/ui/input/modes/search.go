package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/input/types"
)

// SearchMode types into the search bar. Unconsumed keys go to the shared
// text input, and the handler reports the new text as a SearchInputAction.
type SearchMode struct {
	textInput *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
		m.textInput.Placeholder = "Search widgets..."
		m.textInput.SetValue(ctx.SearchQuery())
		m.textInput.CursorEnd()
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Clear the query and close the bar
		return []types.Action{
			types.CloseSearchAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "ctrl+u":
		if m.textInput != nil {
			m.textInput.SetValue("")
		}
		return []types.Action{types.ClearSearchAction{}}, true
	case "enter", "down", "tab":
		// Leave the bar, landing on the results if there are any
		if ctx.HasResults() {
			return []types.Action{types.ShowResultsAction{}, types.ChangeModeAction{Mode: types.ModeResults}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}
