package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/ui/forms"
	"widgetdash/internal/ui/input/modes"
	"widgetdash/internal/ui/input/types"
)

// Handler turns key presses into actions for the current mode
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search bar
	form        *forms.AddWidget // add widget dialog
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		form:        forms.NewAddWidget(),
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeResults] = modes.NewResultsMode()
	h.modes[types.ModeAddWidget] = modes.NewAddWidgetMode()
	h.modes[types.ModeManage] = modes.NewManageMode()
	h.modes[types.ModeConfirmReset] = modes.NewConfirmMode()
	h.modes[types.ModeDetail] = modes.NewDetailMode()
	h.modes[types.ModeError] = modes.NewErrorMode()

	return h
}

// HandleKey returns the actions for a key press. Mode changes are applied
// here; every other action is left to the model.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmds []tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.currentMode == types.ModeSearch {
				cmds = append(cmds, textinput.Blink)
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Keys the mode didn't consume are typed into the active input
	if !consumed {
		switch h.currentMode {
		case types.ModeSearch:
			var cmd tea.Cmd
			*h.textInput, cmd = h.textInput.Update(msg)
			cmds = append(cmds, cmd)
			allActions = append(allActions, types.SearchInputAction{Text: h.textInput.Value()})
		case types.ModeAddWidget:
			cmds = append(cmds, h.form.Update(msg))
			allActions = append(allActions, types.FormInputAction{})
		}
	}

	return allActions, tea.Batch(cmds...)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches mode outside of a key press, e.g. when a dialog
// closes itself
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) {
	if mode == h.currentMode {
		return
	}
	h.switchMode(mode, ctx)
}

// Update handles non-keyboard messages for the active input, like cursor blinks
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch h.currentMode {
	case types.ModeSearch:
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	case types.ModeAddWidget:
		return h.form.Update(msg)
	}
	return nil
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// TextInput returns the search bar input
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Form returns the add widget form
func (h *Handler) Form() *forms.AddWidget {
	return h.form
}

// ResetSearchInput empties the search bar
func (h *Handler) ResetSearchInput() {
	h.textInput.SetValue("")
}
