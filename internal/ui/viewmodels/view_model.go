package viewmodels

import (
	"widgetdash/internal/config"
	"widgetdash/internal/store"
	"widgetdash/internal/ui/forms"
	"widgetdash/internal/ui/input"
	"widgetdash/internal/ui/input/types"
	"widgetdash/internal/ui/logic"
	"widgetdash/internal/ui/services/search"
	"widgetdash/internal/ui/services/selection"
	"widgetdash/internal/ui/state"
	"widgetdash/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	search    *search.Service
	selection *selection.Service
	input     *input.Handler
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, searchSvc *search.Service,
	selectionSvc *selection.Service, inputHandler *input.Handler) *ViewModel {
	return &ViewModel{
		state:     appState,
		config:    cfg,
		search:    searchSvc,
		selection: selectionSvc,
		input:     inputHandler,
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	st := vm.state
	snap := st.Snapshot
	mode := vm.input.CurrentMode()

	vs := views.ViewState{
		Width:          st.Width,
		Height:         st.Height,
		Title:          vm.config.UI.Title,
		Mode:           vm.input.ModeName(),
		ViewportHeight: st.ViewportHeight,

		Categories:     len(snap.Categories),
		TotalWidgets:   store.TotalWidgetCount(snap),
		VisibleWidgets: store.VisibleWidgetCount(snap),

		Dashboard: views.ListView{Rows: st.DashboardRows, Index: st.Dashboard.Index, Offset: st.Dashboard.Offset},
		Results:   views.ListView{Rows: st.ResultRows, Index: st.Results.Index, Offset: st.Results.Offset},
		Search: views.SearchView{
			BarOpen:     vm.search.IsBarOpen(),
			Focused:     mode == types.ModeSearch,
			InputView:   vm.input.TextInput().View(),
			Query:       snap.SearchQuery,
			Matches:     len(snap.FilteredResults),
			Pending:     vm.search.IsPending(),
			ResultsOpen: vm.search.IsResultsOpen(),
		},

		ConfirmReset:  mode == types.ModeConfirmReset,
		Loading:       snap.IsLoading,
		ErrorMessage:  snap.Error,
		HasError:      snap.HasError,
		StatusMessage: st.StatusMessage,
	}

	switch mode {
	case types.ModeAddWidget:
		vs.Form = buildForm(vm.input.Form())
	case types.ModeManage:
		vs.Manage = vm.buildManage()
	case types.ModeDetail:
		vs.Detail = vm.buildDetail()
	}

	return vs
}

func buildForm(f *forms.AddWidget) *views.FormView {
	return &views.FormView{
		CategoryName: f.CategoryName,
		NameView:     f.NameView(),
		ContentView:  f.ContentView(),
		NameLen:      f.NameLen(),
		ContentLen:   f.ContentLen(),
		NameError:    f.Error(forms.FieldName),
		ContentError: f.Error(forms.FieldContent),
		SubmitError:  f.SubmitError(),
		ContentFocus: f.Focus() == forms.FieldContent,
		Submitting:   f.Submitting(),
	}
}

func (vm *ViewModel) buildManage() *views.ManageView {
	st := vm.state
	summary := vm.selection.Summary(logic.WidgetKeys(st.ManageRows))
	return &views.ManageView{
		List:          views.ListView{Rows: st.ManageRows, Index: st.Manage.Index, Offset: st.Manage.Offset},
		IsChecked:     vm.selection.IsSelected,
		AllChecked:    summary == selection.AllSelected,
		SomeChecked:   summary == selection.SomeSelected,
		SelectedCount: vm.selection.GetCount(),
	}
}

func (vm *ViewModel) buildDetail() *views.DetailView {
	ref, ok := vm.state.FindWidget(vm.state.DetailKey)
	if !ok {
		return nil
	}
	return &views.DetailView{
		Title:    ref.Name,
		Category: ref.CategoryName,
		Body:     vm.state.DetailContent,
	}
}
