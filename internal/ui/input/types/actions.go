package types

import "widgetdash/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Search actions
type SearchInputAction struct {
	Text string
}

func (a SearchInputAction) Type() string { return "search_input" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type CloseSearchAction struct{}

func (a CloseSearchAction) Type() string { return "close_search" }

type BackToDashboardAction struct{}

func (a BackToDashboardAction) Type() string { return "back_to_dashboard" }

type ShowResultsAction struct{}

func (a ShowResultsAction) Type() string { return "show_results" }

// Widget actions
type OpenAddWidgetAction struct {
	CategoryID string
}

func (a OpenAddWidgetAction) Type() string { return "open_add_widget" }

type FormInputAction struct{}

func (a FormInputAction) Type() string { return "form_input" }

type NextFieldAction struct{}

func (a NextFieldAction) Type() string { return "next_field" }

type SubmitWidgetAction struct{}

func (a SubmitWidgetAction) Type() string { return "submit_widget" }

type CloseDialogAction struct{}

func (a CloseDialogAction) Type() string { return "close_dialog" }

type RemoveWidgetAction struct {
	Key domain.WidgetKey
}

func (a RemoveWidgetAction) Type() string { return "remove_widget" }

type ToggleVisibilityAction struct {
	Key domain.WidgetKey
}

func (a ToggleVisibilityAction) Type() string { return "toggle_visibility" }

type ShowDetailAction struct {
	Key domain.WidgetKey
}

func (a ShowDetailAction) Type() string { return "show_detail" }

type CopyContentAction struct {
	Key domain.WidgetKey
}

func (a CopyContentAction) Type() string { return "copy_content" }

// Manage dialog actions
type ToggleSelectAction struct {
	Key domain.WidgetKey
}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type ToggleSelectAllAction struct{}

func (a ToggleSelectAllAction) Type() string { return "toggle_select_all" }

type BulkVisibilityAction struct {
	Visible bool
}

func (a BulkVisibilityAction) Type() string { return "bulk_visibility" }

type BulkRemoveAction struct{}

func (a BulkRemoveAction) Type() string { return "bulk_remove" }

// Dashboard actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ResetDashboardAction struct{}

func (a ResetDashboardAction) Type() string { return "reset_dashboard" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
