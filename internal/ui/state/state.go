package state

import (
	"widgetdash/internal/domain"
	"widgetdash/internal/store"
	"widgetdash/internal/ui/logic"
)

// ListState is the cursor and scroll position of one list view
type ListState struct {
	Index  int
	Offset int
}

// AppState contains all the UI state derived from the store plus the
// cursor positions of each view
type AppState struct {
	// Latest copy of the store
	Snapshot store.State

	// Rows derived from the snapshot
	DashboardRows []logic.Row
	ResultRows    []logic.Row
	ManageRows    []logic.Row

	// Cursor per view
	Dashboard ListState
	Results   ListState
	Manage    ListState

	// UI state
	Width          int
	Height         int
	ViewportHeight int
	StatusMessage  string
	Refreshing     bool

	// Detail popup
	DetailKey     domain.WidgetKey
	DetailContent string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20,
	}
}

// SetSnapshot replaces the store copy and rebuilds every row list
func (s *AppState) SetSnapshot(snap store.State) {
	s.Snapshot = snap
	s.DashboardRows = logic.DashboardRows(snap)
	s.ResultRows = logic.ResultRows(snap)
	s.ManageRows = logic.ManageRows(snap)
}

// FindWidget looks up a widget in the snapshot
func (s *AppState) FindWidget(key domain.WidgetKey) (domain.WidgetRef, bool) {
	c, ok := store.FindCategory(s.Snapshot, key.CategoryID)
	if !ok {
		return domain.WidgetRef{}, false
	}
	for _, w := range c.Widgets {
		if w.ID == key.WidgetID {
			return domain.WidgetRef{Widget: w, CategoryID: c.ID, CategoryName: c.Name}, true
		}
	}
	return domain.WidgetRef{}, false
}

// CategoryName returns the name of a category, or "" if unknown
func (s *AppState) CategoryName(id string) string {
	if c, ok := store.FindCategory(s.Snapshot, id); ok {
		return c.Name
	}
	return ""
}
