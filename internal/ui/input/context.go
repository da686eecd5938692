package input

import (
	"widgetdash/internal/domain"
	"widgetdash/internal/ui/input/types"
	"widgetdash/internal/ui/logic"
	"widgetdash/internal/ui/services/search"
	"widgetdash/internal/ui/services/selection"
	"widgetdash/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Search    *search.Service
	Selection *selection.Service
	Mode      types.Mode
}

// ActiveList returns the rows and cursor of the list the mode works on
func ActiveList(st *state.AppState, mode types.Mode) ([]logic.Row, *state.ListState) {
	switch mode {
	case types.ModeResults:
		return st.ResultRows, &st.Results
	case types.ModeManage:
		return st.ManageRows, &st.Manage
	default:
		return st.DashboardRows, &st.Dashboard
	}
}

func (c *ModelContext) currentRow() (logic.Row, bool) {
	rows, list := ActiveList(c.State, c.Mode)
	if list.Index < 0 || list.Index >= len(rows) {
		return logic.Row{}, false
	}
	return rows[list.Index], true
}

// CurrentIndex returns the cursor position in the active list
func (c *ModelContext) CurrentIndex() int {
	_, list := ActiveList(c.State, c.Mode)
	return list.Index
}

// TotalItems returns the length of the active list
func (c *ModelContext) TotalItems() int {
	rows, _ := ActiveList(c.State, c.Mode)
	return len(rows)
}

// CurrentRowKind tells what is under the cursor
func (c *ModelContext) CurrentRowKind() types.RowKind {
	row, ok := c.currentRow()
	if !ok {
		return types.RowNone
	}
	switch row.Kind {
	case logic.RowCategory:
		return types.RowCategory
	case logic.RowWidget:
		return types.RowWidget
	case logic.RowAddWidget:
		return types.RowAddWidget
	}
	return types.RowNone
}

// CurrentCategoryID returns the category of the row under the cursor
func (c *ModelContext) CurrentCategoryID() string {
	row, ok := c.currentRow()
	if !ok {
		return ""
	}
	return row.CategoryID
}

// CurrentWidget returns the widget under the cursor, if any
func (c *ModelContext) CurrentWidget() (domain.WidgetKey, bool) {
	row, ok := c.currentRow()
	if !ok {
		return domain.WidgetKey{}, false
	}
	return row.Key()
}

// SearchQuery returns the text in the search bar
func (c *ModelContext) SearchQuery() string {
	if c.Search == nil {
		return ""
	}
	return c.Search.GetInput()
}

// HasResults reports whether the last search matched anything
func (c *ModelContext) HasResults() bool {
	return len(c.State.ResultRows) > 0
}

// HasSelection returns true if any widgets are checked
func (c *ModelContext) HasSelection() bool {
	return c.Selection != nil && c.Selection.HasSelection()
}

// SelectedCount returns the number of checked widgets
func (c *ModelContext) SelectedCount() int {
	if c.Selection == nil {
		return 0
	}
	return c.Selection.GetCount()
}
