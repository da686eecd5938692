package logic

import (
	"widgetdash/internal/domain"
	"widgetdash/internal/store"
)

// RowKind tells the renderer and the input modes what a row represents
type RowKind int

const (
	RowCategory RowKind = iota
	RowWidget
	RowAddWidget
)

// Row is one selectable line of a list view
type Row struct {
	Kind         RowKind
	CategoryID   string
	CategoryName string
	Widget       domain.Widget
	VisibleCount int // category rows only
	TotalCount   int // category rows only
}

// Key returns the widget key for widget rows
func (r Row) Key() (domain.WidgetKey, bool) {
	if r.Kind != RowWidget {
		return domain.WidgetKey{}, false
	}
	return domain.WidgetKey{CategoryID: r.CategoryID, WidgetID: r.Widget.ID}, true
}

// DashboardRows lists each category followed by its visible widgets and an
// add row. Hidden widgets only show up in the manage dialog.
func DashboardRows(s store.State) []Row {
	counts := store.VisibleWidgetsCountByCategory(s)
	rows := make([]Row, 0, store.TotalWidgetCount(s)+2*len(s.Categories))
	for _, c := range s.Categories {
		rows = append(rows, Row{
			Kind:         RowCategory,
			CategoryID:   c.ID,
			CategoryName: c.Name,
			VisibleCount: counts[c.ID],
			TotalCount:   len(c.Widgets),
		})
		for _, w := range store.VisibleWidgets(c) {
			rows = append(rows, Row{Kind: RowWidget, CategoryID: c.ID, CategoryName: c.Name, Widget: w})
		}
		rows = append(rows, Row{Kind: RowAddWidget, CategoryID: c.ID, CategoryName: c.Name})
	}
	return rows
}

// ManageRows lists every widget, hidden or not, grouped under its category
func ManageRows(s store.State) []Row {
	rows := make([]Row, 0, store.TotalWidgetCount(s)+len(s.Categories))
	for _, c := range s.Categories {
		rows = append(rows, Row{Kind: RowCategory, CategoryID: c.ID, CategoryName: c.Name, TotalCount: len(c.Widgets)})
		for _, w := range c.Widgets {
			rows = append(rows, Row{Kind: RowWidget, CategoryID: c.ID, CategoryName: c.Name, Widget: w})
		}
	}
	return rows
}

// ResultRows wraps the filtered results as widget rows
func ResultRows(s store.State) []Row {
	results := store.FilteredWidgets(s)
	rows := make([]Row, 0, len(results))
	for _, ref := range results {
		rows = append(rows, Row{Kind: RowWidget, CategoryID: ref.CategoryID, CategoryName: ref.CategoryName, Widget: ref.Widget})
	}
	return rows
}

// WidgetKeys returns the keys of all widget rows in order
func WidgetKeys(rows []Row) []domain.WidgetKey {
	keys := make([]domain.WidgetKey, 0, len(rows))
	for _, r := range rows {
		if k, ok := r.Key(); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// IndexOfKey finds the row holding the widget, -1 if absent
func IndexOfKey(rows []Row, key domain.WidgetKey) int {
	for i, r := range rows {
		if k, ok := r.Key(); ok && k == key {
			return i
		}
	}
	return -1
}

// IndexOfCategory finds the header row of a category, -1 if absent
func IndexOfCategory(rows []Row, categoryID string) int {
	for i, r := range rows {
		if r.Kind == RowCategory && r.CategoryID == categoryID {
			return i
		}
	}
	return -1
}
