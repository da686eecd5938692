package store

import "widgetdash/internal/domain"

// AllWidgets flattens every category's widgets, annotated with their owner
func AllWidgets(s State) []domain.WidgetRef {
	refs := []domain.WidgetRef{}
	for _, c := range s.Categories {
		for _, w := range c.Widgets {
			refs = append(refs, domain.WidgetRef{Widget: w, CategoryID: c.ID, CategoryName: c.Name})
		}
	}
	return refs
}

// VisibleWidgetsCountByCategory maps category id to its number of visible widgets
func VisibleWidgetsCountByCategory(s State) map[string]int {
	counts := make(map[string]int, len(s.Categories))
	for _, c := range s.Categories {
		counts[c.ID] = len(VisibleWidgets(c))
	}
	return counts
}

// FilteredWidgets returns the results of the last search
func FilteredWidgets(s State) []domain.WidgetRef {
	return s.FilteredResults
}

// VisibleWidgets returns the category's visible widgets in order
func VisibleWidgets(c domain.Category) []domain.Widget {
	visible := []domain.Widget{}
	for _, w := range c.Widgets {
		if w.IsVisible {
			visible = append(visible, w)
		}
	}
	return visible
}

// TotalWidgetCount counts widgets across all categories
func TotalWidgetCount(s State) int {
	total := 0
	for _, c := range s.Categories {
		total += len(c.Widgets)
	}
	return total
}

// VisibleWidgetCount counts visible widgets across all categories
func VisibleWidgetCount(s State) int {
	total := 0
	for _, n := range VisibleWidgetsCountByCategory(s) {
		total += n
	}
	return total
}

// FindCategory looks up a category by id
func FindCategory(s State, id string) (domain.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}
