package selection

import (
	"widgetdash/internal/domain"
)

// Service tracks which widgets are ticked in the manage dialog.
// Widgets are keyed by (category, widget) so ids containing separators
// can't collide.
type Service struct {
	state *State
}

// NewService creates a new selection service
func NewService() *Service {
	return &Service{
		state: &State{Selected: make(map[domain.WidgetKey]bool)},
	}
}

// Toggle flips the selection of one widget
func (s *Service) Toggle(key domain.WidgetKey) {
	if s.state.Selected[key] {
		delete(s.state.Selected, key)
		return
	}
	s.state.Selected[key] = true
}

// ToggleAll selects every key, or clears the selection when all are selected already
func (s *Service) ToggleAll(keys []domain.WidgetKey) {
	if s.Summary(keys) == AllSelected {
		s.DeselectAll()
		return
	}
	s.SelectAll(keys)
}

// SelectAll selects exactly the given keys
func (s *Service) SelectAll(keys []domain.WidgetKey) {
	s.state.Selected = make(map[domain.WidgetKey]bool, len(keys))
	for _, k := range keys {
		s.state.Selected[k] = true
	}
}

// DeselectAll clears all selections
func (s *Service) DeselectAll() {
	s.state.Selected = make(map[domain.WidgetKey]bool)
}

// IsSelected checks if a widget is selected
func (s *Service) IsSelected(key domain.WidgetKey) bool {
	return s.state.Selected[key]
}

// SelectedIn returns the selected keys in the order they appear in keys
func (s *Service) SelectedIn(keys []domain.WidgetKey) []domain.WidgetKey {
	out := make([]domain.WidgetKey, 0, len(s.state.Selected))
	for _, k := range keys {
		if s.state.Selected[k] {
			out = append(out, k)
		}
	}
	return out
}

// GetCount returns the number of selected items
func (s *Service) GetCount() int {
	return len(s.state.Selected)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.Selected) > 0
}

// Remove drops keys from the selection, e.g. after their widgets are removed
func (s *Service) Remove(keys ...domain.WidgetKey) {
	for _, k := range keys {
		delete(s.state.Selected, k)
	}
}

// Prune drops selected keys that no longer exist
func (s *Service) Prune(existing []domain.WidgetKey) {
	alive := make(map[domain.WidgetKey]bool, len(existing))
	for _, k := range existing {
		alive[k] = true
	}
	for k := range s.state.Selected {
		if !alive[k] {
			delete(s.state.Selected, k)
		}
	}
}

// Summary compares the selection to the full key list
func (s *Service) Summary(keys []domain.WidgetKey) AllState {
	selected := len(s.SelectedIn(keys))
	switch {
	case selected == 0:
		return NoneSelected
	case selected == len(keys):
		return AllSelected
	default:
		return SomeSelected
	}
}
