package selection

import "widgetdash/internal/domain"

// State holds selection state
type State struct {
	Selected map[domain.WidgetKey]bool
}

// AllState summarises the selection against a full list, for the
// select-all checkbox
type AllState int

const (
	NoneSelected AllState = iota
	SomeSelected
	AllSelected
)
