package store

import (
	"errors"

	"widgetdash/internal/domain"
)

var (
	// ErrCategoryNotFound is reported by Status.Err for unknown category ids
	ErrCategoryNotFound = errors.New("category not found")
	// ErrWidgetNotFound is reported by Status.Err for unknown widget ids
	ErrWidgetNotFound = errors.New("widget not found")
)

// Status tells the caller whether a mutation changed anything.
// Missing keys are never fatal; callers that care can inspect the status.
type Status int

const (
	StatusApplied Status = iota
	StatusCategoryNotFound
	StatusWidgetNotFound
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusCategoryNotFound:
		return "category not found"
	case StatusWidgetNotFound:
		return "widget not found"
	default:
		return "unknown"
	}
}

// Applied reports whether the mutation took effect
func (s Status) Applied() bool {
	return s == StatusApplied
}

// Err maps not-found statuses to sentinel errors, nil when applied
func (s Status) Err() error {
	switch s {
	case StatusCategoryNotFound:
		return ErrCategoryNotFound
	case StatusWidgetNotFound:
		return ErrWidgetNotFound
	default:
		return nil
	}
}

// Result is returned by AddWidget. Widget is the zero value unless applied.
type Result struct {
	Status Status
	Widget domain.Widget
}
