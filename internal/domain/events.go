package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventWidgetAdded             EventType = "WidgetAdded"
	EventWidgetRemoved           EventType = "WidgetRemoved"
	EventWidgetVisibilityChanged EventType = "WidgetVisibilityChanged"
	EventWidgetsBulkUpdated      EventType = "WidgetsBulkUpdated"
	EventSearchQueryChanged      EventType = "SearchQueryChanged"
	EventDashboardReset          EventType = "DashboardReset"
	EventDashboardReloaded       EventType = "DashboardReloaded"
	EventLoadingChanged          EventType = "LoadingChanged"
	EventErrorChanged            EventType = "ErrorChanged"
)

// AllEventTypes lists every event the store can publish
var AllEventTypes = []EventType{
	EventWidgetAdded,
	EventWidgetRemoved,
	EventWidgetVisibilityChanged,
	EventWidgetsBulkUpdated,
	EventSearchQueryChanged,
	EventDashboardReset,
	EventDashboardReloaded,
	EventLoadingChanged,
	EventErrorChanged,
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WidgetAddedEvent is emitted when a widget is appended to a category
type WidgetAddedEvent struct {
	CategoryID string
	Widget     Widget
}

func (e WidgetAddedEvent) Type() EventType { return EventWidgetAdded }

// WidgetRemovedEvent is emitted when a widget is excised from its category
type WidgetRemovedEvent struct {
	CategoryID string
	WidgetID   string
	Name       string
}

func (e WidgetRemovedEvent) Type() EventType { return EventWidgetRemoved }

// WidgetVisibilityChangedEvent is emitted when a single widget is shown or hidden
type WidgetVisibilityChangedEvent struct {
	CategoryID string
	WidgetID   string
	IsVisible  bool
}

func (e WidgetVisibilityChangedEvent) Type() EventType { return EventWidgetVisibilityChanged }

// WidgetsBulkUpdatedEvent is emitted after a bulk visibility change
type WidgetsBulkUpdatedEvent struct {
	Applied int
	Skipped int
}

func (e WidgetsBulkUpdatedEvent) Type() EventType { return EventWidgetsBulkUpdated }

// SearchQueryChangedEvent is emitted when the search query is replaced
type SearchQueryChangedEvent struct {
	Query   string
	Matches int
}

func (e SearchQueryChangedEvent) Type() EventType { return EventSearchQueryChanged }

// DashboardResetEvent is emitted when categories are restored to the seed
type DashboardResetEvent struct{}

func (e DashboardResetEvent) Type() EventType { return EventDashboardReset }

// DashboardReloadedEvent is emitted when the store is re-initialised from a new seed
type DashboardReloadedEvent struct {
	Categories int
	Widgets    int
}

func (e DashboardReloadedEvent) Type() EventType { return EventDashboardReloaded }

// LoadingChangedEvent is emitted when the loading flag changes
type LoadingChangedEvent struct {
	Loading bool
}

func (e LoadingChangedEvent) Type() EventType { return EventLoadingChanged }

// ErrorChangedEvent is emitted when the error message is set or cleared
type ErrorChangedEvent struct {
	Message string // empty when cleared
}

func (e ErrorChangedEvent) Type() EventType { return EventErrorChanged }
