package handlers

import (
	"fmt"

	"widgetdash/internal/domain"
	"widgetdash/internal/eventbus"
	"widgetdash/internal/ui/state"
)

// EventHandler turns store events into status line messages
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes a domain event. It reports whether the status line
// changed so the caller can schedule clearing it.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) bool {
	switch e := event.(type) {
	case eventbus.WidgetAddedEvent:
		h.state.StatusMessage = fmt.Sprintf("Added widget '%s' to %s", e.Widget.Name, h.categoryName(e.CategoryID))

	case eventbus.WidgetRemovedEvent:
		h.state.StatusMessage = fmt.Sprintf("Removed widget '%s'", e.Name)

	case eventbus.WidgetVisibilityChangedEvent:
		name := e.WidgetID
		if ref, ok := h.state.FindWidget(domain.WidgetKey{CategoryID: e.CategoryID, WidgetID: e.WidgetID}); ok {
			name = ref.Name
		}
		if e.IsVisible {
			h.state.StatusMessage = fmt.Sprintf("Showing widget '%s'", name)
		} else {
			h.state.StatusMessage = fmt.Sprintf("Hid widget '%s'", name)
		}

	case eventbus.WidgetsBulkUpdatedEvent:
		msg := fmt.Sprintf("Updated %d widget(s)", e.Applied)
		if e.Skipped > 0 {
			msg += fmt.Sprintf(", %d skipped", e.Skipped)
		}
		h.state.StatusMessage = msg

	case eventbus.DashboardResetEvent:
		h.state.StatusMessage = "Dashboard reset"

	case eventbus.DashboardReloadedEvent:
		h.state.StatusMessage = fmt.Sprintf("Loaded %d widget(s) across %d categories", e.Widgets, e.Categories)

	case eventbus.ErrorChangedEvent:
		if e.Message == "" {
			return false
		}
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)

	default:
		// Search and loading changes are visible on screen already
		return false
	}
	return true
}

func (h *EventHandler) categoryName(id string) string {
	if name := h.state.CategoryName(id); name != "" {
		return name
	}
	return id
}
