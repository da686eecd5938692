package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"widgetdash/internal/domain"
	"widgetdash/internal/eventbus"
	"widgetdash/internal/store"
	"widgetdash/internal/ui/state"
)

func newHandler() (*EventHandler, *state.AppState) {
	st := state.NewAppState()
	st.SetSnapshot(store.New([]domain.Category{
		{ID: "cloud", Name: "Cloud", Widgets: []domain.Widget{
			{ID: "w1", Name: "Accounts", Content: "2 connected", IsVisible: true},
		}},
	}).Snapshot())
	return NewEventHandler(st), st
}

func TestHandleEventStatusMessages(t *testing.T) {
	tests := []struct {
		name  string
		event eventbus.DomainEvent
		want  string
	}{
		{"added", eventbus.WidgetAddedEvent{CategoryID: "cloud", Widget: domain.Widget{Name: "Images"}}, "Added widget 'Images' to Cloud"},
		{"added to unknown category", eventbus.WidgetAddedEvent{CategoryID: "gone", Widget: domain.Widget{Name: "Images"}}, "Added widget 'Images' to gone"},
		{"removed", eventbus.WidgetRemovedEvent{CategoryID: "cloud", WidgetID: "w1", Name: "Accounts"}, "Removed widget 'Accounts'"},
		{"shown", eventbus.WidgetVisibilityChangedEvent{CategoryID: "cloud", WidgetID: "w1", IsVisible: true}, "Showing widget 'Accounts'"},
		{"hidden", eventbus.WidgetVisibilityChangedEvent{CategoryID: "cloud", WidgetID: "w1"}, "Hid widget 'Accounts'"},
		{"hidden unknown", eventbus.WidgetVisibilityChangedEvent{CategoryID: "cloud", WidgetID: "zz"}, "Hid widget 'zz'"},
		{"bulk", eventbus.WidgetsBulkUpdatedEvent{Applied: 3}, "Updated 3 widget(s)"},
		{"bulk skipped", eventbus.WidgetsBulkUpdatedEvent{Applied: 2, Skipped: 1}, "Updated 2 widget(s), 1 skipped"},
		{"reset", eventbus.DashboardResetEvent{}, "Dashboard reset"},
		{"reloaded", eventbus.DashboardReloadedEvent{Categories: 2, Widgets: 5}, "Loaded 5 widget(s) across 2 categories"},
		{"error", eventbus.ErrorChangedEvent{Message: "boom"}, "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, st := newHandler()
			assert.True(t, h.HandleEvent(tt.event))
			assert.Equal(t, tt.want, st.StatusMessage)
		})
	}
}

func TestHandleEventIgnoresQuietEvents(t *testing.T) {
	h, st := newHandler()
	st.StatusMessage = "unchanged"

	assert.False(t, h.HandleEvent(eventbus.SearchQueryChangedEvent{Query: "a", Matches: 1}))
	assert.False(t, h.HandleEvent(eventbus.LoadingChangedEvent{Loading: true}))
	assert.False(t, h.HandleEvent(eventbus.ErrorChangedEvent{}))
	assert.Equal(t, "unchanged", st.StatusMessage)
}
