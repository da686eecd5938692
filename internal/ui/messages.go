package ui

import (
	"time"

	"widgetdash/internal/eventbus"
	"widgetdash/internal/ui/commands"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for the loading spinner
type tickMsg time.Time

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	seq int
}

// Results of the background commands
type (
	widgetAddedMsg = commands.WidgetAddedMsg
	reloadDoneMsg  = commands.ReloadDoneMsg
	copyDoneMsg    = commands.CopyDoneMsg
)

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
