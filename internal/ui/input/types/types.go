package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeResults
	ModeAddWidget
	ModeManage
	ModeConfirmReset
	ModeDetail
	ModeError
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// RowKind mirrors the kind of row under the cursor
type RowKind int

const (
	RowNone RowKind = iota
	RowCategory
	RowWidget
	RowAddWidget
)

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentRowKind() RowKind
	CurrentCategoryID() string
	CurrentWidget() (domain.WidgetKey, bool)
	SearchQuery() string
	HasResults() bool
	HasSelection() bool
	SelectedCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
