package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/domain"
	"widgetdash/internal/validation"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// ExecuteAddWidget creates and executes an add widget command
func (e *Executor) ExecuteAddWidget(categoryID string, input validation.Widget) tea.Cmd {
	return NewAddWidgetCommand(e.ctx, categoryID, input).Execute()
}

// ExecuteRemove creates and executes a remove widget command
func (e *Executor) ExecuteRemove(key domain.WidgetKey) tea.Cmd {
	return NewRemoveWidgetCommand(e.ctx, key).Execute()
}

// ExecuteToggleVisibility creates and executes a toggle visibility command
func (e *Executor) ExecuteToggleVisibility(key domain.WidgetKey) tea.Cmd {
	return NewToggleVisibilityCommand(e.ctx, key).Execute()
}

// ExecuteBulkVisibility creates and executes a bulk visibility command
func (e *Executor) ExecuteBulkVisibility(keys []domain.WidgetKey, visible bool) tea.Cmd {
	return NewBulkVisibilityCommand(e.ctx, keys, visible).Execute()
}

// ExecuteBulkRemove creates and executes a bulk remove command
func (e *Executor) ExecuteBulkRemove(keys []domain.WidgetKey) tea.Cmd {
	return NewBulkRemoveCommand(e.ctx, keys).Execute()
}

// ExecuteReset creates and executes a reset command
func (e *Executor) ExecuteReset() tea.Cmd {
	return NewResetCommand(e.ctx).Execute()
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCommand(e.ctx).Execute()
}

// ExecuteCopy creates and executes a copy command
func (e *Executor) ExecuteCopy(ref domain.WidgetRef) tea.Cmd {
	return NewCopyCommand(e.ctx, ref).Execute()
}
