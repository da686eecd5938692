package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"widgetdash/internal/domain"
	"widgetdash/internal/logging"
	"widgetdash/internal/store"
	"widgetdash/internal/ui/state"
	"widgetdash/internal/validation"
)

var log = logging.NewLogger("commands")

// SeedLoader loads the categories the dashboard is reloaded from
type SeedLoader func() ([]domain.Category, error)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State        *state.AppState
	Store        *store.Store
	LoadSeed     SeedLoader
	SubmitDelay  time.Duration
	RefreshDelay time.Duration
	WriteClip    func(string) error
}

// WidgetAddedMsg is delivered once a delayed add has gone through
type WidgetAddedMsg struct {
	CategoryID string
	Result     store.Result
}

// ReloadDoneMsg is delivered when a reload finishes
type ReloadDoneMsg struct {
	Err error
}

// CopyDoneMsg is delivered after writing to the clipboard
type CopyDoneMsg struct {
	Name string
	Err  error
}

// AddWidgetCommand adds a validated widget after the submit delay
type AddWidgetCommand struct {
	ctx        *CommandContext
	categoryID string
	input      validation.Widget
}

// NewAddWidgetCommand creates a new add widget command
func NewAddWidgetCommand(ctx *CommandContext, categoryID string, input validation.Widget) *AddWidgetCommand {
	return &AddWidgetCommand{ctx: ctx, categoryID: categoryID, input: input}
}

// Execute schedules the add. The store is only touched when the tick fires.
func (c *AddWidgetCommand) Execute() tea.Cmd {
	add := func() tea.Msg {
		result := c.ctx.Store.AddWidget(c.categoryID, c.input.Name, c.input.Content)
		if !result.Status.Applied() {
			log.WithField("category", c.categoryID).Warn("add widget: category not found")
		}
		return WidgetAddedMsg{CategoryID: c.categoryID, Result: result}
	}
	if c.ctx.SubmitDelay <= 0 {
		return add
	}
	return tea.Tick(c.ctx.SubmitDelay, func(time.Time) tea.Msg { return add() })
}

// RemoveWidgetCommand removes one widget
type RemoveWidgetCommand struct {
	ctx *CommandContext
	key domain.WidgetKey
}

// NewRemoveWidgetCommand creates a new remove widget command
func NewRemoveWidgetCommand(ctx *CommandContext, key domain.WidgetKey) *RemoveWidgetCommand {
	return &RemoveWidgetCommand{ctx: ctx, key: key}
}

// Execute performs the removal. Success is reported through the event bus.
func (c *RemoveWidgetCommand) Execute() tea.Cmd {
	if status := c.ctx.Store.RemoveWidget(c.key.CategoryID, c.key.WidgetID); !status.Applied() {
		c.ctx.State.StatusMessage = fmt.Sprintf("Remove failed: %s", status)
	}
	return nil
}

// ToggleVisibilityCommand hides or shows one widget
type ToggleVisibilityCommand struct {
	ctx *CommandContext
	key domain.WidgetKey
}

// NewToggleVisibilityCommand creates a new toggle visibility command
func NewToggleVisibilityCommand(ctx *CommandContext, key domain.WidgetKey) *ToggleVisibilityCommand {
	return &ToggleVisibilityCommand{ctx: ctx, key: key}
}

// Execute flips the widget's visibility
func (c *ToggleVisibilityCommand) Execute() tea.Cmd {
	if status := c.ctx.Store.ToggleWidgetVisibility(c.key.CategoryID, c.key.WidgetID); !status.Applied() {
		c.ctx.State.StatusMessage = fmt.Sprintf("Toggle failed: %s", status)
	}
	return nil
}

// BulkVisibilityCommand sets the visibility of many widgets at once
type BulkVisibilityCommand struct {
	ctx     *CommandContext
	keys    []domain.WidgetKey
	visible bool
}

// NewBulkVisibilityCommand creates a new bulk visibility command
func NewBulkVisibilityCommand(ctx *CommandContext, keys []domain.WidgetKey, visible bool) *BulkVisibilityCommand {
	return &BulkVisibilityCommand{ctx: ctx, keys: keys, visible: visible}
}

// Execute applies one update per key
func (c *BulkVisibilityCommand) Execute() tea.Cmd {
	if len(c.keys) == 0 {
		return nil
	}
	updates := make([]domain.WidgetUpdate, len(c.keys))
	for i, k := range c.keys {
		updates[i] = domain.WidgetUpdate{CategoryID: k.CategoryID, WidgetID: k.WidgetID, IsVisible: c.visible}
	}
	for i, s := range c.ctx.Store.BulkToggleWidgets(updates) {
		if !s.Applied() {
			log.WithField("widget", c.keys[i].WidgetID).Debugf("bulk visibility: %s", s)
		}
	}
	return nil
}

// BulkRemoveCommand removes many widgets, one at a time
type BulkRemoveCommand struct {
	ctx  *CommandContext
	keys []domain.WidgetKey
}

// NewBulkRemoveCommand creates a new bulk remove command
func NewBulkRemoveCommand(ctx *CommandContext, keys []domain.WidgetKey) *BulkRemoveCommand {
	return &BulkRemoveCommand{ctx: ctx, keys: keys}
}

// Execute removes every key it can find
func (c *BulkRemoveCommand) Execute() tea.Cmd {
	if len(c.keys) == 0 {
		return nil
	}
	removed := 0
	for _, k := range c.keys {
		if c.ctx.Store.RemoveWidget(k.CategoryID, k.WidgetID).Applied() {
			removed++
		}
	}
	msg := fmt.Sprintf("Removed %d widget(s)", removed)
	if skipped := len(c.keys) - removed; skipped > 0 {
		msg += fmt.Sprintf(", %d skipped", skipped)
	}
	c.ctx.State.StatusMessage = msg
	return nil
}

// ResetCommand returns the dashboard to its seed
type ResetCommand struct {
	ctx *CommandContext
}

// NewResetCommand creates a new reset command
func NewResetCommand(ctx *CommandContext) *ResetCommand {
	return &ResetCommand{ctx: ctx}
}

// Execute resets the store
func (c *ResetCommand) Execute() tea.Cmd {
	c.ctx.Store.ResetDashboard()
	return nil
}

// ReloadCommand reloads the seed while the loading screen is shown
type ReloadCommand struct {
	ctx *CommandContext
}

// NewReloadCommand creates a new reload command
func NewReloadCommand(ctx *CommandContext) *ReloadCommand {
	return &ReloadCommand{ctx: ctx}
}

// Execute flags loading now and loads the seed once the refresh delay passes
func (c *ReloadCommand) Execute() tea.Cmd {
	c.ctx.Store.ClearError()
	c.ctx.Store.SetLoading(true)
	c.ctx.State.Refreshing = true

	reload := func() tea.Msg {
		defer c.ctx.Store.SetLoading(false)
		if c.ctx.LoadSeed == nil {
			return ReloadDoneMsg{Err: fmt.Errorf("no seed loader configured")}
		}
		seed, err := c.ctx.LoadSeed()
		if err != nil {
			log.WithError(err).Error("reload failed")
			c.ctx.Store.SetError(err.Error())
			return ReloadDoneMsg{Err: err}
		}
		c.ctx.Store.Reload(seed)
		return ReloadDoneMsg{}
	}
	if c.ctx.RefreshDelay <= 0 {
		return reload
	}
	return tea.Tick(c.ctx.RefreshDelay, func(time.Time) tea.Msg { return reload() })
}

// CopyCommand copies a widget's content to the system clipboard
type CopyCommand struct {
	ctx *CommandContext
	ref domain.WidgetRef
}

// NewCopyCommand creates a new copy command
func NewCopyCommand(ctx *CommandContext, ref domain.WidgetRef) *CopyCommand {
	return &CopyCommand{ctx: ctx, ref: ref}
}

// Execute writes the content in the background
func (c *CopyCommand) Execute() tea.Cmd {
	write := c.ctx.WriteClip
	if write == nil {
		write = clipboard.WriteAll
	}
	content := c.ref.Content
	name := c.ref.Name
	return func() tea.Msg {
		return CopyDoneMsg{Name: name, Err: write(content)}
	}
}
