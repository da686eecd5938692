package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"widgetdash/internal/config"
	"widgetdash/internal/domain"
	"widgetdash/internal/eventbus"
	"widgetdash/internal/logging"
	"widgetdash/internal/store"
	"widgetdash/internal/ui/commands"
	"widgetdash/internal/ui/handlers"
	"widgetdash/internal/ui/input"
	inputtypes "widgetdash/internal/ui/input/types"
	"widgetdash/internal/ui/logic"
	"widgetdash/internal/ui/services/search"
	"widgetdash/internal/ui/services/selection"
	"widgetdash/internal/ui/state"
	"widgetdash/internal/ui/viewmodels"
	"widgetdash/internal/ui/views"
)

var log = logging.NewLogger("ui")

const (
	statusTimeout = 3 * time.Second

	// Lines taken by everything but the list: padding, header, footer
	baseChrome = 7
	// Extra lines when the search bar is shown
	searchChrome = 3
)

// Model represents the UI state
type Model struct {
	config *config.Config
	store  *store.Store
	state  *state.AppState

	inPagerMode bool
	detailFrom  inputtypes.Mode // mode to return to when the detail popup closes
	statusSeq   int

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	helpRender   *HelpRenderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	search       *search.Service
	selection    *selection.Service

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around the store. loadSeed is used by
// refresh to load the dashboard again.
func NewModel(cfg *config.Config, st *store.Store, loadSeed commands.SeedLoader) *Model {
	appState := state.NewAppState()

	m := &Model{
		config:       cfg,
		store:        st,
		state:        appState,
		detailFrom:   inputtypes.ModeNormal,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		helpRender:   NewHelpRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(),
		selection:    selection.NewService(),
	}

	m.search = search.NewService(cfg.UI.SearchDebounce(), func(query string) int {
		st.SetSearchQuery(query)
		return len(st.Snapshot().FilteredResults)
	})

	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		State:        appState,
		Store:        st,
		LoadSeed:     loadSeed,
		SubmitDelay:  cfg.UI.SubmitDelay(),
		RefreshDelay: cfg.UI.RefreshDelay(),
	})

	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.search, m.selection, m.inputHandler)

	m.syncSnapshot()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// ForwardEvents subscribes to every store event and hands them to the
// program as EventMsg. The returned func unsubscribes.
func ForwardEvents(bus eventbus.EventBus, p *tea.Program) func() {
	var unsubs []func()
	for _, t := range domain.AllEventTypes {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(EventMsg{Event: e})
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// Init starts the spinner if the store is still loading
func (m *Model) Init() tea.Cmd {
	if m.state.Snapshot.IsLoading {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.updateViewport()
		return m, nil
	}

	return m.handleNonKeyboardMsg(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Only quitting works while the dashboard loads
	if m.state.Snapshot.IsLoading {
		switch msg.String() {
		case "ctrl+c", "q":
			return tea.Quit
		}
		return nil
	}

	from := m.inputHandler.CurrentMode()
	ctx := m.inputContext()

	actions, inputCmd := m.inputHandler.HandleKey(msg, ctx)
	cmds := []tea.Cmd{inputCmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action, from))
	}

	// Keep the search bar and results in step with the new mode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		m.search.OpenBar()
	case inputtypes.ModeResults:
		m.search.ShowResults()
	}

	m.syncSnapshot()
	return tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:     m.state,
		Search:    m.search,
		Selection: m.selection,
		Mode:      m.inputHandler.CurrentMode(),
	}
}

// processAction applies one action from the input handler. from is the
// mode the key was pressed in.
func (m *Model) processAction(action inputtypes.Action, from inputtypes.Mode) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		rows, list := input.ActiveList(m.state, m.inputHandler.CurrentMode())
		m.navigator.UpdateState(list.Index, list.Offset, m.listHeight(), len(rows))
		list.Index, list.Offset = m.navigator.Move(a.Direction)

	case inputtypes.SearchInputAction:
		return m.search.Input(a.Text)

	case inputtypes.ClearSearchAction:
		m.search.Clear()

	case inputtypes.CloseSearchAction:
		m.search.CloseBar()
		m.inputHandler.ResetSearchInput()

	case inputtypes.BackToDashboardAction:
		m.search.BackToDashboard()

	case inputtypes.ShowResultsAction:
		m.search.ShowResults()
		m.state.Results = state.ListState{}

	case inputtypes.OpenAddWidgetAction:
		return m.inputHandler.Form().Open(a.CategoryID, m.state.CategoryName(a.CategoryID))

	case inputtypes.NextFieldAction:
		return m.inputHandler.Form().NextField()

	case inputtypes.SubmitWidgetAction:
		form := m.inputHandler.Form()
		if form.Submitting() {
			return nil
		}
		values, ok := form.Submit()
		if !ok {
			return nil
		}
		form.SetSubmitting(true)
		return m.cmdExecutor.ExecuteAddWidget(form.CategoryID, values)

	case inputtypes.CloseDialogAction:
		switch from {
		case inputtypes.ModeAddWidget:
			m.inputHandler.Form().Close()
		case inputtypes.ModeManage:
			m.selection.DeselectAll()
		case inputtypes.ModeDetail:
			m.state.DetailKey = domain.WidgetKey{}
			m.state.DetailContent = ""
			m.inputHandler.ChangeMode(m.detailFrom, m.inputContext())
		}

	case inputtypes.RemoveWidgetAction:
		cmd := m.cmdExecutor.ExecuteRemove(a.Key)
		m.selection.Remove(a.Key)
		return cmd

	case inputtypes.ToggleVisibilityAction:
		return m.cmdExecutor.ExecuteToggleVisibility(a.Key)

	case inputtypes.ShowDetailAction:
		ref, ok := m.state.FindWidget(a.Key)
		if !ok {
			// The handler has already switched to the popup; go back
			if m.inputHandler.CurrentMode() == inputtypes.ModeDetail {
				m.inputHandler.ChangeMode(from, m.inputContext())
			}
			return nil
		}
		m.detailFrom = from
		m.state.DetailKey = a.Key
		m.state.DetailContent = m.renderDetail(ref)

	case inputtypes.CopyContentAction:
		key := a.Key
		if key == (domain.WidgetKey{}) {
			key = m.state.DetailKey
		}
		if ref, ok := m.state.FindWidget(key); ok {
			return m.cmdExecutor.ExecuteCopy(ref)
		}

	case inputtypes.ToggleSelectAction:
		m.selection.Toggle(a.Key)

	case inputtypes.ToggleSelectAllAction:
		m.selection.ToggleAll(logic.WidgetKeys(m.state.ManageRows))

	case inputtypes.BulkVisibilityAction:
		keys := m.selection.SelectedIn(logic.WidgetKeys(m.state.ManageRows))
		m.selection.DeselectAll()
		return m.cmdExecutor.ExecuteBulkVisibility(keys, a.Visible)

	case inputtypes.BulkRemoveAction:
		keys := m.selection.SelectedIn(logic.WidgetKeys(m.state.ManageRows))
		m.selection.DeselectAll()
		return m.cmdExecutor.ExecuteBulkRemove(keys)

	case inputtypes.RefreshAction:
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
		return tea.Batch(m.cmdExecutor.ExecuteReload(), tick())

	case inputtypes.ResetDashboardAction:
		cmd := m.cmdExecutor.ExecuteReset()
		m.afterReplace()
		return cmd

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRender.RenderHelpContent(m.config.UI.Title))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		m.syncSnapshot()
		if m.eventHandler.HandleEvent(msg.Event) {
			return m, m.clearStatusLater()
		}
		return m, nil

	case search.QueryReadyMsg:
		if m.search.Ready(msg) {
			m.state.Results = state.ListState{}
			m.syncSnapshot()
		}
		return m, nil

	case widgetAddedMsg:
		return m, m.handleWidgetAdded(msg)

	case reloadDoneMsg:
		m.state.Refreshing = false
		if msg.Err == nil {
			m.afterReplace()
			m.state.Dashboard = state.ListState{}
		}
		m.syncSnapshot()
		return m, nil

	case copyDoneMsg:
		if msg.Err != nil {
			log.WithError(msg.Err).Warn("clipboard write failed")
			m.state.StatusMessage = fmt.Sprintf("Copy failed: %v", msg.Err)
		} else {
			m.state.StatusMessage = fmt.Sprintf("Copied '%s' to clipboard", msg.Name)
		}
		return m, m.clearStatusLater()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
		}
		return m, nil

	case tickMsg:
		m.syncSnapshot()
		if m.inPagerMode || !m.state.Snapshot.IsLoading {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			log.WithError(msg.err).Warn("help pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blinks and the like go to the active input
	return m, m.inputHandler.Update(msg)
}

// handleWidgetAdded closes the add dialog once its delayed add has landed.
// Adds whose dialog was closed in the meantime still count.
func (m *Model) handleWidgetAdded(msg widgetAddedMsg) tea.Cmd {
	m.syncSnapshot()

	form := m.inputHandler.Form()
	waiting := form.Submitting() && form.CategoryID == msg.CategoryID
	if !msg.Result.Status.Applied() {
		if waiting {
			form.SetSubmitting(false)
			form.SetSubmitError(fmt.Sprintf("Could not add widget: %s", msg.Result.Status))
		}
		return nil
	}

	key := domain.WidgetKey{CategoryID: msg.CategoryID, WidgetID: msg.Result.Widget.ID}
	if idx := logic.IndexOfKey(m.state.DashboardRows, key); idx >= 0 {
		m.navigator.UpdateState(m.state.Dashboard.Index, m.state.Dashboard.Offset, m.listHeight(), len(m.state.DashboardRows))
		m.state.Dashboard.Index, m.state.Dashboard.Offset = m.navigator.SetSelectedIndex(idx)
	}

	if waiting {
		form.Close()
		if m.inputHandler.CurrentMode() == inputtypes.ModeAddWidget {
			m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
		}
	}
	return nil
}

// afterReplace drops UI state that pointed into the old dashboard
func (m *Model) afterReplace() {
	m.search.Sync("", 0)
	m.inputHandler.ResetSearchInput()
	m.selection.DeselectAll()
	m.state.Results = state.ListState{}
	m.state.Manage = state.ListState{}
}

// syncSnapshot copies the store into the UI state and repairs what no
// longer fits, e.g. cursors past the end or selections of removed widgets
func (m *Model) syncSnapshot() {
	m.state.SetSnapshot(m.store.Snapshot())
	m.selection.Prune(logic.WidgetKeys(m.state.ManageRows))

	if m.inputHandler.CurrentMode() == inputtypes.ModeDetail {
		if _, ok := m.state.FindWidget(m.state.DetailKey); !ok {
			m.inputHandler.ChangeMode(m.detailFrom, m.inputContext())
		}
	}

	switch {
	case m.state.Snapshot.HasError && m.inputHandler.CurrentMode() != inputtypes.ModeError:
		m.inputHandler.ChangeMode(inputtypes.ModeError, m.inputContext())
	case !m.state.Snapshot.HasError && m.inputHandler.CurrentMode() == inputtypes.ModeError:
		m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
	}

	m.updateViewport()
}

// updateViewport sizes the list area and clamps every cursor into it
func (m *Model) updateViewport() {
	height := m.state.Height - baseChrome
	if m.search.IsBarOpen() || m.state.Snapshot.SearchQuery != "" {
		height -= searchChrome
	}
	if m.state.Height <= 0 {
		height = 20
	}
	if height < 3 {
		height = 3
	}
	m.state.ViewportHeight = height

	clamp := func(rows []logic.Row, list *state.ListState) {
		m.navigator.UpdateState(list.Index, list.Offset, height, len(rows))
		list.Index = m.navigator.GetSelectedIndex()
		list.Offset = m.navigator.GetViewportOffset()
	}
	clamp(m.state.DashboardRows, &m.state.Dashboard)
	clamp(m.state.ResultRows, &m.state.Results)
	clamp(m.state.ManageRows, &m.state.Manage)
}

func (m *Model) listHeight() int {
	return m.state.ViewportHeight
}

func (m *Model) clearStatusLater() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// renderDetail renders a widget as markdown for the detail popup. Falls
// back to plain text when glamour can't render.
func (m *Model) renderDetail(ref domain.WidgetRef) string {
	status := "Visible"
	if !ref.IsVisible {
		status = "Hidden"
	}

	var md strings.Builder
	md.WriteString(fmt.Sprintf("**Status:** %s  \n", status))
	md.WriteString(fmt.Sprintf("**Widget ID:** `%s`\n\n", ref.ID))
	md.WriteString("---\n\n")
	md.WriteString(ref.Content)
	md.WriteString("\n")

	width := m.state.Width - 16
	if width < 30 {
		width = 30
	}
	if width > 80 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.config.UI.MarkdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.WithError(err).Debug("markdown renderer unavailable")
		return md.String()
	}
	out, err := r.Render(md.String())
	if err != nil {
		log.WithError(err).Debug("markdown render failed")
		return md.String()
	}
	return out
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg { return helpPagerMsg{err: fmt.Errorf("program not set")} }
	}
	program := m.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := NewHelpOps(program).ShowHelpInPager(helpContent)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}
