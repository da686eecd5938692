package ui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetdash/internal/config"
	"widgetdash/internal/domain"
	"widgetdash/internal/eventbus"
	"widgetdash/internal/store"
	"widgetdash/internal/ui/forms"
	inputtypes "widgetdash/internal/ui/input/types"
	"widgetdash/internal/ui/services/search"
)

func testSeed() []domain.Category {
	return []domain.Category{
		{
			ID:   "cat-1",
			Name: "Security",
			Widgets: []domain.Widget{
				{ID: "w1", Name: "CVE Count", Content: "12 critical", IsVisible: true},
				{ID: "w2", Name: "Open Alerts", Content: "3 high, 8 medium", IsVisible: true},
			},
		},
		{
			ID:   "cat-2",
			Name: "Compliance",
			Widgets: []domain.Widget{
				{ID: "w3", Name: "CIS Benchmark", Content: "82% passing", IsVisible: false},
			},
		},
		{ID: "cat-3", Name: "Empty", Widgets: []domain.Widget{}},
	}
}

type harness struct {
	t       *testing.T
	model   *Model
	store   *store.Store
	seedErr error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	cfg := config.DefaultConfig()
	cfg.UI.SearchDebounceMs = 0
	cfg.UI.SubmitDelayMs = 0
	cfg.UI.RefreshDelayMs = 0
	cfg.UI.MarkdownStyle = "notty"

	n := 0
	st := store.New(testSeed(), store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}))

	h := &harness{t: t, store: st}
	h.model = NewModel(cfg, st, func() ([]domain.Category, error) {
		if h.seedErr != nil {
			return nil, h.seedErr
		}
		return testSeed(), nil
	})
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends each key and then delivers the results of the commands it
// produced, skipping timers that would outlive the test
func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

// typeText sends the text one rune at a time
func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		if r == ' ' {
			h.press("space")
			continue
		}
		h.press(string(r))
	}
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	_, cmd := h.model.Update(msg)
	for _, next := range collect(cmd) {
		switch next.(type) {
		case search.QueryReadyMsg, widgetAddedMsg, reloadDoneMsg, copyDoneMsg, helpPagerMsg, EventMsg:
			h.send(next)
		}
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func (h *harness) mode() inputtypes.Mode {
	return h.model.inputHandler.CurrentMode()
}

func (h *harness) view() string {
	return h.model.View()
}

func TestDashboardShowsVisibleWidgets(t *testing.T) {
	h := newHarness(t)

	out := h.view()
	assert.Contains(t, out, "CNAPP Dashboard")
	assert.Contains(t, out, "2 of 3 widgets visible across 3 categories")
	assert.Contains(t, out, "CVE Count")
	assert.Contains(t, out, "Open Alerts")
	assert.Contains(t, out, "Widget ID: w1")
	assert.Contains(t, out, "+ Add Widget")
	assert.NotContains(t, out, "CIS Benchmark")
	assert.Contains(t, out, "1 hidden")
}

func TestAddWidgetThroughDialog(t *testing.T) {
	h := newHarness(t)

	h.press("a")
	require.Equal(t, inputtypes.ModeAddWidget, h.mode())
	assert.Contains(t, h.view(), "Add Widget to Security")

	h.typeText("Runtime Threats")
	h.press("tab")
	h.typeText("No active threats")
	h.press("ctrl+s")

	assert.Equal(t, inputtypes.ModeNormal, h.mode())
	widgets := h.store.Snapshot().Categories[0].Widgets
	require.Len(t, widgets, 3)
	assert.Equal(t, "new-1", widgets[2].ID)
	assert.Equal(t, "Runtime Threats", widgets[2].Name)
	assert.Equal(t, "No active threats", widgets[2].Content)
	assert.True(t, widgets[2].IsVisible)

	// Cursor follows the new widget
	assert.Equal(t, 3, h.model.state.Dashboard.Index)
}

func TestAddWidgetValidationKeepsDialogOpen(t *testing.T) {
	h := newHarness(t)

	h.press("a")
	h.typeText("ab")
	h.press("ctrl+s")

	assert.Equal(t, inputtypes.ModeAddWidget, h.mode())
	form := h.model.inputHandler.Form()
	assert.Equal(t, "Widget name must be at least 3 characters long", form.Error(forms.FieldName))
	assert.Equal(t, "Widget content is required", form.Error(forms.FieldContent))
	assert.Len(t, h.store.Snapshot().Categories[0].Widgets, 2)
	assert.Contains(t, h.view(), "Widget content is required")

	h.press("esc")
	assert.Equal(t, inputtypes.ModeNormal, h.mode())
	assert.Len(t, h.store.Snapshot().Categories[0].Widgets, 2)
}

func TestAddFromCategoryAddRow(t *testing.T) {
	h := newHarness(t)

	// Rows: Security, w1, w2, add, Compliance, add, Empty, add
	h.press("G", "enter")
	require.Equal(t, inputtypes.ModeAddWidget, h.mode())
	assert.Equal(t, "cat-3", h.model.inputHandler.Form().CategoryID)
}

func TestSearchOpensResults(t *testing.T) {
	h := newHarness(t)

	h.press("/")
	require.Equal(t, inputtypes.ModeSearch, h.mode())
	h.typeText("alert")

	snap := h.store.Snapshot()
	assert.Equal(t, "alert", snap.SearchQuery)
	require.Len(t, snap.FilteredResults, 1)
	assert.True(t, h.model.search.IsResultsOpen())
	assert.Contains(t, h.view(), `Found 1 widget matching "alert"`)
	assert.Contains(t, h.view(), `1 widget found for "alert"`)

	h.press("enter")
	assert.Equal(t, inputtypes.ModeResults, h.mode())

	h.press("b")
	assert.Equal(t, inputtypes.ModeNormal, h.mode())
	assert.False(t, h.model.search.IsResultsOpen())
	assert.Equal(t, "alert", h.store.Snapshot().SearchQuery, "back keeps the query")

	h.press("esc")
	assert.Equal(t, "", h.store.Snapshot().SearchQuery)
	assert.Empty(t, h.store.Snapshot().FilteredResults)
}

func TestSearchWithoutMatches(t *testing.T) {
	h := newHarness(t)

	h.press("/")
	h.typeText("zzz")

	assert.False(t, h.model.search.IsResultsOpen())
	assert.Contains(t, h.view(), "No widgets found")

	h.press("enter")
	assert.Equal(t, inputtypes.ModeNormal, h.mode())
}

func TestSearchFindsHiddenWidgets(t *testing.T) {
	h := newHarness(t)

	h.press("/")
	h.typeText("cis")

	results := h.store.Snapshot().FilteredResults
	require.Len(t, results, 1)
	assert.Equal(t, "w3", results[0].ID)
	assert.Equal(t, "Compliance", results[0].CategoryName)
}

func TestRemoveAndToggleFromDashboard(t *testing.T) {
	h := newHarness(t)

	h.press("down", "x")
	widgets := h.store.Snapshot().Categories[0].Widgets
	require.Len(t, widgets, 1)
	assert.Equal(t, "w2", widgets[0].ID)

	// Cursor stays on the row that moved up
	h.press("v")
	assert.False(t, h.store.Snapshot().Categories[0].Widgets[0].IsVisible)
	assert.Contains(t, h.view(), "0 of 2 widgets visible")
}

func TestManageBulkHide(t *testing.T) {
	h := newHarness(t)

	h.press("m")
	require.Equal(t, inputtypes.ModeManage, h.mode())
	assert.Contains(t, h.view(), "Manage Widgets")

	h.press("a")
	assert.Equal(t, 3, h.model.selection.GetCount())

	h.press("h")
	assert.Equal(t, 0, store.VisibleWidgetCount(h.store.Snapshot()))
	assert.False(t, h.model.selection.HasSelection())

	h.press("esc")
	assert.Equal(t, inputtypes.ModeNormal, h.mode())
}

func TestManageBulkRemoveSelected(t *testing.T) {
	h := newHarness(t)

	// Rows: Security, w1, w2, Compliance, w3, Empty
	h.press("m", "down", "space", "down", "down", "down", "space", "d")

	snap := h.store.Snapshot()
	assert.Equal(t, 1, store.TotalWidgetCount(snap))
	assert.Equal(t, "w2", snap.Categories[0].Widgets[0].ID)
	assert.Empty(t, snap.Categories[1].Widgets)
}

func TestResetAfterConfirmation(t *testing.T) {
	h := newHarness(t)

	h.press("down", "x")
	require.Equal(t, 2, store.TotalWidgetCount(h.store.Snapshot()))

	h.press("R")
	require.Equal(t, inputtypes.ModeConfirmReset, h.mode())
	h.press("n")
	assert.Equal(t, 2, store.TotalWidgetCount(h.store.Snapshot()))

	h.press("R", "y")
	assert.Equal(t, inputtypes.ModeNormal, h.mode())
	assert.Equal(t, 3, store.TotalWidgetCount(h.store.Snapshot()))
}

func TestRefreshFailureShowsErrorScreen(t *testing.T) {
	h := newHarness(t)
	h.seedErr = errors.New("seed unavailable")

	h.press("r")
	assert.Equal(t, inputtypes.ModeError, h.mode())
	out := h.view()
	assert.Contains(t, out, "Oops! Something went wrong")
	assert.Contains(t, out, "seed unavailable")

	h.seedErr = nil
	h.press("r")
	assert.Equal(t, inputtypes.ModeNormal, h.mode())
	assert.False(t, h.store.Snapshot().HasError)
	assert.Contains(t, h.view(), "CVE Count")
}

func TestDetailPopupReturnsToResults(t *testing.T) {
	h := newHarness(t)

	h.press("/")
	h.typeText("cve")
	h.press("enter")
	require.Equal(t, inputtypes.ModeResults, h.mode())

	h.press("i")
	require.Equal(t, inputtypes.ModeDetail, h.mode())
	assert.Contains(t, h.view(), "12 critical")

	h.press("esc")
	assert.Equal(t, inputtypes.ModeResults, h.mode())
}

func TestDetailForMissingWidgetStaysClosed(t *testing.T) {
	h := newHarness(t)

	h.press("j", "i")
	require.Equal(t, inputtypes.ModeDetail, h.mode())
	h.press("esc")
	require.Equal(t, inputtypes.ModeNormal, h.mode())

	// A stale key, e.g. a widget removed between the key press and the action
	missing := domain.WidgetKey{CategoryID: "cat-1", WidgetID: "gone"}
	h.model.inputHandler.ChangeMode(inputtypes.ModeDetail, h.model.inputContext())
	h.model.processAction(inputtypes.ShowDetailAction{Key: missing}, inputtypes.ModeNormal)

	assert.Equal(t, inputtypes.ModeNormal, h.mode())
	assert.Equal(t, domain.WidgetKey{}, h.model.state.DetailKey)
	assert.Empty(t, h.model.state.DetailContent)
}

func TestEventsUpdateStatusLine(t *testing.T) {
	h := newHarness(t)

	h.send(EventMsg{Event: eventbus.WidgetRemovedEvent{CategoryID: "cat-1", WidgetID: "w1", Name: "CVE Count"}})
	assert.Equal(t, "Removed widget 'CVE Count'", h.model.state.StatusMessage)
	assert.Contains(t, h.view(), "Removed widget 'CVE Count'")

	h.send(clearStatusMsg{seq: h.model.statusSeq})
	assert.Empty(t, h.model.state.StatusMessage)
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	h := newHarness(t)
	h.store.SetLoading(true)
	h.send(tickMsg(time.Now()))

	h.press("x")
	assert.Equal(t, 3, store.TotalWidgetCount(h.store.Snapshot()))
	assert.Contains(t, h.view(), "Loading dashboard...")
}
