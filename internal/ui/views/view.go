package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"widgetdash/internal/domain"
	"widgetdash/internal/ui/logic"
)

// ListView is one scrollable list and its cursor
type ListView struct {
	Rows   []logic.Row
	Index  int
	Offset int
}

// SearchView is what the search bar shows
type SearchView struct {
	BarOpen     bool
	Focused     bool
	InputView   string // rendered text input
	Query       string // query currently applied to the store
	Matches     int
	Pending     bool
	ResultsOpen bool
}

// FormView is what the add widget dialog shows
type FormView struct {
	CategoryName string
	NameView     string
	ContentView  string
	NameLen      int
	ContentLen   int
	NameError    string
	ContentError string
	SubmitError  string
	ContentFocus bool
	Submitting   bool
}

// DetailView is a widget opened in the detail popup
type DetailView struct {
	Title    string
	Category string
	Body     string // pre-rendered markdown
}

// ManageView is the widget management dialog
type ManageView struct {
	List          ListView
	IsChecked     func(domain.WidgetKey) bool
	AllChecked    bool
	SomeChecked   bool
	SelectedCount int
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Mode           string
	ViewportHeight int

	Categories     int
	TotalWidgets   int
	VisibleWidgets int

	Dashboard ListView
	Results   ListView
	Search    SearchView

	Manage       *ManageView
	Form         *FormView
	Detail       *DetailView
	ConfirmReset bool

	Loading       bool
	ErrorMessage  string
	HasError      bool
	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	rows        *RowRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		rows:        NewRowRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n\n")

	switch {
	case state.HasError:
		content.WriteString(r.renderError(state))
	case state.Loading:
		content.WriteString(r.renderLoading())
	default:
		if state.Search.BarOpen || state.Search.Query != "" {
			content.WriteString(r.renderSearchBar(state.Search))
			content.WriteString("\n\n")
		}
		if state.Search.ResultsOpen && state.Search.Query != "" {
			content.WriteString(r.renderResults(state))
		} else {
			content.WriteString(r.renderDashboard(state))
		}
	}

	footer := r.renderFooter(state)

	// Push the footer to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	footerLines := strings.Count(footer, "\n") + 1
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	switch {
	case state.Form != nil:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderForm(*state.Form), state.Height, state.Width, r.styles.DialogBox)
	case state.Manage != nil:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderManage(*state.Manage, state), state.Height, state.Width, r.styles.DialogBox)
	case state.Detail != nil:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderDetail(*state.Detail), state.Height, state.Width, r.styles.InfoBox)
	case state.ConfirmReset:
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderConfirmReset(), state.Height, state.Width, r.styles.DialogBox)
	}

	return finalContent
}

func (r *Renderer) contentWidth(state ViewState) int {
	if state.Width <= 0 {
		return 76
	}
	return state.Width - 4 // main container padding
}

// renderHeader renders the title with the widget totals right aligned
func (r *Renderer) renderHeader(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "Dashboard"
	}
	logo := r.styles.Title.Render(title)

	categories := "categories"
	if state.Categories == 1 {
		categories = "category"
	}
	summary := fmt.Sprintf("%d of %d widgets visible across %d %s",
		state.VisibleWidgets, state.TotalWidgets, state.Categories, categories)
	right := r.styles.Dim.Render(summary)

	padding := r.contentWidth(state) - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderSearchBar renders the input plus a one line summary of the results
func (r *Renderer) renderSearchBar(s SearchView) string {
	var b strings.Builder
	b.WriteString(r.styles.Search.Render("/ "))
	if s.BarOpen {
		b.WriteString(s.InputView)
	} else {
		b.WriteString(s.Query)
	}
	b.WriteString("\n")

	switch {
	case s.Pending:
		b.WriteString(r.styles.StatusLoading.Render("Searching..."))
	case s.Query == "":
		b.WriteString(r.styles.Dim.Render("Search widgets by name or content"))
	case s.Matches == 0:
		b.WriteString(r.styles.StatusWarning.Render("No widgets found"))
	default:
		b.WriteString(r.styles.StatusSuccess.Render(
			fmt.Sprintf("Found %s matching \"%s\"", Plural(s.Matches, "widget"), s.Query)))
	}
	return b.String()
}

// renderDashboard renders every category with its visible widgets
func (r *Renderer) renderDashboard(state ViewState) string {
	if len(state.Dashboard.Rows) == 0 {
		return r.styles.Dim.Render("No categories\nIt looks like there are no dashboard categories to display.")
	}
	width := r.contentWidth(state)
	lines := make([]string, len(state.Dashboard.Rows))
	for i, row := range state.Dashboard.Rows {
		isSelected := i == state.Dashboard.Index && state.Mode != "search"
		switch row.Kind {
		case logic.RowCategory:
			lines[i] = r.rows.RenderCategory(row, isSelected, width)
		case logic.RowWidget:
			lines[i] = r.rows.RenderWidget(row.Widget, isSelected, "", width)
		case logic.RowAddWidget:
			lines[i] = r.rows.RenderAddRow(isSelected, width)
		}
	}
	return r.renderWindow(lines, state.Dashboard.Offset, state.ViewportHeight)
}

// renderResults renders the search results view
func (r *Renderer) renderResults(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Confirm.Render("Search Results"))
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%s found for \"%s\"",
		Plural(len(state.Results.Rows), "widget"), state.Search.Query)))
	b.WriteString("\n\n")

	if len(state.Results.Rows) == 0 {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("No widgets match your search for \"%s\"", state.Search.Query)))
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render("Press b to go back to the dashboard"))
		return b.String()
	}

	width := r.contentWidth(state)
	lines := make([]string, len(state.Results.Rows))
	for i, row := range state.Results.Rows {
		isSelected := i == state.Results.Index && state.Mode == "results"
		lines[i] = r.rows.RenderResult(row, isSelected, state.Search.Query, width)
	}
	b.WriteString(r.renderWindow(lines, state.Results.Offset, state.ViewportHeight-2))
	return b.String()
}

// renderWindow shows the slice of lines inside the viewport with scroll
// indicators when there is more above or below
func (r *Renderer) renderWindow(lines []string, offset, height int) string {
	if height <= 0 {
		height = 20
	}
	total := len(lines)
	if offset > total {
		offset = total
	}
	if offset < 0 {
		offset = 0
	}

	effectiveHeight := height
	needsTop := offset > 0
	needsBottom := total > offset+height
	if needsTop {
		effectiveHeight--
	}
	if needsBottom {
		effectiveHeight--
	}

	var out []string
	if needsTop {
		out = append(out, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	end := offset + effectiveHeight
	if end > total {
		end = total
	}
	out = append(out, lines[offset:end]...)
	if needsBottom {
		out = append(out, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}
	return strings.Join(out, "\n")
}

// renderLoading renders the spinner shown while the dashboard loads
func (r *Renderer) renderLoading() string {
	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	return r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading dashboard...", spinner[frame]))
}

// renderError renders the error screen
func (r *Renderer) renderError(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.StatusError.Bold(true).Render("Oops! Something went wrong"))
	b.WriteString("\n\n")
	if state.ErrorMessage != "" {
		b.WriteString(state.ErrorMessage)
		b.WriteString("\n\n")
	}
	b.WriteString(r.styles.Help.Render("Press r to try again • q to quit"))
	return b.String()
}

// renderFooter renders the status message above the key hints
func (r *Renderer) renderFooter(state ViewState) string {
	hints := r.styles.Help.Render(hintsFor(state.Mode))
	if state.StatusMessage == "" {
		return hints
	}
	return r.statusStyle(state.StatusMessage).Render(state.StatusMessage) + "\n" + hints
}

func (r *Renderer) statusStyle(msg string) lipgloss.Style {
	lower := strings.ToLower(msg)
	switch {
	case strings.HasPrefix(lower, "error"), strings.Contains(lower, "failed"):
		return r.styles.StatusError
	case strings.Contains(lower, "not found"), strings.Contains(lower, "skipped"):
		return r.styles.StatusWarning
	}
	return r.styles.Status
}

func hintsFor(mode string) string {
	switch mode {
	case "search":
		return "type to search • enter results • ctrl+u clear • esc close"
	case "results":
		return "↑/↓ move • enter details • v hide • x remove • / search • b back"
	case "add-widget":
		return "tab next field • ctrl+s add • esc cancel"
	case "manage":
		return "space select • a all • v toggle • s/h/d show/hide/remove selected • esc close"
	case "reset-confirm":
		return "y reset • n cancel"
	case "detail":
		return "y copy content • esc close"
	case "error":
		return "r try again • q quit"
	}
	return "↑/↓ move • a add • x remove • v hide • / search • m manage • R reset • ? help • q quit"
}
