package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"widgetdash/internal/domain"
	"widgetdash/internal/ui/logic"
)

// idPrefixLen is how much of a widget id is shown on a card
const idPrefixLen = 8

// RowRenderer renders single list rows: category headers, widget cards and
// the add row
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{styles: styles}
}

// RenderCategory renders a category header with its visible widget count
func (rr *RowRenderer) RenderCategory(row logic.Row, isSelected bool, width int) string {
	line := fmt.Sprintf("▼ %s  %s", rr.styles.Category.Render(row.CategoryName),
		rr.styles.Dim.Render(Plural(row.VisibleCount, "widget")))
	if hidden := row.TotalCount - row.VisibleCount; hidden > 0 {
		line += rr.styles.Hidden.Render(fmt.Sprintf(" · %d hidden", hidden))
	}
	return rr.finish(line, isSelected, width)
}

// RenderWidget renders a widget card on one line. The query, if any, is
// highlighted in the name and content.
func (rr *RowRenderer) RenderWidget(w domain.Widget, isSelected bool, query string, width int) string {
	name := highlightMatch(w.Name, query, rr.styles.Highlight, rr.styles.WidgetName)
	content := highlightMatch(singleLine(w.Content), query, rr.styles.Highlight, rr.styles.WidgetContent)
	line := fmt.Sprintf("    %s  %s  %s", name, content, rr.styles.WidgetID.Render(ShortID(w.ID)))
	return rr.finish(line, isSelected, width)
}

// RenderResult renders a search result: the widget plus a badge naming its
// category
func (rr *RowRenderer) RenderResult(row logic.Row, isSelected bool, query string, width int) string {
	name := highlightMatch(row.Widget.Name, query, rr.styles.Highlight, rr.styles.WidgetName)
	content := highlightMatch(singleLine(row.Widget.Content), query, rr.styles.Highlight, rr.styles.WidgetContent)
	line := fmt.Sprintf("  %s %s  %s", rr.styles.Badge.Render(row.CategoryName), name, content)
	return rr.finish(line, isSelected, width)
}

// RenderAddRow renders the add widget entry at the end of a category
func (rr *RowRenderer) RenderAddRow(isSelected bool, width int) string {
	return rr.finish(rr.styles.AddRow.Render("    + Add Widget"), isSelected, width)
}

// RenderManaged renders a widget in the manage dialog with its checkbox and
// visibility state
func (rr *RowRenderer) RenderManaged(w domain.Widget, isCursor, isChecked bool, width int) string {
	box := "[ ]"
	if isChecked {
		box = "[x]"
	}
	state := rr.styles.Visible.Render("● visible")
	if !w.IsVisible {
		state = rr.styles.Hidden.Render("○ hidden")
	}
	line := fmt.Sprintf("  %s %s  %s", box, rr.styles.WidgetName.Render(w.Name), state)
	return rr.finish(line, isCursor, width)
}

// finish truncates the line to the width and paints the cursor background
func (rr *RowRenderer) finish(line string, isSelected bool, width int) string {
	if width > 0 && ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	if !isSelected {
		return line
	}
	plain := ansi.Strip(line)
	if width > 0 {
		if n := lipgloss.Width(plain); n < width {
			plain += strings.Repeat(" ", width-n)
		}
	}
	return rr.styles.SelectionBg.Render(plain)
}

// ShortID returns the truncated id shown on widget cards
func ShortID(id string) string {
	if len(id) <= idPrefixLen {
		return "Widget ID: " + id
	}
	return fmt.Sprintf("Widget ID: %s...", id[:idPrefixLen])
}

// Plural formats a count with its noun, adding an s unless it is one
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// highlightMatch highlights the first case-insensitive match of query in text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if strings.TrimSpace(query) == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Case folding can change byte lengths; don't slice in that case
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
