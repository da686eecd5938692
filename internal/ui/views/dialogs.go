package views

import (
	"fmt"
	"strings"

	"widgetdash/internal/ui/logic"
	"widgetdash/internal/validation"
)

// renderForm renders the add widget dialog
func (r *Renderer) renderForm(f FormView) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(fmt.Sprintf("Add Widget to %s", f.CategoryName)))
	b.WriteString("\n\n")

	b.WriteString(r.fieldLabel("Widget Name *", !f.ContentFocus))
	b.WriteString("\n")
	b.WriteString(f.NameView)
	b.WriteString("\n")
	b.WriteString(r.fieldFooter(f.NameError, f.NameLen, validation.NameMaxLength))
	b.WriteString("\n\n")

	b.WriteString(r.fieldLabel("Widget Content *", f.ContentFocus))
	b.WriteString("\n")
	b.WriteString(f.ContentView)
	b.WriteString("\n")
	b.WriteString(r.fieldFooter(f.ContentError, f.ContentLen, validation.ContentMaxLength))
	b.WriteString("\n\n")

	if f.SubmitError != "" {
		b.WriteString(r.styles.StatusError.Render(f.SubmitError))
		b.WriteString("\n")
	}
	if f.Submitting {
		b.WriteString(r.styles.StatusLoading.Render("Adding..."))
	} else {
		b.WriteString(r.styles.Help.Render("ctrl+s add widget • tab next field • esc cancel"))
	}
	return b.String()
}

func (r *Renderer) fieldLabel(label string, focused bool) string {
	if focused {
		return r.styles.Search.Render("› ") + r.styles.FieldLabel.Render(label)
	}
	return "  " + r.styles.FieldLabel.Render(label)
}

// fieldFooter shows the field error on the left and the character counter
// on the right
func (r *Renderer) fieldFooter(errMsg string, n, max int) string {
	counter := r.styles.Dim.Render(fmt.Sprintf("%d/%d", n, max))
	if errMsg == "" {
		return counter
	}
	return r.styles.FieldError.Render(errMsg) + "  " + counter
}

// renderManage renders the widget management dialog
func (r *Renderer) renderManage(m ManageView, state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Manage Widgets"))
	b.WriteString("\n\n")

	widgets := 0
	for _, row := range m.List.Rows {
		if row.Kind == logic.RowWidget {
			widgets++
		}
	}
	if widgets == 0 {
		b.WriteString(r.styles.Dim.Render("No widgets found"))
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render("Add some widgets to get started"))
		return b.String()
	}

	box := "[ ]"
	switch {
	case m.AllChecked:
		box = "[x]"
	case m.SomeChecked:
		box = "[-]"
	}
	b.WriteString(fmt.Sprintf("%s Select all  %s", box, r.styles.Dim.Render(fmt.Sprintf("%d selected", m.SelectedCount))))
	b.WriteString("\n")
	if m.SelectedCount > 0 {
		b.WriteString(r.styles.Search.Render("s show selected • h hide selected • d remove selected"))
	} else {
		b.WriteString(r.styles.Dim.Render("space to select widgets for bulk actions"))
	}
	b.WriteString("\n\n")

	width := r.contentWidth(state) - 10
	if width > 70 {
		width = 70
	}
	lines := make([]string, len(m.List.Rows))
	for i, row := range m.List.Rows {
		isCursor := i == m.List.Index
		switch row.Kind {
		case logic.RowCategory:
			lines[i] = r.rows.finish(fmt.Sprintf("%s  %s", r.styles.Category.Render(row.CategoryName),
				r.styles.Dim.Render(Plural(row.TotalCount, "widget"))), isCursor, width)
		case logic.RowWidget:
			checked := false
			if key, ok := row.Key(); ok && m.IsChecked != nil {
				checked = m.IsChecked(key)
			}
			lines[i] = r.rows.RenderManaged(row.Widget, isCursor, checked, width)
		}
	}

	height := state.ViewportHeight - 6
	if height < 5 {
		height = 5
	}
	b.WriteString(r.renderWindow(lines, m.List.Offset, height))
	return b.String()
}

// renderDetail renders one widget in full
func (r *Renderer) renderDetail(d DetailView) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(d.Title))
	if d.Category != "" {
		b.WriteString("  ")
		b.WriteString(r.styles.Badge.Render(d.Category))
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(d.Body, "\n"))
	return b.String()
}

func (r *Renderer) renderConfirmReset() string {
	return r.styles.Confirm.Render("Reset the dashboard to its initial widgets?") + "\n\n" +
		r.styles.Dim.Render("Added widgets, removals and visibility changes are lost. (y/n)")
}
