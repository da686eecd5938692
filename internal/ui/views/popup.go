package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	grey   lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		grey:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderPopupOverlay draws the popup centred on top of a greyed out copy of
// the main content. Text left and right of the popup stays in place.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	if width > 6 && modalW > width-6 {
		modalW = width - 6
	}
	if height > 4 && modalH > height-4 {
		modalH = height - 4
		popupLines = popupLines[:modalH]
	}
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(ansi.Strip(mainContent), "\n")
	for len(baseLines) < y+modalH || len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	out := make([]string, len(baseLines))
	for i, plain := range baseLines {
		if i < y || i >= y+modalH {
			out[i] = pr.desaturate(plain)
			continue
		}
		out[i] = pr.spliceLine(plain, popupLines[i-y], x, modalW)
	}
	return strings.Join(out, "\n")
}

// spliceLine replaces the cells [x, x+w) of a plain base line with the
// popup line, padding the base where it is too short
func (pr *PopupRenderer) spliceLine(base, popupLine string, x, w int) string {
	left := ansi.Truncate(base, x, "")
	if gap := x - ansi.StringWidth(left); gap > 0 {
		left += strings.Repeat(" ", gap)
	}
	right := ""
	if ansi.StringWidth(base) > x+w {
		right = ansi.TruncateLeft(base, x+w, "")
	}

	middle := ansi.Truncate(popupLine, w, "")
	if gap := w - ansi.StringWidth(middle); gap > 0 {
		middle += strings.Repeat(" ", gap)
	}

	return pr.desaturate(left) + middle + pr.desaturate(right)
}

func (pr *PopupRenderer) desaturate(plain string) string {
	if plain == "" {
		return ""
	}
	return pr.grey.Render(plain)
}
