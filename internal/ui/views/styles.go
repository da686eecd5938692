package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Search        lipgloss.Style
	DialogBox     lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Category      lipgloss.Style
	WidgetName    lipgloss.Style
	WidgetContent lipgloss.Style
	WidgetID      lipgloss.Style
	Badge         lipgloss.Style
	AddRow        lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldError    lipgloss.Style
	Visible       lipgloss.Style
	Hidden        lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Category:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		WidgetName:    lipgloss.NewStyle().Bold(true),
		WidgetContent: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		WidgetID:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		AddRow:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		FieldLabel:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		FieldError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Visible:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Hidden:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
