package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"widgetdash/internal/domain"
	"widgetdash/internal/store"
)

func newListCmd(a *app) *cobra.Command {
	var categoryID string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the dashboard's categories and widgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.loadSeed()
			if err != nil {
				return err
			}
			snap := store.New(categories).Snapshot()

			if categoryID != "" {
				c, ok := store.FindCategory(snap, categoryID)
				if !ok {
					return unknownCategory(snap, categoryID)
				}
				snap.Categories = []domain.Category{c}
			}
			return printDashboard(cmd.OutOrStdout(), snap, all)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Only print this category")
	cmd.Flags().BoolVar(&all, "all", false, "Include hidden widgets")
	return cmd
}

// printDashboard writes each category with its visible count and widgets
func printDashboard(w io.Writer, s store.State, all bool) error {
	if len(s.Categories) == 0 {
		_, err := fmt.Fprintln(w, "No categories")
		return err
	}

	counts := store.VisibleWidgetsCountByCategory(s)
	var b strings.Builder
	for i, c := range s.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%s): %d of %d visible\n", c.Name, c.ID, counts[c.ID], len(c.Widgets))
		for _, wd := range c.Widgets {
			if !wd.IsVisible && !all {
				continue
			}
			line := fmt.Sprintf("  - %s: %s [%s]", wd.Name, oneLine(wd.Content), wd.ID)
			if !wd.IsVisible {
				line += " (hidden)"
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// unknownCategory builds the error for a missing category id, suggesting
// the closest existing id when it is near enough
func unknownCategory(s store.State, id string) error {
	best := ""
	bestDist := -1
	for _, c := range s.Categories {
		d := levenshtein.ComputeDistance(strings.ToLower(id), strings.ToLower(c.ID))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.ID, d
		}
	}

	limit := len(id) / 2
	if limit < 2 {
		limit = 2
	}
	if best != "" && bestDist <= limit {
		return fmt.Errorf("unknown category %q (did you mean %q?)", id, best)
	}
	return fmt.Errorf("unknown category %q", id)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
