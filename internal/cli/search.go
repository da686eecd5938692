package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"widgetdash/internal/store"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Print widgets whose name or content contains the query",
		Long: `Search matches case-insensitively against widget names and contents,
hidden widgets included.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.loadSeed()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")

			st := store.New(categories)
			st.SetSearchQuery(query)
			results := store.FilteredWidgets(st.Snapshot())

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No widgets match your search for %q\n", query)
				return nil
			}
			noun := "widgets"
			if len(results) == 1 {
				noun = "widget"
			}
			fmt.Fprintf(out, "%d %s found for %q\n", len(results), noun, query)
			for _, r := range results {
				fmt.Fprintf(out, "  [%s] %s: %s\n", r.CategoryName, r.Name, oneLine(r.Content))
			}
			return nil
		},
	}
}
