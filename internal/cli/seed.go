package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"widgetdash/internal/seed"
)

func newSeedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inspect seed files",
	}

	validate := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a seed file against the schema",
		Long:  `Validates FILE, or the configured seed when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.SeedPath
			if len(args) == 1 {
				path = args[0]
			}

			categories, err := seed.LoadFile(path)
			if err != nil {
				return err
			}

			widgets := 0
			for _, c := range categories {
				widgets += len(c.Widgets)
			}
			source := path
			if source == "" {
				source = "built-in seed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d categories, %d widgets\n", source, len(categories), widgets)
			return nil
		},
	}

	schema := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema seed files are validated against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.AddCommand(validate, schema)
	return cmd
}
