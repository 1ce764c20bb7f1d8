package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gosiwon-finder/storage"
)

func ExportCmd(app *App) *cobra.Command {
	var (
		flags queryFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a query result to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = app.Config.CSVOutputPath
			}
			w, err := storage.NewCSVWriter(path)
			if err != nil {
				return err
			}

			result := catalog.Search(flags.criteria())
			if err := w.WriteResults(result.Results); err != nil {
				_ = w.Close()
				return fmt.Errorf("export: %w", err)
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("export: close: %w", err)
			}

			app.Logger.Info("[export] %d properties written to %s", result.Count, path)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d properties to %s\n", result.Count, path)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "CSV output path (defaults to CSV_OUTPUT_PATH)")
	return cmd
}
