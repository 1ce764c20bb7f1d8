package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gosiwon-finder/dataset"
	"gosiwon-finder/services"
)

func SeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the configured store's catalog with the compiled-in dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := app.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			catalog, err := services.LoadCatalog(ctx, dataset.Static{}, app.Logger)
			if err != nil {
				return err
			}
			if err := store.Save(ctx, catalog.Records()); err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			app.Logger.Info("[seed] stored %d properties in %s", catalog.Len(), app.Config.StorageDriver)
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d properties into %s\n", catalog.Len(), app.Config.StorageDriver)
			return nil
		},
	}
}
