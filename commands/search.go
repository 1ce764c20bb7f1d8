package commands

import (
	"github.com/spf13/cobra"

	"gosiwon-finder/services"
)

func SearchCmd(app *App) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter and sort the catalog and print the result report",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			result := catalog.Search(flags.criteria())
			services.NewStatsService(app.Logger).Print(cmd.OutOrStdout(), result.Stats, result.Results)
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func RoomsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List every room open for move-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			services.NewStatsService(app.Logger).PrintRooms(cmd.OutOrStdout(), catalog.AvailableRooms())
			return nil
		},
	}
}
