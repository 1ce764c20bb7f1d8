package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd assembles the gosiwon CLI.
func RootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gosiwon",
		Short:         "Search and serve the gosiwon room catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		SearchCmd(app),
		RoomsCmd(app),
		ExportCmd(app),
		SeedCmd(app),
		ServeCmd(app),
	)
	return root
}
