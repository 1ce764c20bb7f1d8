package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gosiwon-finder/api"
)

func ServeCmd(app *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			catalog, err := app.loadCatalog(ctx)
			if err != nil {
				return err
			}

			if port == "" {
				port = app.Config.HTTPPort
			}
			e := api.NewServer(catalog, app.Logger)

			errCh := make(chan error, 1)
			go func() {
				app.Logger.Info("Server starting on port %s", port)
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			app.Logger.Info("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (defaults to HTTP_PORT)")
	return cmd
}
