// Package commands wires the CLI subcommands to the catalog, storage and
// HTTP layers.
package commands

import (
	"context"
	"fmt"

	"gosiwon-finder/config"
	"gosiwon-finder/dataset"
	"gosiwon-finder/services"
	"gosiwon-finder/storage"
	"gosiwon-finder/utils"
)

// App carries the shared dependencies of every subcommand.
type App struct {
	Config *config.Config
	Logger *utils.Logger
}

// loadCatalog reads the catalog from the configured store, or from the
// compiled-in dataset when no store is selected.
func (a *App) loadCatalog(ctx context.Context) (*services.Catalog, error) {
	if !a.Config.UsesStore() {
		a.Logger.Debug("[catalog] using compiled-in dataset")
		return services.LoadCatalog(ctx, dataset.Static{}, a.Logger)
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	catalog, err := services.LoadCatalog(ctx, store, a.Logger)
	if err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		a.Logger.Warn("[catalog] store %q is empty, run `seed` first", a.Config.StorageDriver)
	}
	a.Logger.Info("[catalog] loaded %d properties from %s", catalog.Len(), a.Config.StorageDriver)
	return catalog, nil
}

func (a *App) openStore(ctx context.Context) (storage.PropertyStore, error) {
	store, err := storage.Open(ctx, a.Config, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}
