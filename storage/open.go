package storage

import (
	"context"
	"fmt"
	"time"

	"gosiwon-finder/config"
	"gosiwon-finder/utils"
)

// Open returns the PropertyStore selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config, logger *utils.Logger) (PropertyStore, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		logger.Info("[storage] connecting to PostgreSQL at %s:%s", cfg.PostgresHost, cfg.PostgresPort)
		retry := &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		}
		store, err := NewPostgresStore(ctx, cfg.DSN(), retry)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverSQLite:
		logger.Info("[storage] opening SQLite database %s", cfg.SQLitePath)
		store, err := NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverNone, "":
		return nil, fmt.Errorf("storage: no driver configured (set STORAGE_DRIVER=postgres|sqlite)")
	}
	return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
}
