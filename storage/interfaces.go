package storage

import (
	"context"

	"gosiwon-finder/models"
)

// PropertyStore is the interface any catalog backend must satisfy.
type PropertyStore interface {
	Save(ctx context.Context, records []*models.PropertyRecord) error
	FetchAll(ctx context.Context) ([]*models.PropertyRecord, error)
	Close() error
}

// ResultWriter exports an ordered result set.
type ResultWriter interface {
	WriteResults(records []*models.PropertyRecord) error
	Close() error
}
