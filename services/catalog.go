package services

import (
	"context"
	"fmt"

	"gosiwon-finder/models"
	"gosiwon-finder/utils"
)

// CatalogSource yields raw property records, e.g. the compiled-in dataset or
// a persistent store.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]*models.PropertyRecord, error)
}

// Catalog is the normalised, read-only set of properties for a session. It is
// safe for concurrent readers.
type Catalog struct {
	records []*models.PropertyRecord
	byID    map[string]*models.PropertyRecord
	stats   *StatsService
}

// LoadCatalog reads src once and normalises the result.
func LoadCatalog(ctx context.Context, src CatalogSource, logger *utils.Logger) (*Catalog, error) {
	raw, err := src.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch: %w", err)
	}
	return NewCatalog(raw, logger), nil
}

// NewCatalog normalises raw into a Catalog.
func NewCatalog(raw []*models.PropertyRecord, logger *utils.Logger) *Catalog {
	records := NewNormaliser(logger).Normalise(raw)
	byID := make(map[string]*models.PropertyRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	return &Catalog{
		records: records,
		byID:    byID,
		stats:   NewStatsService(logger),
	}
}

// Records returns the catalog in load order. The slice is a copy; the records
// are shared and must not be modified.
func (c *Catalog) Records() []*models.PropertyRecord {
	return append([]*models.PropertyRecord(nil), c.records...)
}

// Len returns the number of properties.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Get looks up a property by id.
func (c *Catalog) Get(id string) (*models.PropertyRecord, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Search runs a query and derives the statistics from its result.
func (c *Catalog) Search(criteria models.Criteria) models.SearchResult {
	results := Query(c.records, criteria)
	return models.SearchResult{
		Results:          results,
		Stats:            c.stats.Generate(results),
		Count:            len(results),
		HasActiveFilters: HasActiveFilters(criteria),
	}
}

// AvailableRooms lists every room open for move-in.
func (c *Catalog) AvailableRooms() []models.AvailableRoom {
	return AvailableRooms(c.records)
}
