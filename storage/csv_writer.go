package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gosiwon-finder/models"
)

var csvHeader = []string{
	"id", "name", "location", "subway_station", "subway_minutes", "price", "deposit",
	"rating", "review_count", "available_rooms", "scheduled_vacancy_rooms", "total_rooms",
	"occupancy_rate", "promotion_type", "discount_rate", "urgency", "tags",
}

// CSVWriter writes query results to a CSV file. It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	closer io.Closer
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w, err := newCSVWriter(f, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

func newCSVWriter(out io.Writer, closer io.Closer) (*CSVWriter, error) {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()
	return &CSVWriter{closer: closer, writer: w}, nil
}

// WriteResults appends one row per record, in the given order.
func (c *CSVWriter) WriteResults(records []*models.PropertyRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		promotion, discount, urgency := "", "", ""
		if m := r.Marketing; m != nil {
			if m.Promotion {
				promotion = string(m.PromotionType)
			}
			discount = strconv.FormatFloat(m.DiscountRate, 'f', 2, 64)
			urgency = string(m.UrgencyLevel)
		}

		row := []string{
			r.ID,
			r.Name,
			r.Location,
			r.SubwayStation,
			strconv.Itoa(r.Distance.Subway),
			strconv.Itoa(r.Price),
			strconv.Itoa(r.Deposit),
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
			strconv.Itoa(r.ReviewCount),
			strconv.Itoa(r.Available()),
			strconv.Itoa(r.ScheduledVacancies()),
			strconv.Itoa(r.Total()),
			strconv.Itoa(r.OccupancyRate),
			promotion,
			discount,
			urgency,
			strings.Join(r.Tags, "|"),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file. A flush error takes
// precedence over a close error.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	flushErr := c.writer.Error()
	if c.closer == nil {
		return flushErr
	}
	closeErr := c.closer.Close()
	if flushErr != nil {
		return fmt.Errorf("csv: flush: %w", flushErr)
	}
	return closeErr
}
