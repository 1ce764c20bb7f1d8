package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosiwon-finder/models"
)

func TestCSVWriterWritesRowsInOrder(t *testing.T) {
	var buf bytes.Buffer
	w, err := newCSVWriter(&buf, nil)
	require.NoError(t, err)

	records := []*models.PropertyRecord{
		{
			ID: "gw-2", Name: "B", Price: 300000, Rating: 4.25, Tags: []string{"quiet", "new"},
			RoomStatus:    &models.RoomStatus{AvailableRooms: 1, TotalRooms: 4},
			OccupancyRate: 75,
			Marketing:     &models.Marketing{Promotion: true, PromotionType: models.PromotionDiscount, DiscountRate: 0.1, UrgencyLevel: models.UrgencyHigh},
		},
		{ID: "gw-1", Name: "A, with comma"},
	}
	require.NoError(t, w.WriteResults(records))
	require.NoError(t, w.Close())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "gw-2", rows[1][0])
	assert.Equal(t, "300000", rows[1][5])
	assert.Equal(t, "1", rows[1][9])
	assert.Equal(t, "75", rows[1][12])
	assert.Equal(t, "discount", rows[1][13])
	assert.Equal(t, "0.10", rows[1][14])
	assert.Equal(t, "quiet|new", rows[1][16])
	assert.Equal(t, "A, with comma", rows[2][1])
	assert.Equal(t, "", rows[2][13], "records without marketing export empty columns")
}

func TestNewCSVWriterCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "results.csv")
	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteResults([]*models.PropertyRecord{{ID: "gw-1"}}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gw-1")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestCSVWriterCloseReportsFlushError(t *testing.T) {
	closer := &closeRecorder{}
	w, err := newCSVWriter(failingWriter{}, closer)
	require.NoError(t, err)

	err = w.Close()
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.True(t, closer.closed, "file is closed even when the flush fails")
}
