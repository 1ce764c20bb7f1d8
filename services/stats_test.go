package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"gosiwon-finder/models"
)

func statsRecords() []*models.PropertyRecord {
	return []*models.PropertyRecord{
		{ID: "a", Name: "A", RoomStatus: &models.RoomStatus{AvailableRooms: 3, TotalRooms: 10}, OccupancyRate: 70,
			Marketing: &models.Marketing{Promotion: true, PromotionType: models.PromotionDiscount, DiscountRate: 0.1}},
		{ID: "b", Name: "B", RoomStatus: &models.RoomStatus{AvailableRooms: 0, TotalRooms: 5}, OccupancyRate: 100},
		{ID: "c", Name: "C", OccupancyRate: 45, Marketing: &models.Marketing{UrgencyLevel: models.UrgencyHigh}},
	}
}

func TestStatsGenerate(t *testing.T) {
	svc := NewStatsService(newTestLogger())
	st := svc.Generate(statsRecords())

	assert.Equal(t, 3, st.ResultCount)
	assert.Equal(t, 3, st.AvailableRooms)
	assert.Equal(t, 1, st.PromotionCount, "marketing without the promotion flag is not a promotion")
	assert.Equal(t, 72, st.OccupancyRate)
}

func TestStatsEmptyInput(t *testing.T) {
	svc := NewStatsService(newTestLogger())
	assert.Equal(t, models.MarketingStats{}, svc.Generate(nil))
}

func TestStatsPrint(t *testing.T) {
	svc := NewStatsService(newTestLogger())
	records := statsRecords()

	var buf bytes.Buffer
	svc.Print(&buf, svc.Generate(records), records)
	out := buf.String()
	assert.Contains(t, out, "GOSIWON SEARCH RESULTS")
	assert.Contains(t, out, "10% off")

	buf.Reset()
	svc.Print(&buf, svc.Generate(nil), nil)
	assert.Contains(t, buf.String(), "No properties match these filters")
}

func TestFormatWon(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{450000, "450,000"},
		{1000000, "1,000,000"},
		{-25000, "-25,000"},
	}
	for _, tt := range tests {
		if got := formatWon(tt.in); got != tt.want {
			t.Errorf("formatWon(%d) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "강남 스터디 하우스", truncate("강남 스터디 하우스", 20))
	assert.Equal(t, "강남 스...", truncate("강남 스터디 하우스", 7))
}
