package services

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"gosiwon-finder/models"
	"gosiwon-finder/utils"
)

// StatsService computes and prints the summary shown above search results.
type StatsService struct {
	logger *utils.Logger
}

func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Generate summarises an already filtered result set. Nothing is cached; call
// it again whenever the result set changes.
func (s *StatsService) Generate(records []*models.PropertyRecord) models.MarketingStats {
	stats := models.MarketingStats{ResultCount: len(records)}
	if len(records) == 0 {
		return stats
	}

	occupancy := 0
	for _, r := range records {
		stats.AvailableRooms += r.Available()
		if r.HasPromotion() {
			stats.PromotionCount++
		}
		occupancy += r.OccupancyRate
	}
	stats.OccupancyRate = int(math.Round(float64(occupancy) / float64(len(records))))

	s.logger.Debug("[stats] %d results, %d rooms free, %d promotions, %d%% occupancy",
		stats.ResultCount, stats.AvailableRooms, stats.PromotionCount, stats.OccupancyRate)
	return stats
}

// Print writes the search report for records to w.
func (s *StatsService) Print(w io.Writer, st models.MarketingStats, records []*models.PropertyRecord) {
	sep := strings.Repeat("═", 60)
	thin := strings.Repeat("─", 60)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  🏠 GOSIWON SEARCH RESULTS\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Results          : \033[1m%d\033[0m\n", st.ResultCount)
	fmt.Fprintf(w, "  Rooms available  : \033[1;32m%d\033[0m\n", st.AvailableRooms)
	fmt.Fprintf(w, "  With promotion   : \033[1m%d\033[0m\n", st.PromotionCount)
	fmt.Fprintf(w, "  Avg. occupancy   : \033[1m%d%%\033[0m\n", st.OccupancyRate)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Properties\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(records) == 0 {
		fmt.Fprintf(w, "  No properties match these filters. Try another term or clear the filters.\n")
	} else {
		for i, r := range records {
			fmt.Fprintf(w, "  \033[1m%d.\033[0m %s \033[1;32m%.1f ★\033[0m (%d reviews)\n",
				i+1, truncate(r.Name, 30), r.Rating, r.ReviewCount)
			fmt.Fprintf(w, "     %s · %s %d min\n", r.Location, r.SubwayStation, r.Distance.Subway)
			fmt.Fprintf(w, "     %s won/month · deposit %s · %d/%d rooms free · %s\n",
				formatWon(r.Price), formatWon(r.Deposit), r.Available(), r.Total(), AvailabilityStatus(r).Text)
			if b := PromotionBadge(r); b != nil {
				fmt.Fprintf(w, "     \033[1;31m%s\033[0m\n", b.Text)
			}
		}
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

// PrintRooms writes the rooms-available-now report to w.
func (s *StatsService) PrintRooms(w io.Writer, rooms []models.AvailableRoom) {
	thin := strings.Repeat("─", 60)

	fmt.Fprintf(w, "\n\033[1;33m  Rooms available now (%d)\033[0m\n", len(rooms))
	fmt.Fprintf(w, "  %s\n", thin)
	if len(rooms) == 0 {
		fmt.Fprintf(w, "  No rooms are open for move-in right now.\n\n")
		return
	}
	for _, r := range rooms {
		fmt.Fprintf(w, "  %-24s %-8s %4.1f py  %s won  deposit %s\n",
			truncate(r.PropertyName, 22), RoomTypeLabel(r.RoomType), r.Area, formatWon(r.Price), formatWon(r.Deposit))
	}
	fmt.Fprintln(w)
}

// formatWon renders n with thousands separators.
func formatWon(n int) string {
	return humanize.Comma(int64(n))
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
