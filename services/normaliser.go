package services

import (
	"math"
	"strings"
	"unicode"

	"gosiwon-finder/models"
	"gosiwon-finder/utils"
)

// Normaliser turns raw catalog records into the consistent, read-only
// records the query engine works on.
type Normaliser struct {
	logger *utils.Logger
}

// NewNormaliser creates a Normaliser with the given logger.
func NewNormaliser(logger *utils.Logger) *Normaliser {
	return &Normaliser{logger: logger}
}

// Normalise returns cleaned deep copies of raw. Records without an id and
// repeated ids are dropped; the input is never modified.
func (n *Normaliser) Normalise(raw []*models.PropertyRecord) []*models.PropertyRecord {
	seen := utils.NewIDSet()
	result := make([]*models.PropertyRecord, 0, len(raw))

	for _, r := range raw {
		if r == nil {
			continue
		}

		id := strings.TrimSpace(r.ID)
		if id == "" {
			n.logger.Warn("[normaliser] Dropping property with empty id: %s", r.Name)
			continue
		}
		if !seen.Add(id) {
			n.logger.Debug("[normaliser] Duplicate id skipped: %s", id)
			continue
		}

		p := r.Clone()
		p.ID = id
		p.Name = normaliseText(p.Name)
		p.Location = normaliseText(p.Location)
		p.SubwayStation = normaliseText(p.SubwayStation)
		p.Tags = normaliseList(p.Tags)
		p.NearbyUniversities = normaliseList(p.NearbyUniversities)
		p.Rating = clampRating(p.Rating)
		p.ReviewCount = nonNegative(p.ReviewCount)
		p.Price = nonNegative(p.Price)
		p.Deposit = nonNegative(p.Deposit)

		if len(p.Rooms) > 0 {
			p.RoomStatus = DeriveRoomStatus(p.Rooms)
		} else if p.RoomStatus != nil && reconcileRoomStatus(p.RoomStatus) {
			n.logger.Warn("[normaliser] Inconsistent room counts for %s, adjusted to %+v", id, *p.RoomStatus)
		}
		p.OccupancyRate = OccupancyRate(p.RoomStatus)

		if m := p.Marketing; m != nil {
			m.DiscountRate = clampUnit(m.DiscountRate)
			if m.ScheduledVacancyPromotion != nil {
				m.ScheduledVacancyPromotion.DiscountRate = clampUnit(m.ScheduledVacancyPromotion.DiscountRate)
			}
		}

		result = append(result, p)
	}

	n.logger.Info("[normaliser] Normalised %d → %d properties (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// DeriveRoomStatus counts rooms per status. Rooms with an unknown status only
// count toward the total.
func DeriveRoomStatus(rooms []models.RoomRecord) *models.RoomStatus {
	rs := &models.RoomStatus{TotalRooms: len(rooms)}
	for _, room := range rooms {
		switch room.Status {
		case models.RoomAvailable:
			rs.AvailableRooms++
		case models.RoomOccupied:
			rs.OccupiedRooms++
		case models.RoomReserved:
			rs.ReservedRooms++
		case models.RoomMaintenance:
			rs.MaintenanceRooms++
		case models.RoomScheduledVacancy:
			rs.ScheduledVacancyRooms++
		}
	}
	return rs
}

// reconcileRoomStatus clamps negative counts to zero and raises TotalRooms to
// the sum of the status counts when it is smaller. It reports whether rs changed.
func reconcileRoomStatus(rs *models.RoomStatus) bool {
	before := *rs
	counts := []*int{
		&rs.AvailableRooms, &rs.OccupiedRooms, &rs.ReservedRooms,
		&rs.MaintenanceRooms, &rs.ScheduledVacancyRooms,
	}
	sum := 0
	for _, c := range counts {
		*c = nonNegative(*c)
		sum += *c
	}
	rs.TotalRooms = nonNegative(rs.TotalRooms)
	if sum > rs.TotalRooms {
		rs.TotalRooms = sum
	}
	return *rs != before
}

// OccupancyRate is the rounded percentage of rooms that are taken: every room
// that is neither available nor under maintenance. Reserved and
// scheduled-vacancy rooms count as taken. Aggregates that only carry
// available and total counts therefore still yield a rate. A missing or empty
// aggregate yields 0.
func OccupancyRate(rs *models.RoomStatus) int {
	if rs == nil || rs.TotalRooms <= 0 {
		return 0
	}
	taken := rs.TotalRooms - rs.AvailableRooms - rs.MaintenanceRooms
	rate := int(math.Round(float64(taken) * 100 / float64(rs.TotalRooms)))
	switch {
	case rate < 0:
		return 0
	case rate > 100:
		return 100
	}
	return rate
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}

func normaliseList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = normaliseText(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clampRating(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 5:
		return 5
	}
	return v
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
