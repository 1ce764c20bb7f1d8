package services

import (
	"sort"
	"strings"

	"gosiwon-finder/models"
)

// DefaultCriteria returns criteria with every filter disabled and the
// default rating sort.
func DefaultCriteria() models.Criteria {
	return models.Criteria{
		Region:               models.All,
		SubwayStation:        models.All,
		University:           models.All,
		PriceRange:           models.PriceRange{Label: models.All},
		PromotionCategory:    models.All,
		AvailabilityCategory: models.All,
		SortStrategy:         models.SortByRating,
	}
}

// HasActiveFilters reports whether any filter narrows the result set. The
// sort strategy is not a filter.
func HasActiveFilters(c models.Criteria) bool {
	return c.SearchTerm != "" ||
		selected(c.Region) ||
		selected(c.SubwayStation) ||
		selected(c.University) ||
		!c.PriceRange.Unbounded() ||
		promotionFilter(c.PromotionCategory) != "" ||
		availabilityFilter(c.AvailabilityCategory) != models.AvailabilityNone
}

// Query returns the records matching every filter in c, ordered by
// c.SortStrategy. It never modifies records or the records they point to.
func Query(records []*models.PropertyRecord, c models.Criteria) []*models.PropertyRecord {
	m := newMatcher(c)

	out := make([]*models.PropertyRecord, 0, len(records))
	for _, r := range records {
		if r != nil && m.match(r) {
			out = append(out, r)
		}
	}

	SortRecords(out, c.SortStrategy)
	return out
}

// Classify places a record in its availability bucket. The rules form a
// decision list where the first match wins.
func Classify(r *models.PropertyRecord) models.AvailabilityCategory {
	available := r.Available()
	switch {
	case r.Urgency() == models.UrgencyHigh:
		return models.AvailabilityUrgent
	case available > 0 && available <= 2:
		return models.AvailabilityFewRooms
	case available == 0 && r.ScheduledVacancies() > 0:
		return models.AvailabilityScheduledVacancy
	case r.OccupancyRate <= 30:
		return models.AvailabilityManyRooms
	}
	return models.AvailabilityNone
}

// SortRecords stably orders records in place, highest key first.
func SortRecords(records []*models.PropertyRecord, strategy models.SortStrategy) {
	var key func(*models.PropertyRecord) float64
	switch ParseSortStrategy(string(strategy)) {
	case models.SortByAvailability:
		key = func(r *models.PropertyRecord) float64 { return float64(r.Available()) }
	case models.SortByDiscount:
		key = func(r *models.PropertyRecord) float64 { return r.DiscountRate() }
	case models.SortByUrgency:
		key = func(r *models.PropertyRecord) float64 { return float64(urgencyRank(r.Urgency())) }
	default:
		key = func(r *models.PropertyRecord) float64 { return r.Rating }
	}

	sort.SliceStable(records, func(i, j int) bool {
		return key(records[i]) > key(records[j])
	})
}

// ParseSortStrategy maps user input to a strategy; unknown input sorts by rating.
func ParseSortStrategy(s string) models.SortStrategy {
	switch st := models.SortStrategy(strings.ToLower(strings.TrimSpace(s))); st {
	case models.SortByRating, models.SortByAvailability, models.SortByDiscount, models.SortByUrgency:
		return st
	}
	return models.SortByRating
}

// ParseAvailabilityCategory maps user input to a category string; unknown
// input disables the filter.
func ParseAvailabilityCategory(s string) string {
	if cat := availabilityFilter(s); cat != models.AvailabilityNone {
		return string(cat)
	}
	return models.All
}

// ParsePromotionType maps user input to a promotion type string; unknown
// input disables the filter.
func ParsePromotionType(s string) string {
	if pt := promotionFilter(s); pt != "" {
		return string(pt)
	}
	return models.All
}

type matcher struct {
	term         string
	region       string
	station      string
	university   string
	price        models.PriceRange
	promotion    models.PromotionType
	availability models.AvailabilityCategory
}

func newMatcher(c models.Criteria) matcher {
	m := matcher{
		term:         strings.ToLower(c.SearchTerm),
		price:        c.PriceRange,
		promotion:    promotionFilter(c.PromotionCategory),
		availability: availabilityFilter(c.AvailabilityCategory),
	}
	if selected(c.Region) {
		m.region = c.Region
	}
	if selected(c.SubwayStation) {
		m.station = c.SubwayStation
	}
	if selected(c.University) {
		m.university = c.University
	}
	return m
}

func (m matcher) match(r *models.PropertyRecord) bool {
	if m.term != "" && !matchesTerm(r, m.term) {
		return false
	}
	if m.region != "" && !strings.Contains(r.Location, m.region) {
		return false
	}
	if m.station != "" && r.SubwayStation != m.station {
		return false
	}
	if m.university != "" && !contains(r.NearbyUniversities, m.university) {
		return false
	}
	if !m.price.Unbounded() && !m.price.Contains(r.Price) {
		return false
	}
	if m.promotion != "" && (r.Marketing == nil || r.Marketing.PromotionType != m.promotion) {
		return false
	}
	if m.availability != models.AvailabilityNone && Classify(r) != m.availability {
		return false
	}
	return true
}

func matchesTerm(r *models.PropertyRecord, term string) bool {
	if strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Location), term) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func selected(v string) bool {
	return v != "" && v != models.All
}

func promotionFilter(s string) models.PromotionType {
	switch pt := models.PromotionType(strings.ToLower(strings.TrimSpace(s))); pt {
	case models.PromotionDiscount, models.PromotionFreeDeposit, models.PromotionFirstMonthFree,
		models.PromotionReferralBonus, models.PromotionEarlyBird:
		return pt
	}
	return ""
}

func availabilityFilter(s string) models.AvailabilityCategory {
	switch cat := models.AvailabilityCategory(strings.ToLower(strings.TrimSpace(s))); cat {
	case models.AvailabilityManyRooms, models.AvailabilityFewRooms,
		models.AvailabilityScheduledVacancy, models.AvailabilityUrgent:
		return cat
	}
	return models.AvailabilityNone
}

func urgencyRank(u models.UrgencyLevel) int {
	switch u {
	case models.UrgencyHigh:
		return 2
	case models.UrgencyMedium:
		return 1
	case models.UrgencyLow:
		return 0
	}
	return -1
}
