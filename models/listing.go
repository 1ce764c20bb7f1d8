package models

// All is the sentinel value that disables a selection filter.
const All = "all"

// SortStrategy selects the result ordering.
type SortStrategy string

const (
	SortByRating       SortStrategy = "rating"
	SortByAvailability SortStrategy = "availability"
	SortByDiscount     SortStrategy = "discount"
	SortByUrgency      SortStrategy = "urgency"
)

// AvailabilityCategory is the quick-filter bucket a property falls into.
type AvailabilityCategory string

const (
	AvailabilityManyRooms        AvailabilityCategory = "many_rooms"
	AvailabilityFewRooms         AvailabilityCategory = "few_rooms"
	AvailabilityScheduledVacancy AvailabilityCategory = "scheduled_vacancy"
	AvailabilityUrgent           AvailabilityCategory = "urgent"
	// AvailabilityNone is normal availability, matched by no quick filter.
	AvailabilityNone AvailabilityCategory = ""
)

// PriceRange is an inclusive monthly price band. Max <= 0 means no upper
// bound, so the zero value disables the filter.
type PriceRange struct {
	Label string `json:"label,omitempty"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Unbounded reports whether the range accepts every price.
func (r PriceRange) Unbounded() bool {
	return r.Min <= 0 && r.Max <= 0
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price int) bool {
	if price < r.Min {
		return false
	}
	return r.Max <= 0 || price <= r.Max
}

// Criteria is the set of user selections driving a listing query. Empty
// strings behave like the All sentinel.
type Criteria struct {
	SearchTerm           string       `json:"searchTerm"`
	Region               string       `json:"region"`
	SubwayStation        string       `json:"subwayStation"`
	University           string       `json:"university"`
	PriceRange           PriceRange   `json:"priceRange"`
	PromotionCategory    string       `json:"promotionCategory"`
	AvailabilityCategory string       `json:"availabilityCategory"`
	SortStrategy         SortStrategy `json:"sortStrategy"`
}

// MarketingStats is the summary shown above the result grid.
type MarketingStats struct {
	AvailableRooms int `json:"availableRooms"`
	PromotionCount int `json:"promotionCount"`
	OccupancyRate  int `json:"occupancyRate"`
	ResultCount    int `json:"resultCount"`
}

// AvailableRoom is a room open for move-in, flattened with its property.
type AvailableRoom struct {
	RoomID           string   `json:"id"`
	PropertyID       string   `json:"gosiwonId"`
	PropertyName     string   `json:"gosiwonName"`
	PropertyLocation string   `json:"gosiwonLocation"`
	PropertyRating   float64  `json:"gosiwonRating"`
	PropertyImage    string   `json:"gosiwonImage"`
	RoomType         RoomType `json:"roomType"`
	Area             float64  `json:"area"`
	Price            int      `json:"price"`
	Deposit          int      `json:"deposit"`
	Facilities       []string `json:"facilities"`
}

// Badge is a short label attached to a property card.
type Badge struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// SearchResult is an ordered result set with the statistics derived from it.
type SearchResult struct {
	Results          []*PropertyRecord `json:"results"`
	Stats            MarketingStats    `json:"stats"`
	Count            int               `json:"count"`
	HasActiveFilters bool              `json:"hasActiveFilters"`
}
