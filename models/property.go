package models

// RoomState is the occupancy status of a single room.
type RoomState string

const (
	RoomAvailable        RoomState = "available"
	RoomOccupied         RoomState = "occupied"
	RoomMaintenance      RoomState = "maintenance"
	RoomReserved         RoomState = "reserved"
	RoomScheduledVacancy RoomState = "scheduled_vacancy"
)

// RoomType is the layout of a room.
type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomStudio RoomType = "studio"
	RoomShared RoomType = "shared"
)

// PromotionType is the kind of marketing promotion attached to a property.
type PromotionType string

const (
	PromotionDiscount       PromotionType = "discount"
	PromotionFreeDeposit    PromotionType = "free_deposit"
	PromotionFirstMonthFree PromotionType = "first_month_free"
	PromotionReferralBonus  PromotionType = "referral_bonus"
	PromotionEarlyBird      PromotionType = "early_bird"
)

// UrgencyLevel is the marketing scarcity signal.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// ScheduledVacancy describes when an occupied room is expected to free up.
type ScheduledVacancy struct {
	ExpectedDate string `json:"expectedDate"`
	Note         string `json:"note,omitempty"`
}

// RoomRecord is one physical room inside a property.
type RoomRecord struct {
	ID               string            `json:"id"`
	Number           string            `json:"number"`
	Type             RoomType          `json:"type"`
	Area             float64           `json:"area"`
	Price            int               `json:"price"`
	Deposit          int               `json:"deposit"`
	Facilities       []string          `json:"facilities,omitempty"`
	Status           RoomState         `json:"status"`
	ScheduledVacancy *ScheduledVacancy `json:"scheduledVacancy,omitempty"`
}

// RoomStatus is the aggregate room count of a property. When a property has a
// room inventory the counts are derived from it.
type RoomStatus struct {
	AvailableRooms        int `json:"availableRooms"`
	OccupiedRooms         int `json:"occupiedRooms"`
	ReservedRooms         int `json:"reservedRooms"`
	MaintenanceRooms      int `json:"maintenanceRooms"`
	ScheduledVacancyRooms int `json:"scheduledVacancyRooms"`
	TotalRooms            int `json:"totalRooms"`
}

// ScheduledVacancyPromotion is a pre-booking discount for rooms that are
// about to be vacated.
type ScheduledVacancyPromotion struct {
	Enabled      bool    `json:"enabled"`
	DiscountRate float64 `json:"discountRate"`
}

// Marketing holds the optional promotional metadata of a property.
type Marketing struct {
	Promotion                 bool                       `json:"promotion"`
	PromotionType             PromotionType              `json:"promotionType,omitempty"`
	PromotionDescription      string                     `json:"promotionDescription,omitempty"`
	DiscountRate              float64                    `json:"discountRate,omitempty"`
	UrgencyLevel              UrgencyLevel               `json:"urgencyLevel,omitempty"`
	LimitedTime               bool                       `json:"limitedTime,omitempty"`
	OriginalPrice             int                        `json:"originalPrice,omitempty"`
	ScheduledVacancyPromotion *ScheduledVacancyPromotion `json:"scheduledVacancyPromotion,omitempty"`
}

// Distance is walking time in minutes.
type Distance struct {
	Subway int `json:"subway"`
	Bus    int `json:"bus"`
}

// PropertyRecord is one rentable gosiwon building. A record owns its rooms
// exclusively and is read-only once the catalog is loaded.
type PropertyRecord struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Location           string       `json:"location"`
	Tags               []string     `json:"tags"`
	Images             []string     `json:"images"`
	Facilities         []string     `json:"facilities,omitempty"`
	SubwayStation      string       `json:"subwayStation"`
	Distance           Distance     `json:"distance"`
	NearbyUniversities []string     `json:"nearbyUniversities"`
	Price              int          `json:"price"`
	Deposit            int          `json:"deposit"`
	Rating             float64      `json:"rating"`
	ReviewCount        int          `json:"reviewCount"`
	Rooms              []RoomRecord `json:"rooms,omitempty"`
	RoomStatus         *RoomStatus  `json:"roomStatus,omitempty"`
	OccupancyRate      int          `json:"occupancyRate"`
	Marketing          *Marketing   `json:"marketing,omitempty"`
}

// Available returns the available room count, 0 without a room aggregate.
func (p *PropertyRecord) Available() int {
	if p.RoomStatus == nil {
		return 0
	}
	return p.RoomStatus.AvailableRooms
}

// ScheduledVacancies returns the scheduled-vacancy room count.
func (p *PropertyRecord) ScheduledVacancies() int {
	if p.RoomStatus == nil {
		return 0
	}
	return p.RoomStatus.ScheduledVacancyRooms
}

// Total returns the total room count.
func (p *PropertyRecord) Total() int {
	if p.RoomStatus == nil {
		return 0
	}
	return p.RoomStatus.TotalRooms
}

// DiscountRate returns the marketing discount rate, 0 when absent.
func (p *PropertyRecord) DiscountRate() float64 {
	if p.Marketing == nil {
		return 0
	}
	return p.Marketing.DiscountRate
}

// Urgency returns the marketing urgency level, empty when absent.
func (p *PropertyRecord) Urgency() UrgencyLevel {
	if p.Marketing == nil {
		return ""
	}
	return p.Marketing.UrgencyLevel
}

// HasPromotion reports whether the record carries an active promotion.
func (p *PropertyRecord) HasPromotion() bool {
	return p.Marketing != nil && p.Marketing.Promotion
}

// Clone returns a deep copy of the record.
func (p *PropertyRecord) Clone() *PropertyRecord {
	c := *p
	c.Tags = cloneStrings(p.Tags)
	c.Images = cloneStrings(p.Images)
	c.Facilities = cloneStrings(p.Facilities)
	c.NearbyUniversities = cloneStrings(p.NearbyUniversities)
	if p.Rooms != nil {
		c.Rooms = make([]RoomRecord, len(p.Rooms))
		for i, r := range p.Rooms {
			r.Facilities = cloneStrings(r.Facilities)
			if r.ScheduledVacancy != nil {
				sv := *r.ScheduledVacancy
				r.ScheduledVacancy = &sv
			}
			c.Rooms[i] = r
		}
	}
	if p.RoomStatus != nil {
		rs := *p.RoomStatus
		c.RoomStatus = &rs
	}
	if p.Marketing != nil {
		m := *p.Marketing
		if m.ScheduledVacancyPromotion != nil {
			svp := *m.ScheduledVacancyPromotion
			m.ScheduledVacancyPromotion = &svp
		}
		c.Marketing = &m
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
