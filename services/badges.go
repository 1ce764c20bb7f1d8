package services

import (
	"fmt"
	"math"

	"gosiwon-finder/models"
)

// Availability status kinds shown on a property card.
const (
	StatusClosed           = "closed"
	StatusScheduledVacancy = "scheduled_vacancy"
	StatusClosingSoon      = "closing_soon"
	StatusManyRooms        = "many_rooms"
	StatusAvailable        = "available"
)

// AvailabilityStatus is the card badge describing how easy it is to move in.
// Unlike Classify it ignores marketing urgency.
func AvailabilityStatus(r *models.PropertyRecord) models.Badge {
	available := r.Available()
	scheduled := r.ScheduledVacancies()

	switch {
	case available == 0 && scheduled == 0:
		return models.Badge{Kind: StatusClosed, Text: "Full"}
	case available == 0:
		return models.Badge{Kind: StatusScheduledVacancy, Text: "Vacancy soon"}
	case available <= 2:
		return models.Badge{Kind: StatusClosingSoon, Text: "Almost full"}
	case r.OccupancyRate <= 30:
		return models.Badge{Kind: StatusManyRooms, Text: "Many rooms free"}
	}
	return models.Badge{Kind: StatusAvailable, Text: "Move-in ready"}
}

// PromotionBadge returns the promotion label, or nil when the record has no
// active promotion.
func PromotionBadge(r *models.PropertyRecord) *models.Badge {
	if !r.HasPromotion() {
		return nil
	}

	m := r.Marketing
	text := m.PromotionDescription
	if text == "" {
		text = "Promotion"
	}

	switch m.PromotionType {
	case models.PromotionDiscount:
		text = fmt.Sprintf("%d%% off", percent(m.DiscountRate))
	case models.PromotionFreeDeposit:
		text = "No deposit"
	case models.PromotionFirstMonthFree:
		text = "First month free"
	case models.PromotionReferralBonus:
		text = "Referral bonus"
	case models.PromotionEarlyBird:
		text = "Early-bird discount"
	}

	kind := string(m.PromotionType)
	if kind == "" {
		kind = "promotion"
	}
	return &models.Badge{Kind: kind, Text: text}
}

// ScheduledVacancyBadge returns the "N rooms opening soon" label, or nil.
func ScheduledVacancyBadge(r *models.PropertyRecord) *models.Badge {
	n := r.ScheduledVacancies()
	if n == 0 {
		return nil
	}

	text := fmt.Sprintf("%d rooms opening soon", n)
	if n == 1 {
		text = "1 room opening soon"
	}
	if m := r.Marketing; m != nil && m.ScheduledVacancyPromotion != nil && m.ScheduledVacancyPromotion.Enabled {
		text += fmt.Sprintf(", %d%% off when booked early", percent(m.ScheduledVacancyPromotion.DiscountRate))
	}
	return &models.Badge{Kind: StatusScheduledVacancy, Text: text}
}

// RoomStatusLabel is the display text for a room status.
func RoomStatusLabel(s models.RoomState) string {
	switch s {
	case models.RoomAvailable:
		return "Available"
	case models.RoomOccupied:
		return "Occupied"
	case models.RoomMaintenance:
		return "Maintenance"
	case models.RoomReserved:
		return "Reserved"
	case models.RoomScheduledVacancy:
		return "Vacancy soon"
	}
	return "Unknown"
}

// RoomTypeLabel is the display text for a room layout.
func RoomTypeLabel(t models.RoomType) string {
	switch t {
	case models.RoomSingle:
		return "Single"
	case models.RoomDouble:
		return "Double"
	case models.RoomStudio:
		return "Studio"
	}
	return "Shared"
}

func percent(rate float64) int {
	return int(math.Round(rate * 100))
}
