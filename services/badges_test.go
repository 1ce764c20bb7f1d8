package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosiwon-finder/models"
)

func TestAvailabilityStatus(t *testing.T) {
	tests := []struct {
		name   string
		record models.PropertyRecord
		want   string
	}{
		{"no room data", models.PropertyRecord{}, StatusClosed},
		{"full", models.PropertyRecord{RoomStatus: &models.RoomStatus{TotalRooms: 6}, OccupancyRate: 100}, StatusClosed},
		{"vacancy soon", models.PropertyRecord{
			RoomStatus: &models.RoomStatus{ScheduledVacancyRooms: 1, TotalRooms: 6}, OccupancyRate: 100,
		}, StatusScheduledVacancy},
		{"almost full", models.PropertyRecord{
			RoomStatus: &models.RoomStatus{AvailableRooms: 2, TotalRooms: 3}, OccupancyRate: 33,
		}, StatusClosingSoon},
		{"many rooms", models.PropertyRecord{
			RoomStatus: &models.RoomStatus{AvailableRooms: 8, TotalRooms: 10}, OccupancyRate: 20,
		}, StatusManyRooms},
		{"move-in ready", models.PropertyRecord{
			RoomStatus: &models.RoomStatus{AvailableRooms: 4, TotalRooms: 10}, OccupancyRate: 60,
		}, StatusAvailable},
		{"urgency is ignored", models.PropertyRecord{
			Marketing:  &models.Marketing{UrgencyLevel: models.UrgencyHigh},
			RoomStatus: &models.RoomStatus{AvailableRooms: 8, TotalRooms: 10}, OccupancyRate: 20,
		}, StatusManyRooms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.record
			assert.Equal(t, tt.want, AvailabilityStatus(&r).Kind)
		})
	}
}

func TestPromotionBadge(t *testing.T) {
	assert.Nil(t, PromotionBadge(&models.PropertyRecord{}))
	assert.Nil(t, PromotionBadge(&models.PropertyRecord{
		Marketing: &models.Marketing{PromotionType: models.PromotionDiscount, DiscountRate: 0.3},
	}), "promotion flag off")

	tests := []struct {
		marketing models.Marketing
		kind      string
		text      string
	}{
		{models.Marketing{Promotion: true, PromotionType: models.PromotionDiscount, DiscountRate: 0.15}, "discount", "15% off"},
		{models.Marketing{Promotion: true, PromotionType: models.PromotionFreeDeposit}, "free_deposit", "No deposit"},
		{models.Marketing{Promotion: true, PromotionType: models.PromotionFirstMonthFree}, "first_month_free", "First month free"},
		{models.Marketing{Promotion: true, PromotionType: models.PromotionReferralBonus}, "referral_bonus", "Referral bonus"},
		{models.Marketing{Promotion: true, PromotionType: models.PromotionEarlyBird}, "early_bird", "Early-bird discount"},
		{models.Marketing{Promotion: true, PromotionDescription: "Summer deal"}, "promotion", "Summer deal"},
		{models.Marketing{Promotion: true}, "promotion", "Promotion"},
	}

	for _, tt := range tests {
		m := tt.marketing
		b := PromotionBadge(&models.PropertyRecord{Marketing: &m})
		require.NotNil(t, b)
		assert.Equal(t, tt.kind, b.Kind)
		assert.Equal(t, tt.text, b.Text)
	}
}

func TestScheduledVacancyBadge(t *testing.T) {
	assert.Nil(t, ScheduledVacancyBadge(&models.PropertyRecord{}))

	one := ScheduledVacancyBadge(&models.PropertyRecord{
		RoomStatus: &models.RoomStatus{ScheduledVacancyRooms: 1},
	})
	require.NotNil(t, one)
	assert.Equal(t, "1 room opening soon", one.Text)

	withPromo := ScheduledVacancyBadge(&models.PropertyRecord{
		RoomStatus: &models.RoomStatus{ScheduledVacancyRooms: 2},
		Marketing: &models.Marketing{
			ScheduledVacancyPromotion: &models.ScheduledVacancyPromotion{Enabled: true, DiscountRate: 0.15},
		},
	})
	require.NotNil(t, withPromo)
	assert.Equal(t, "2 rooms opening soon, 15% off when booked early", withPromo.Text)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Vacancy soon", RoomStatusLabel(models.RoomScheduledVacancy))
	assert.Equal(t, "Unknown", RoomStatusLabel("demolished"))
	assert.Equal(t, "Studio", RoomTypeLabel(models.RoomStudio))
	assert.Equal(t, "Shared", RoomTypeLabel(models.RoomShared))
}
