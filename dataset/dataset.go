// Package dataset holds the compiled-in gosiwon catalog and the option lists
// offered by the search controls.
package dataset

import (
	"context"
	"fmt"

	"gosiwon-finder/models"
)

// Regions are the district options for the region filter.
var Regions = []string{models.All, "강남구", "서대문구", "관악구", "마포구", "성북구", "광진구", "동대문구"}

// SubwayStations are the station options for the station filter.
var SubwayStations = []string{
	models.All, "강남역", "신촌역", "서울대입구역", "홍대입구역", "안암역", "건대입구역", "회기역", "선릉역",
}

// Universities are the institution options for the university filter.
var Universities = []string{
	models.All, "연세대학교", "서강대학교", "이화여자대학교", "서울대학교", "홍익대학교",
	"고려대학교", "건국대학교", "세종대학교", "경희대학교", "한국외국어대학교",
}

// PriceRanges are the monthly price bands. The first entry disables the filter.
var PriceRanges = []models.PriceRange{
	{Label: models.All},
	{Label: "30만원 이하", Min: 0, Max: 300000},
	{Label: "30~40만원", Min: 300000, Max: 400000},
	{Label: "40~50만원", Min: 400000, Max: 500000},
	{Label: "50만원 이상", Min: 500000},
}

// PriceRangeByLabel looks up a price band, falling back to the disabled band.
func PriceRangeByLabel(label string) models.PriceRange {
	for _, r := range PriceRanges {
		if r.Label == label {
			return r
		}
	}
	return PriceRanges[0]
}

// Static serves the compiled-in catalog.
type Static struct{}

// FetchAll returns a fresh copy of the catalog on every call.
func (Static) FetchAll(_ context.Context) ([]*models.PropertyRecord, error) {
	return Properties(), nil
}

// Properties returns the raw catalog. Room aggregates and occupancy are left
// for the normaliser to derive from the room inventory.
func Properties() []*models.PropertyRecord {
	return []*models.PropertyRecord{
		{
			ID:                 "gw-001",
			Name:               "강남 스터디 하우스",
			Location:           "서울 강남구 역삼동 823-1",
			Tags:               []string{"역세권", "신축", "개별욕실", "24시간 보안"},
			Images:             images("gw-001", 3),
			Facilities:         []string{"WiFi", "에어컨", "주방", "세탁기"},
			SubwayStation:      "강남역",
			Distance:           models.Distance{Subway: 4, Bus: 2},
			NearbyUniversities: []string{},
			Price:              450000,
			Deposit:            500000,
			Rating:             4.8,
			ReviewCount:        127,
			Rooms:              inventory("gw-001", 450000, 500000, "AAAAOOOOOS", "2026-11-30"),
			Marketing: &models.Marketing{
				Promotion:     true,
				PromotionType: models.PromotionDiscount,
				DiscountRate:  0.1,
				UrgencyLevel:  models.UrgencyMedium,
				LimitedTime:   true,
				OriginalPrice: 500000,
			},
		},
		{
			ID:                 "gw-002",
			Name:               "신촌 캠퍼스텔",
			Location:           "서울 서대문구 창천동 18-29",
			Tags:               []string{"대학가", "여성전용", "조용한"},
			Images:             images("gw-002", 2),
			Facilities:         []string{"WiFi", "에어컨", "주방"},
			SubwayStation:      "신촌역",
			Distance:           models.Distance{Subway: 6, Bus: 3},
			NearbyUniversities: []string{"연세대학교", "서강대학교", "이화여자대학교"},
			Price:              380000,
			Deposit:            300000,
			Rating:             4.6,
			ReviewCount:        89,
			Rooms:              inventory("gw-002", 380000, 300000, "AOOOOOOORS", "2026-12-15"),
			Marketing: &models.Marketing{
				Promotion:            true,
				PromotionType:        models.PromotionFreeDeposit,
				PromotionDescription: "보증금 없이 바로 입주",
				UrgencyLevel:         models.UrgencyHigh,
			},
		},
		{
			ID:                 "gw-003",
			Name:               "관악 드림하우스",
			Location:           "서울 관악구 봉천동 1598-3",
			Tags:               []string{"가성비", "대학가", "고시생"},
			Images:             images("gw-003", 2),
			Facilities:         []string{"WiFi", "주방"},
			SubwayStation:      "서울대입구역",
			Distance:           models.Distance{Subway: 8, Bus: 4},
			NearbyUniversities: []string{"서울대학교"},
			Price:              320000,
			Deposit:            200000,
			Rating:             4.3,
			ReviewCount:        54,
			Rooms:              inventory("gw-003", 320000, 200000, "OOOOOOSS", "2026-11-20", "2026-12-01"),
			Marketing: &models.Marketing{
				Promotion:     true,
				PromotionType: models.PromotionEarlyBird,
				DiscountRate:  0.05,
				UrgencyLevel:  models.UrgencyLow,
				ScheduledVacancyPromotion: &models.ScheduledVacancyPromotion{
					Enabled:      true,
					DiscountRate: 0.15,
				},
			},
		},
		{
			ID:                 "gw-004",
			Name:               "홍대 아트리움",
			Location:           "서울 마포구 서교동 395-12",
			Tags:               []string{"역세권", "복층", "예술인", "루프탑"},
			Images:             images("gw-004", 3),
			Facilities:         []string{"WiFi", "에어컨", "주방", "세탁기", "건조기"},
			SubwayStation:      "홍대입구역",
			Distance:           models.Distance{Subway: 5, Bus: 2},
			NearbyUniversities: []string{"홍익대학교"},
			Price:              420000,
			Deposit:            500000,
			Rating:             4.7,
			ReviewCount:        143,
			Rooms:              inventory("gw-004", 420000, 500000, "AAAAAAAOOO"),
			Marketing: &models.Marketing{
				Promotion:     true,
				PromotionType: models.PromotionFirstMonthFree,
				UrgencyLevel:  models.UrgencyMedium,
			},
		},
		{
			ID:                 "gw-005",
			Name:               "안암 스칼라하우스",
			Location:           "서울 성북구 안암동5가 102-7",
			Tags:               []string{"대학가", "조용한", "독서실"},
			Images:             images("gw-005", 1),
			Facilities:         []string{"WiFi", "에어컨"},
			SubwayStation:      "안암역",
			Distance:           models.Distance{Subway: 3, Bus: 5},
			NearbyUniversities: []string{"고려대학교"},
			Price:              350000,
			Deposit:            300000,
			Rating:             4.4,
			ReviewCount:        61,
			Rooms:              inventory("gw-005", 350000, 300000, "AAAOOOOOOOM"),
		},
		{
			ID:                 "gw-006",
			Name:               "건대 리빙텔",
			Location:           "서울 광진구 화양동 5-41",
			Tags:               []string{"역세권", "남성전용", "헬스장"},
			Images:             images("gw-006", 2),
			Facilities:         []string{"WiFi", "에어컨", "주방"},
			SubwayStation:      "건대입구역",
			Distance:           models.Distance{Subway: 7, Bus: 3},
			NearbyUniversities: []string{"건국대학교", "세종대학교"},
			Price:              360000,
			Deposit:            300000,
			Rating:             4.2,
			ReviewCount:        38,
			Rooms:              inventory("gw-006", 360000, 300000, "AAOOOOR"),
			Marketing: &models.Marketing{
				Promotion:            true,
				PromotionType:        models.PromotionReferralBonus,
				PromotionDescription: "친구 추천 시 5만원 적립",
				UrgencyLevel:         models.UrgencyLow,
			},
		},
		{
			ID:                 "gw-007",
			Name:               "회기 하이츠",
			Location:           "서울 동대문구 회기동 60-38",
			Tags:               []string{"가성비", "대학가"},
			Images:             images("gw-007", 1),
			Facilities:         []string{"WiFi"},
			SubwayStation:      "회기역",
			Distance:           models.Distance{Subway: 9, Bus: 4},
			NearbyUniversities: []string{"경희대학교", "한국외국어대학교"},
			Price:              300000,
			Deposit:            100000,
			Rating:             4.0,
			ReviewCount:        22,
			Rooms:              inventory("gw-007", 300000, 100000, "OOOOOOOM"),
			Marketing: &models.Marketing{
				Promotion:     true,
				PromotionType: models.PromotionDiscount,
				DiscountRate:  0.2,
				UrgencyLevel:  models.UrgencyHigh,
				LimitedTime:   true,
				OriginalPrice: 375000,
			},
		},
		{
			ID:                 "gw-008",
			Name:               "선릉 비즈니스텔",
			Location:           "서울 강남구 대치동 891-10",
			Tags:               []string{"직장인", "신축", "개별욕실", "주차가능"},
			Images:             images("gw-008", 3),
			Facilities:         []string{"WiFi", "에어컨", "주방", "세탁기", "건조기"},
			SubwayStation:      "선릉역",
			Distance:           models.Distance{Subway: 2, Bus: 1},
			NearbyUniversities: []string{},
			Price:              550000,
			Deposit:            1000000,
			Rating:             4.9,
			ReviewCount:        201,
			Rooms:              inventory("gw-008", 550000, 1000000, "AAAAAOOOOOOOOOOS", "2027-01-10"),
			Marketing: &models.Marketing{
				UrgencyLevel: models.UrgencyLow,
			},
		},
	}
}

func images(id string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("/images/gosiwon/%s-%d.jpg", id, i+1)
	}
	return out
}

var roomTypes = []models.RoomType{models.RoomSingle, models.RoomSingle, models.RoomDouble, models.RoomStudio}

var roomStates = map[rune]models.RoomState{
	'A': models.RoomAvailable,
	'O': models.RoomOccupied,
	'R': models.RoomReserved,
	'M': models.RoomMaintenance,
	'S': models.RoomScheduledVacancy,
}

// inventory builds a room list from a layout string, one letter per room
// (A available, O occupied, R reserved, M maintenance, S scheduled vacancy).
// Scheduled-vacancy rooms take their expected dates from vacateDates in order.
func inventory(propertyID string, price, deposit int, layout string, vacateDates ...string) []models.RoomRecord {
	rooms := make([]models.RoomRecord, 0, len(layout))
	for i, ch := range []rune(layout) {
		rt := roomTypes[i%len(roomTypes)]
		room := models.RoomRecord{
			ID:      fmt.Sprintf("%s-r%02d", propertyID, i+1),
			Number:  fmt.Sprintf("%d%02d", 2+i/6, i%6+1),
			Type:    rt,
			Status:  roomStates[ch],
			Deposit: deposit,
		}
		switch rt {
		case models.RoomDouble:
			room.Area, room.Price = 2.5, price+100000
			room.Facilities = []string{"침대 2", "책상", "옷장"}
		case models.RoomStudio:
			room.Area, room.Price = 3.2, price+150000
			room.Facilities = []string{"침대", "책상", "옷장", "개별욕실", "미니주방"}
		default:
			room.Area, room.Price = 1.8, price
			room.Facilities = []string{"침대", "책상", "옷장"}
		}
		if room.Status == models.RoomScheduledVacancy && len(vacateDates) > 0 {
			room.ScheduledVacancy = &models.ScheduledVacancy{ExpectedDate: vacateDates[0]}
			vacateDates = vacateDates[1:]
		}
		rooms = append(rooms, room)
	}
	return rooms
}
