package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosiwon-finder/models"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PostgresStore{db: db}, mock
}

func sampleRecords() []*models.PropertyRecord {
	return []*models.PropertyRecord{
		{
			ID:       "gw-1",
			Name:     "강남 하우스",
			Location: "서울 강남구",
			Tags:     []string{"역세권"},
			Price:    450000,
			Rating:   4.8,
			Rooms: []models.RoomRecord{
				{ID: "gw-1-r01", Number: "201", Type: models.RoomSingle, Area: 1.8, Price: 450000, Deposit: 500000, Status: models.RoomAvailable},
				{
					ID: "gw-1-r02", Number: "202", Type: models.RoomSingle, Area: 1.8, Price: 450000, Deposit: 500000,
					Status:           models.RoomScheduledVacancy,
					ScheduledVacancy: &models.ScheduledVacancy{ExpectedDate: "2026-12-01"},
				},
			},
			Marketing: &models.Marketing{Promotion: true, PromotionType: models.PromotionDiscount, DiscountRate: 0.1},
		},
		{ID: "gw-2", Name: "신촌 하우스", Location: "서울 서대문구", Price: 380000},
	}
}

func TestPostgresStoreSave(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM properties").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO properties").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO rooms").
		WithArgs(
			"gw-1-r01", "gw-1", 0, "201", "single", 1.8, 450000, 500000, sqlmock.AnyArg(), "available", nil, nil,
			"gw-1-r02", "gw-1", 1, "202", "single", 1.8, 450000, 500000, sqlmock.AnyArg(), "scheduled_vacancy", "2026-12-01", nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, store.Save(context.Background(), sampleRecords()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveWithoutRoomsSkipsRoomInsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM properties").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO properties").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	records := []*models.PropertyRecord{{ID: "gw-2", Name: "신촌 하우스"}}
	require.NoError(t, store.Save(context.Background(), records))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM properties").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO properties").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.Save(context.Background(), sampleRecords())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert properties")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreFetchAll(t *testing.T) {
	store, mock := newMockStore(t)

	propertyCols := []string{
		"id", "name", "location", "tags", "images", "facilities", "subway_station",
		"subway_minutes", "bus_minutes", "nearby_universities", "price", "deposit",
		"rating", "review_count", "marketing",
	}
	mock.ExpectQuery("FROM properties").WillReturnRows(
		sqlmock.NewRows(propertyCols).
			AddRow("gw-1", "강남 하우스", "서울 강남구", "{역세권,신축}", "{}", "{WiFi}", "강남역",
				4, 2, "{}", 450000, 500000, 4.8, 127,
				[]byte(`{"promotion":true,"promotionType":"discount","discountRate":0.1,"urgencyLevel":"medium"}`)).
			AddRow("gw-2", "신촌 하우스", "서울 서대문구", "{}", "{}", "{}", "신촌역",
				6, 3, "{연세대학교}", 380000, 300000, 4.6, 89, nil),
	)

	roomCols := []string{
		"id", "property_id", "number", "type", "area", "price", "deposit", "facilities",
		"status", "expected_date", "vacancy_note",
	}
	mock.ExpectQuery("FROM rooms").WillReturnRows(
		sqlmock.NewRows(roomCols).
			AddRow("gw-1-r01", "gw-1", "201", "single", 1.8, 450000, 500000, "{침대,책상}", "available", nil, nil).
			AddRow("gw-1-r02", "gw-1", "202", "double", 2.5, 550000, 500000, "{}", "scheduled_vacancy", "2026-12-01", nil).
			AddRow("gw-x-r01", "gw-x", "101", "single", 1.8, 1, 1, "{}", "available", nil, nil),
	)

	records, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "gw-1", first.ID)
	assert.Equal(t, []string{"역세권", "신축"}, first.Tags)
	assert.Equal(t, models.Distance{Subway: 4, Bus: 2}, first.Distance)
	require.NotNil(t, first.Marketing)
	assert.Equal(t, models.PromotionDiscount, first.Marketing.PromotionType)
	assert.Equal(t, models.UrgencyMedium, first.Marketing.UrgencyLevel)
	require.Len(t, first.Rooms, 2)
	assert.Equal(t, []string{"침대", "책상"}, first.Rooms[0].Facilities)
	assert.Nil(t, first.Rooms[0].ScheduledVacancy)
	assert.Equal(t, models.RoomDouble, first.Rooms[1].Type)
	require.NotNil(t, first.Rooms[1].ScheduledVacancy)
	assert.Equal(t, "2026-12-01", first.Rooms[1].ScheduledVacancy.ExpectedDate)

	second := records[1]
	assert.Nil(t, second.Marketing)
	assert.Empty(t, second.Rooms)
	assert.Equal(t, []string{"연세대학교"}, second.NearbyUniversities)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreFetchAllPropagatesQueryError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM properties").WillReturnError(errors.New("connection reset"))

	_, err := store.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: fetch properties")
}
