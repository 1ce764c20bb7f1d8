package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gosiwon-finder/models"
)

type propertyRow struct {
	ID                 string `gorm:"primaryKey"`
	Position           int    `gorm:"index"`
	Name               string `gorm:"not null"`
	Location           string
	Tags               []string `gorm:"type:text;serializer:json"`
	Images             []string `gorm:"type:text;serializer:json"`
	Facilities         []string `gorm:"type:text;serializer:json"`
	SubwayStation      string   `gorm:"index"`
	SubwayMinutes      int
	BusMinutes         int
	NearbyUniversities []string `gorm:"type:text;serializer:json"`
	Price              int      `gorm:"index"`
	Deposit            int
	Rating             float64
	ReviewCount        int
	Marketing          *models.Marketing `gorm:"type:text;serializer:json"`
	Rooms              []roomEntity      `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (propertyRow) TableName() string { return "properties" }

type roomEntity struct {
	ID               string `gorm:"primaryKey"`
	PropertyID       string `gorm:"index;not null"`
	Position         int
	Number           string
	Type             string
	Area             float64
	Price            int
	Deposit          int
	Facilities       []string                 `gorm:"type:text;serializer:json"`
	Status           string                   `gorm:"index"`
	ScheduledVacancy *models.ScheduledVacancy `gorm:"type:text;serializer:json"`
}

func (roomEntity) TableName() string { return "rooms" }

// SQLiteStore persists the catalog to a SQLite file through gorm.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// schema. Pass ":memory:" for a throwaway database.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: pool: %w", err)
	}
	// every new connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(&propertyRow{}, &roomEntity{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save replaces the stored catalog with records.
func (s *SQLiteStore) Save(ctx context.Context, records []*models.PropertyRecord) error {
	rows := make([]propertyRow, 0, len(records))
	for i, r := range records {
		rows = append(rows, toPropertyRow(r, i))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&roomEntity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&propertyRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, propertyBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("sqlite: save: %w", err)
	}
	return nil
}

// FetchAll retrieves the stored catalog in the order it was saved.
func (s *SQLiteStore) FetchAll(ctx context.Context) ([]*models.PropertyRecord, error) {
	var rows []propertyRow
	err := s.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("position").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sqlite: fetch all: %w", err)
	}

	records := make([]*models.PropertyRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toRecord())
	}
	return records, nil
}

// Close releases the underlying connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toPropertyRow(r *models.PropertyRecord, position int) propertyRow {
	row := propertyRow{
		ID:                 r.ID,
		Position:           position,
		Name:               r.Name,
		Location:           r.Location,
		Tags:               r.Tags,
		Images:             r.Images,
		Facilities:         r.Facilities,
		SubwayStation:      r.SubwayStation,
		SubwayMinutes:      r.Distance.Subway,
		BusMinutes:         r.Distance.Bus,
		NearbyUniversities: r.NearbyUniversities,
		Price:              r.Price,
		Deposit:            r.Deposit,
		Rating:             r.Rating,
		ReviewCount:        r.ReviewCount,
		Marketing:          r.Marketing,
	}
	for i, room := range r.Rooms {
		row.Rooms = append(row.Rooms, roomEntity{
			ID:               room.ID,
			PropertyID:       r.ID,
			Position:         i,
			Number:           room.Number,
			Type:             string(room.Type),
			Area:             room.Area,
			Price:            room.Price,
			Deposit:          room.Deposit,
			Facilities:       room.Facilities,
			Status:           string(room.Status),
			ScheduledVacancy: room.ScheduledVacancy,
		})
	}
	return row
}

func (row *propertyRow) toRecord() *models.PropertyRecord {
	r := &models.PropertyRecord{
		ID:                 row.ID,
		Name:               row.Name,
		Location:           row.Location,
		Tags:               row.Tags,
		Images:             row.Images,
		Facilities:         row.Facilities,
		SubwayStation:      row.SubwayStation,
		Distance:           models.Distance{Subway: row.SubwayMinutes, Bus: row.BusMinutes},
		NearbyUniversities: row.NearbyUniversities,
		Price:              row.Price,
		Deposit:            row.Deposit,
		Rating:             row.Rating,
		ReviewCount:        row.ReviewCount,
		Marketing:          row.Marketing,
	}
	for _, e := range row.Rooms {
		r.Rooms = append(r.Rooms, models.RoomRecord{
			ID:               e.ID,
			Number:           e.Number,
			Type:             models.RoomType(e.Type),
			Area:             e.Area,
			Price:            e.Price,
			Deposit:          e.Deposit,
			Facilities:       e.Facilities,
			Status:           models.RoomState(e.Status),
			ScheduledVacancy: e.ScheduledVacancy,
		})
	}
	return r
}
