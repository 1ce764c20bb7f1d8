package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"gosiwon-finder/models"
	"gosiwon-finder/utils"
)

const (
	propertyBatchSize = 50
	roomBatchSize     = 100
)

// PostgresStore persists the catalog to PostgreSQL. Properties and rooms live
// in separate tables; marketing metadata is kept as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, waits for the server to
// accept connections, runs schema migrations, and returns a ready store.
func NewPostgresStore(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if retry == nil {
		retry = &utils.RetryConfig{MaxAttempts: 10, BaseDelay: 500 * time.Millisecond}
	}
	if err := retry.Do(ctx, "postgres ping", func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) migrate(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS properties (
			id                  TEXT         PRIMARY KEY,
			position            INTEGER      NOT NULL,
			name                TEXT         NOT NULL,
			location            TEXT         NOT NULL DEFAULT '',
			tags                TEXT[]       NOT NULL DEFAULT '{}',
			images              TEXT[]       NOT NULL DEFAULT '{}',
			facilities          TEXT[]       NOT NULL DEFAULT '{}',
			subway_station      TEXT         NOT NULL DEFAULT '',
			subway_minutes      INTEGER      NOT NULL DEFAULT 0,
			bus_minutes         INTEGER      NOT NULL DEFAULT 0,
			nearby_universities TEXT[]       NOT NULL DEFAULT '{}',
			price               INTEGER      NOT NULL DEFAULT 0,
			deposit             INTEGER      NOT NULL DEFAULT 0,
			rating              NUMERIC(3,2) NOT NULL DEFAULT 0,
			review_count        INTEGER      NOT NULL DEFAULT 0,
			marketing           JSONB,
			created_at          TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS rooms (
			id               TEXT         PRIMARY KEY,
			property_id      TEXT         NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			position         INTEGER      NOT NULL,
			number           TEXT         NOT NULL DEFAULT '',
			type             TEXT         NOT NULL DEFAULT '',
			area             NUMERIC(5,2) NOT NULL DEFAULT 0,
			price            INTEGER      NOT NULL DEFAULT 0,
			deposit          INTEGER      NOT NULL DEFAULT 0,
			facilities       TEXT[]       NOT NULL DEFAULT '{}',
			status           TEXT         NOT NULL,
			expected_date    TEXT,
			vacancy_note     TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_properties_price   ON properties(price);
		CREATE INDEX IF NOT EXISTS idx_properties_station ON properties(subway_station);
		CREATE INDEX IF NOT EXISTS idx_properties_rating  ON properties(rating);
		CREATE INDEX IF NOT EXISTS idx_rooms_property     ON rooms(property_id);
		CREATE INDEX IF NOT EXISTS idx_rooms_status       ON rooms(status);
	`)
	return err
}

// Save replaces the stored catalog with records inside one transaction.
func (ps *PostgresStore) Save(ctx context.Context, records []*models.PropertyRecord) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// rooms go with their property via ON DELETE CASCADE
	if _, err := tx.ExecContext(ctx, "DELETE FROM properties"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	for i := 0; i < len(records); i += propertyBatchSize {
		end := min(i+propertyBatchSize, len(records))
		if err := insertProperties(ctx, tx, records[i:end], i); err != nil {
			return fmt.Errorf("postgres: insert properties: %w", err)
		}
	}

	var rooms []roomRow
	for _, r := range records {
		for pos, room := range r.Rooms {
			rooms = append(rooms, roomRow{propertyID: r.ID, position: pos, room: room})
		}
	}
	for i := 0; i < len(rooms); i += roomBatchSize {
		end := min(i+roomBatchSize, len(rooms))
		if err := insertRooms(ctx, tx, rooms[i:end]); err != nil {
			return fmt.Errorf("postgres: insert rooms: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func insertProperties(ctx context.Context, tx *sql.Tx, batch []*models.PropertyRecord, offset int) error {
	const cols = 16
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, p := range batch {
		marketing, err := marshalMarketing(p.Marketing)
		if err != nil {
			return fmt.Errorf("marshal marketing for %s: %w", p.ID, err)
		}
		valueStrings = append(valueStrings, placeholders(idx*cols, cols))
		valueArgs = append(valueArgs,
			p.ID, offset+idx, p.Name, p.Location,
			pq.Array(nonNil(p.Tags)), pq.Array(nonNil(p.Images)), pq.Array(nonNil(p.Facilities)),
			p.SubwayStation, p.Distance.Subway, p.Distance.Bus,
			pq.Array(nonNil(p.NearbyUniversities)),
			p.Price, p.Deposit, p.Rating, p.ReviewCount, marketing,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO properties (id, position, name, location, tags, images, facilities,
			subway_station, subway_minutes, bus_minutes, nearby_universities,
			price, deposit, rating, review_count, marketing)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

type roomRow struct {
	propertyID string
	position   int
	room       models.RoomRecord
}

func insertRooms(ctx context.Context, tx *sql.Tx, batch []roomRow) error {
	const cols = 12
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, row := range batch {
		r := row.room
		var expected, note sql.NullString
		if r.ScheduledVacancy != nil {
			expected = sql.NullString{String: r.ScheduledVacancy.ExpectedDate, Valid: true}
			note = sql.NullString{String: r.ScheduledVacancy.Note, Valid: r.ScheduledVacancy.Note != ""}
		}
		valueStrings = append(valueStrings, placeholders(idx*cols, cols))
		valueArgs = append(valueArgs,
			r.ID, row.propertyID, row.position, r.Number, string(r.Type), r.Area,
			r.Price, r.Deposit, pq.Array(nonNil(r.Facilities)), string(r.Status),
			expected, note,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO rooms (id, property_id, position, number, type, area,
			price, deposit, facilities, status, expected_date, vacancy_note)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

// FetchAll retrieves the stored catalog in the order it was saved.
func (ps *PostgresStore) FetchAll(ctx context.Context) ([]*models.PropertyRecord, error) {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT id, name, location, tags, images, facilities, subway_station,
			subway_minutes, bus_minutes, nearby_universities, price, deposit,
			rating, review_count, marketing
		FROM properties
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch properties: %w", err)
	}
	defer rows.Close()

	var records []*models.PropertyRecord
	byID := map[string]*models.PropertyRecord{}
	for rows.Next() {
		p := &models.PropertyRecord{}
		var marketing []byte
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Location,
			pq.Array(&p.Tags), pq.Array(&p.Images), pq.Array(&p.Facilities),
			&p.SubwayStation, &p.Distance.Subway, &p.Distance.Bus,
			pq.Array(&p.NearbyUniversities),
			&p.Price, &p.Deposit, &p.Rating, &p.ReviewCount, &marketing,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan property: %w", err)
		}
		if len(marketing) > 0 {
			p.Marketing = &models.Marketing{}
			if err := json.Unmarshal(marketing, p.Marketing); err != nil {
				return nil, fmt.Errorf("postgres: decode marketing for %s: %w", p.ID, err)
			}
		}
		records = append(records, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: fetch properties: %w", err)
	}

	if err := ps.attachRooms(ctx, byID); err != nil {
		return nil, err
	}
	return records, nil
}

func (ps *PostgresStore) attachRooms(ctx context.Context, byID map[string]*models.PropertyRecord) error {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT id, property_id, number, type, area, price, deposit, facilities,
			status, expected_date, vacancy_note
		FROM rooms
		ORDER BY property_id, position
	`)
	if err != nil {
		return fmt.Errorf("postgres: fetch rooms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r              models.RoomRecord
			propertyID     string
			roomType       string
			status         string
			expected, note sql.NullString
		)
		if err := rows.Scan(
			&r.ID, &propertyID, &r.Number, &roomType, &r.Area, &r.Price, &r.Deposit,
			pq.Array(&r.Facilities), &status, &expected, &note,
		); err != nil {
			return fmt.Errorf("postgres: scan room: %w", err)
		}
		r.Type = models.RoomType(roomType)
		r.Status = models.RoomState(status)
		if expected.Valid {
			r.ScheduledVacancy = &models.ScheduledVacancy{ExpectedDate: expected.String, Note: note.String}
		}
		if p, ok := byID[propertyID]; ok {
			p.Rooms = append(p.Rooms, r)
		}
	}
	return rows.Err()
}

// Close releases the connection pool.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}

func marshalMarketing(m *models.Marketing) (interface{}, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// lib/pq encodes []byte as bytea
	return string(b), nil
}

func placeholders(base, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", base+i+1)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
