package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"shift-reconciliation/internal/domain"
)

// ErrShiftNotFound is returned when no snapshot exists for the requested
// shift.
var ErrShiftNotFound = errors.New("shift snapshot not found")

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS shift_snapshots (
    shift_id TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    received_at TEXT NOT NULL
);
`

const createReportsTable = `
CREATE TABLE IF NOT EXISTS shift_reports (
    shift_id TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    generated_at TEXT NOT NULL
);
`

// Migrate creates the store tables when they do not exist yet.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createSnapshotsTable); err != nil {
		return err
	}
	if _, err := db.Exec(createReportsTable); err != nil {
		return err
	}
	return nil
}

// SQLiteStore persists shift snapshots and generated reports. It implements
// the ShiftRepository interface for snapshots uploaded over HTTP.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and runs the
// migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite database %s: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveShiftData stores (or replaces) the snapshot for a shift.
func (s *SQLiteStore) SaveShiftData(ctx context.Context, shiftID string, shift *domain.ShiftData) error {
	payload, err := json.Marshal(shift)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for shift %s: %w", shiftID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO shift_snapshots (shift_id, payload, received_at) VALUES (?, ?, ?)
		 ON CONFLICT(shift_id) DO UPDATE SET payload = excluded.payload, received_at = excluded.received_at`,
		shiftID,
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetShiftData loads the stored snapshot for a shift.
func (s *SQLiteStore) GetShiftData(ctx context.Context, shiftID string) (*domain.ShiftData, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM shift_snapshots WHERE shift_id = ?`, shiftID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shift %s: %w", shiftID, ErrShiftNotFound)
	}
	if err != nil {
		return nil, err
	}

	var shift domain.ShiftData
	if err := json.Unmarshal([]byte(payload), &shift); err != nil {
		return nil, fmt.Errorf("failed to decode stored snapshot for shift %s: %w", shiftID, err)
	}
	return &shift, nil
}

// SaveReport records a generated report for audit.
func (s *SQLiteStore) SaveReport(ctx context.Context, report *domain.ShiftReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report for shift %s: %w", report.ShiftID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO shift_reports (shift_id, payload, generated_at) VALUES (?, ?, ?)
		 ON CONFLICT(shift_id) DO UPDATE SET payload = excluded.payload, generated_at = excluded.generated_at`,
		report.ShiftID,
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
