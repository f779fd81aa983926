// Package store persists finished validation runs to PostgreSQL so
// operators can review past uploads and their findings.
package store

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sheetcheck/sheetcheck/internal/validate"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// RunRecord is one persisted validation run.
type RunRecord struct {
	ID         string              `json:"id"`
	SheetKey   string              `json:"sheetKey"`
	FileName   string              `json:"fileName"`
	Status     string              `json:"status"`
	RowCount   int                 `json:"rowCount"`
	ErrorCount int                 `json:"errorCount"`
	Cancelled  bool                `json:"cancelled"`
	Errors     []validate.RowError `json:"errors,omitempty"`
	StartedAt  time.Time           `json:"startedAt"`
	DurationMs int64               `json:"durationMs"`
}

// RunStore reads and writes validation run history.
type RunStore struct {
	db DBTX
}

// NewRunStore creates a store backed by the given database handle.
func NewRunStore(db DBTX) *RunStore {
	return &RunStore{db: db}
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS validation_runs (
    id          UUID PRIMARY KEY,
    sheet_key   TEXT NOT NULL,
    file_name   TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL,
    row_count   INTEGER NOT NULL DEFAULT 0,
    error_count INTEGER NOT NULL DEFAULT 0,
    cancelled   BOOLEAN NOT NULL DEFAULT FALSE,
    errors      JSONB NOT NULL DEFAULT '[]',
    started_at  TIMESTAMPTZ NOT NULL,
    duration_ms BIGINT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_validation_runs_sheet
    ON validation_runs (sheet_key, started_at DESC);
`

// Init creates the history table if it does not exist.
func (s *RunStore) Init(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createRunsTable); err != nil {
		return fmt.Errorf("create validation_runs table: %w", err)
	}
	return nil
}

// Save persists one finished run. The error payload is stored as JSONB so
// the history view can show findings without re-running validation.
func (s *RunStore) Save(ctx context.Context, rec RunRecord) error {
	payload, err := json.Marshal(rec.Errors)
	if err != nil {
		return fmt.Errorf("marshal run errors: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO validation_runs
			(id, sheet_key, file_name, status, row_count, error_count, cancelled, errors, started_at, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.SheetKey, rec.FileName, rec.Status,
		rec.RowCount, rec.ErrorCount, rec.Cancelled,
		payload, rec.StartedAt, rec.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert validation run: %w", err)
	}
	return nil
}

// List returns the most recent runs for a sheet key, newest first. An
// empty sheetKey returns runs for every sheet. The error payload is not
// loaded; use Get for the full record.
func (s *RunStore) List(ctx context.Context, sheetKey string, limit int) ([]RunRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	query := `
		SELECT id, sheet_key, file_name, status, row_count, error_count, cancelled, started_at, duration_ms
		FROM validation_runs`
	args := []interface{}{}
	if sheetKey != "" {
		query += ` WHERE sheet_key = $1`
		args = append(args, sheetKey)
	}
	query += fmt.Sprintf(` ORDER BY started_at DESC LIMIT %d`, limit)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query validation runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.ID, &rec.SheetKey, &rec.FileName, &rec.Status,
			&rec.RowCount, &rec.ErrorCount, &rec.Cancelled,
			&rec.StartedAt, &rec.DurationMs,
		); err != nil {
			return nil, fmt.Errorf("scan validation run: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns a single run with its full error payload.
func (s *RunStore) Get(ctx context.Context, id string) (RunRecord, error) {
	var rec RunRecord
	var payload []byte

	err := s.db.QueryRow(ctx, `
		SELECT id, sheet_key, file_name, status, row_count, error_count, cancelled, errors, started_at, duration_ms
		FROM validation_runs WHERE id = $1`, id,
	).Scan(
		&rec.ID, &rec.SheetKey, &rec.FileName, &rec.Status,
		&rec.RowCount, &rec.ErrorCount, &rec.Cancelled,
		&payload, &rec.StartedAt, &rec.DurationMs,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("load validation run %s: %w", id, err)
	}

	if err := json.Unmarshal(payload, &rec.Errors); err != nil {
		return RunRecord{}, fmt.Errorf("decode run errors: %w", err)
	}
	return rec, nil
}
