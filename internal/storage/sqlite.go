package storage

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/models"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db  *sql.DB
	log logger.Logger
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(dbPath string, log logger.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db, log: log}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the database tables if they don't exist
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		outdir TEXT NOT NULL,
		page_count INTEGER NOT NULL,
		source_char_count INTEGER NOT NULL,
		output_char_count INTEGER NOT NULL,
		cleaned INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS run_works (
		run_id TEXT NOT NULL,
		work_index INTEGER NOT NULL,
		filename TEXT NOT NULL,
		fragment_count INTEGER NOT NULL,
		char_count INTEGER NOT NULL,
		PRIMARY KEY (run_id, work_index),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RecordRun persists a completed split run and returns its run ID
func (s *SQLiteStore) RecordRun(ctx context.Context, report *models.SplitReport) (string, error) {
	runID := generateRunID(report)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, source, outdir, page_count, source_char_count, output_char_count, cleaned)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, report.Source, report.OutDir, report.PageCount,
		report.SourceCharCount, report.OutputCharCount, report.Cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i, w := range report.Works {
		_, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO run_works (run_id, work_index, filename, fragment_count, char_count)
			VALUES (?, ?, ?, ?, ?)
		`, runID, i, w.Filename, w.FragmentCount, w.CharCount)
		if err != nil {
			return "", fmt.Errorf("failed to insert work record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Debug("Recorded run %s (%d works)", runID, len(report.Works))
	return runID, nil
}

// GetRun retrieves a run summary by ID
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*models.RunInfo, error) {
	var info models.RunInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, outdir, page_count, source_char_count, output_char_count, cleaned, created_at
		FROM runs WHERE id = ?
	`, runID).Scan(&info.RunID, &info.Source, &info.OutDir, &info.PageCount,
		&info.SourceCharCount, &info.OutputCharCount, &info.Cleaned, &info.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &info, nil
}

// GetWorks retrieves the per-work reports of a run, in configuration order
func (s *SQLiteStore) GetWorks(ctx context.Context, runID string) ([]models.WorkReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT filename, fragment_count, char_count
		FROM run_works WHERE run_id = ? ORDER BY work_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query works: %w", err)
	}
	defer rows.Close()

	var works []models.WorkReport
	for rows.Next() {
		var w models.WorkReport
		if err := rows.Scan(&w.Filename, &w.FragmentCount, &w.CharCount); err != nil {
			return nil, fmt.Errorf("failed to scan work: %w", err)
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

// ListRuns returns summaries of all recorded runs, newest first
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]models.RunInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, outdir, page_count, source_char_count, output_char_count, cleaned, created_at
		FROM runs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.RunInfo
	for rows.Next() {
		var info models.RunInfo
		if err := rows.Scan(&info.RunID, &info.Source, &info.OutDir, &info.PageCount,
			&info.SourceCharCount, &info.OutputCharCount, &info.Cleaned, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run and its per-work records
func (s *SQLiteStore) DeleteRun(ctx context.Context, runID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_works WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("failed to delete work records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, runID); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return tx.Commit()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// generateRunID derives a stable-length ID from the run's source, output
// directory and timestamp.
func generateRunID(report *models.SplitReport) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", report.Source, report.OutDir, time.Now().UnixNano())))
	return hex.EncodeToString(h[:])[:16]
}
