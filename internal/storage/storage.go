package storage

import (
	"context"

	"github.com/athar-lab/corpus-mcp/models"
)

// Store defines the interface for recording and retrieving split runs.
type Store interface {
	// RecordRun persists a completed split run and returns its run ID.
	RecordRun(ctx context.Context, report *models.SplitReport) (string, error)

	// GetRun retrieves a run summary by ID.
	GetRun(ctx context.Context, runID string) (*models.RunInfo, error)

	// GetWorks retrieves the per-work reports of a run, in configuration order.
	GetWorks(ctx context.Context, runID string) ([]models.WorkReport, error)

	// ListRuns returns summaries of all recorded runs, newest first.
	ListRuns(ctx context.Context) ([]models.RunInfo, error)

	// DeleteRun removes a run and its per-work records.
	DeleteRun(ctx context.Context, runID string) error

	// Close closes the database connection.
	Close() error
}
