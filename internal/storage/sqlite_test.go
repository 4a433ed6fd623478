package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), logger.NewNoOpLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReport() *models.SplitReport {
	return &models.SplitReport{
		Source:          "/corpus/0974Author.Title.Ed1-ara1",
		OutDir:          "/corpus/split",
		PageCount:       12,
		SourceCharCount: 4000,
		OutputCharCount: 4000,
		Cleaned:         true,
		Works: []models.WorkReport{
			{Filename: "0974Author.Title.Ed1BK1-ara1", FragmentCount: 12, CharCount: 3000},
			{Filename: "1118Other.Hashiya.Ed1BK2-ara1", FragmentCount: 12, CharCount: 1000},
		},
	}
}

func TestRecordAndGetRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	runID, err := store.RecordRun(ctx, sampleReport())
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run ID")
	}

	info, err := store.GetRun(ctx, runID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if info.Source != "/corpus/0974Author.Title.Ed1-ara1" {
		t.Errorf("unexpected source: %q", info.Source)
	}
	if info.PageCount != 12 || info.SourceCharCount != 4000 || !info.Cleaned {
		t.Errorf("unexpected run info: %+v", info)
	}
	if info.CreatedAt == "" {
		t.Error("missing created_at")
	}

	works, err := store.GetWorks(ctx, runID)
	if err != nil {
		t.Fatalf("GetWorks: %v", err)
	}
	if len(works) != 2 {
		t.Fatalf("expected 2 works, got %d", len(works))
	}
	if works[0].Filename != "0974Author.Title.Ed1BK1-ara1" || works[1].CharCount != 1000 {
		t.Errorf("works out of order or wrong: %+v", works)
	}
}

func TestGetRunNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetRun(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestListAndDeleteRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.RecordRun(ctx, sampleReport())
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	second, err := store.RecordRun(ctx, sampleReport())
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if first == second {
		t.Fatal("run IDs must be unique per run")
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	if err := store.DeleteRun(ctx, first); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	runs, err = store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != second {
		t.Errorf("unexpected runs after delete: %+v", runs)
	}
	if works, _ := store.GetWorks(ctx, first); len(works) != 0 {
		t.Errorf("work records survived run deletion: %+v", works)
	}
}

func TestCalculateResourcePaths(t *testing.T) {
	paths := CalculateResourcePaths("abc123")
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] != "run://abc123" || paths[1] != "run://abc123/works" {
		t.Errorf("unexpected paths: %v", paths)
	}
}
