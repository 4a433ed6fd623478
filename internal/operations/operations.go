// Package operations contains the shared pipeline logic behind the MCP tools
// and the batch CLI: one entry point that takes a split job from source file
// to written outputs, advisory report and recorded run.
package operations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/athar-lab/corpus-mcp/internal/assembler"
	"github.com/athar-lab/corpus-mcp/internal/cleaner"
	"github.com/athar-lab/corpus-mcp/internal/documents"
	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/internal/sidecar"
	"github.com/athar-lab/corpus-mcp/internal/splitter"
	"github.com/athar-lab/corpus-mcp/internal/storage"
	"github.com/athar-lab/corpus-mcp/internal/uri"
	"github.com/athar-lab/corpus-mcp/models"
)

// RunSplit executes one split job: read the source document, partition it
// into pages, extract every configured work, write outputs and sidecars,
// report the advisory character-count check to diag, optionally clean the
// written files, and record the run.
//
// A nil store skips run recording; a nil diag discards the advisory lines.
// Returns the run ID (empty without a store) and the split report.
func RunSplit(ctx context.Context, job models.SplitJob, store storage.Store, log logger.Logger, diag io.Writer) (string, *models.SplitReport, error) {
	if err := validateJob(job); err != nil {
		return "", nil, err
	}

	log.Info("Splitting %s into %d works (outdir %s)", job.Source, len(job.Works), job.OutDir)

	for _, w := range job.Works {
		if !uri.Valid(w.Filename) {
			log.Warn("Output filename %s is not a well-formed corpus URI", w.Filename)
		}
	}

	data, err := os.ReadFile(job.Source)
	if err != nil {
		return "", nil, fmt.Errorf("read source document: %w", err)
	}
	if kind := documents.DetectDocumentType(data); kind == documents.TypeBinary {
		return "", nil, fmt.Errorf("source %s is not a text file", job.Source)
	}

	header, body, err := splitter.SplitHeader(string(data))
	if err != nil {
		return "", nil, fmt.Errorf("source %s: %w", job.Source, err)
	}

	segments := splitter.SplitPages(splitter.RemoveMilestones(body))
	log.Debug("Partitioned body into %d pages", len(segments))

	works := make([]*models.Work, len(job.Works))
	for i, wc := range job.Works {
		works[i] = &models.Work{WorkConfig: wc}
	}
	if err := splitter.Populate(works, segments); err != nil {
		return "", nil, err
	}

	sidecarContent, err := sidecar.Load(job.Source)
	if err != nil {
		return "", nil, err
	}
	if err := sidecar.Validate(sidecarContent); err != nil {
		log.Warn("Sidecar for %s: %v", job.Source, err)
	}

	cfg := assembler.Config{
		Header:     header,
		Works:      works,
		OutDir:     job.OutDir,
		SourcePath: job.Source,
		SourceBase: filepath.Base(job.Source),
		Sidecar:    sidecarContent,
		Diag:       diag,
	}
	if job.Clean {
		cfg.Clean = cleaner.New().Clean
	}

	report, err := assembler.Assemble(cfg)
	if err != nil {
		return "", nil, err
	}

	if report.SourceCharCount != report.OutputCharCount {
		log.Warn("Character counts disagree for %s: source %d, outputs %d",
			job.Source, report.SourceCharCount, report.OutputCharCount)
	}

	var runID string
	if store != nil {
		runID, err = store.RecordRun(ctx, report)
		if err != nil {
			return "", nil, fmt.Errorf("record run: %w", err)
		}
	}

	log.Info("Split %s: %d pages, %d works, run %s", job.Source, report.PageCount, len(report.Works), runID)
	return runID, report, nil
}

// validateJob rejects configurations the pipeline cannot act on.
func validateJob(job models.SplitJob) error {
	if job.Source == "" {
		return errors.New("split job: source path is required")
	}
	if job.OutDir == "" {
		return errors.New("split job: output directory is required")
	}
	if len(job.Works) == 0 {
		return errors.New("split job: at least one work is required")
	}
	seen := make(map[string]bool, len(job.Works))
	for i, w := range job.Works {
		if w.Pattern == "" {
			return fmt.Errorf("split job: work %d has no extraction pattern", i)
		}
		if w.Filename == "" {
			return fmt.Errorf("split job: work %d has no output filename", i)
		}
		if seen[w.Filename] {
			return fmt.Errorf("split job: duplicate output filename %s", w.Filename)
		}
		seen[w.Filename] = true
	}
	return nil
}
