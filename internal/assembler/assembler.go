// Package assembler writes split works out as complete corpus documents:
// header plus joined page fragments, each with an adapted metadata sidecar,
// followed by the advisory character-count check and an optional cleaning
// pass over the written files.
package assembler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/athar-lab/corpus-mcp/internal/arabic"
	"github.com/athar-lab/corpus-mcp/internal/sidecar"
	"github.com/athar-lab/corpus-mcp/models"
)

// Config carries everything one assembly pass needs. Works must already be
// populated by the splitter.
type Config struct {
	Header     string
	Works      []*models.Work
	OutDir     string
	SourcePath string              // original document, for the advisory count
	SourceBase string              // its base filename, replaced in sidecars
	Sidecar    string              // sidecar content of the original document
	Clean      func(string) string // optional cleaning transform
	Diag       io.Writer           // advisory diagnostics; nil discards them
}

// Assemble writes one output document and one sidecar per work, reports the
// character-count consistency check, and applies the cleaning transform if
// one is supplied. The count check is advisory only: a mismatch points at
// overlapping or gap-producing extraction patterns and is left for the
// operator to review.
func Assemble(cfg Config) (*models.SplitReport, error) {
	if cfg.Diag == nil {
		cfg.Diag = io.Discard
	}
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	report := &models.SplitReport{
		Source:  cfg.SourcePath,
		OutDir:  cfg.OutDir,
		Cleaned: cfg.Clean != nil,
	}
	if len(cfg.Works) > 0 {
		report.PageCount = len(cfg.Works[0].Fragments)
	}

	for _, w := range cfg.Works {
		outPath := filepath.Join(cfg.OutDir, w.Filename)
		content := cfg.Header + strings.Join(w.Fragments, "")
		if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", outPath, err)
		}
		renamed := sidecar.Rename(cfg.Sidecar, cfg.SourceBase, w.Filename)
		if err := os.WriteFile(outPath+sidecar.Suffix, []byte(renamed), 0644); err != nil {
			return nil, fmt.Errorf("write sidecar for %s: %w", w.Filename, err)
		}
	}

	sourceCount, err := arabic.CountFile(cfg.SourcePath, true)
	if err != nil {
		return nil, err
	}
	report.SourceCharCount = sourceCount

	for _, w := range cfg.Works {
		count, err := arabic.CountFile(filepath.Join(cfg.OutDir, w.Filename), true)
		if err != nil {
			return nil, err
		}
		report.OutputCharCount += count
		report.Works = append(report.Works, models.WorkReport{
			Filename:      w.Filename,
			FragmentCount: len(w.Fragments),
			CharCount:     count,
		})
	}

	fmt.Fprintf(cfg.Diag, "original Arabic character count: %d\n", report.SourceCharCount)
	fmt.Fprintf(cfg.Diag, "sum of the Arabic character count in export files: %d\n", report.OutputCharCount)
	fmt.Fprintln(cfg.Diag, "NB: if Arabic character count does not agree, something went wrong!")

	if cfg.Clean != nil {
		for _, w := range cfg.Works {
			outPath := filepath.Join(cfg.OutDir, w.Filename)
			data, err := os.ReadFile(outPath)
			if err != nil {
				return nil, fmt.Errorf("reread %s for cleaning: %w", outPath, err)
			}
			if err := os.WriteFile(outPath, []byte(cfg.Clean(string(data))), 0644); err != nil {
				return nil, fmt.Errorf("write cleaned %s: %w", outPath, err)
			}
		}
	}

	return report, nil
}
