package assembler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/athar-lab/corpus-mcp/models"
)

func writeSource(t *testing.T, dir, base, content string) string {
	t.Helper()
	path := filepath.Join(dir, base)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAssemble(t *testing.T) {
	dir := t.TempDir()
	sourceBase := "0974Author.Title.Ed1-ara1"
	sourcePath := writeSource(t, dir, sourceBase, "header\n#META#Header#End#\n\nنص\nPageV01P001\n")
	outDir := filepath.Join(dir, "split")

	works := []*models.Work{
		{
			WorkConfig: models.WorkConfig{Filename: "0974Author.Title.Ed1BK1-ara1"},
			Fragments:  []string{"نص\nPageV01P001\n"},
		},
		{
			WorkConfig: models.WorkConfig{Filename: "0974Author.Title.Ed1BK2-ara1"},
			Fragments:  []string{"\nPageV01P001\n"},
		},
	}

	var diag bytes.Buffer
	header := "header\n#META#Header#End#\n\n"
	report, err := Assemble(Config{
		Header:     header,
		Works:      works,
		OutDir:     outDir,
		SourcePath: sourcePath,
		SourceBase: sourceBase,
		Sidecar:    "00#BOOK#URI######: " + sourceBase + "\n",
		Diag:       &diag,
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	// Output documents start with the verbatim header.
	for _, w := range works {
		data, err := os.ReadFile(filepath.Join(outDir, w.Filename))
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if !strings.HasPrefix(string(data), header) {
			t.Errorf("%s does not start with header", w.Filename)
		}
	}

	// Sidecars carry the work filename, not the source filename.
	for _, w := range works {
		data, err := os.ReadFile(filepath.Join(outDir, w.Filename+".yml"))
		if err != nil {
			t.Fatalf("read sidecar: %v", err)
		}
		if !strings.Contains(string(data), w.Filename) {
			t.Errorf("sidecar for %s missing work filename", w.Filename)
		}
		if strings.Contains(string(data), sourceBase+"\n") {
			t.Errorf("sidecar for %s still names the source file", w.Filename)
		}
	}

	// The source text "نص" went to work 1; counts must balance.
	if report.SourceCharCount != 2 {
		t.Errorf("source char count = %d, want 2", report.SourceCharCount)
	}
	if report.OutputCharCount != report.SourceCharCount {
		t.Errorf("output char count %d != source %d", report.OutputCharCount, report.SourceCharCount)
	}
	if report.PageCount != 1 {
		t.Errorf("page count = %d, want 1", report.PageCount)
	}

	for _, want := range []string{
		"original Arabic character count: 2",
		"sum of the Arabic character count in export files: 2",
		"NB: if Arabic character count does not agree",
	} {
		if !strings.Contains(diag.String(), want) {
			t.Errorf("diagnostics missing %q:\n%s", want, diag.String())
		}
	}
}

func TestAssembleCountMismatchIsAdvisory(t *testing.T) {
	dir := t.TempDir()
	sourceBase := "src-ara1"
	sourcePath := writeSource(t, dir, sourceBase, "نص كامل هنا")

	works := []*models.Work{{
		WorkConfig: models.WorkConfig{Filename: "out-ara1"},
		Fragments:  []string{"نص\nNO_PAGE_NUMBER\n"},
	}}

	var diag bytes.Buffer
	report, err := Assemble(Config{
		Works:      works,
		OutDir:     filepath.Join(dir, "split"),
		SourcePath: sourcePath,
		SourceBase: sourceBase,
		Sidecar:    "k: v\n",
		Diag:       &diag,
	})
	if err != nil {
		t.Fatalf("mismatched counts must not fail the run: %v", err)
	}
	if report.SourceCharCount == report.OutputCharCount {
		t.Fatal("test setup expected a mismatch")
	}
	if !strings.Contains(diag.String(), "something went wrong") {
		t.Errorf("missing advisory note:\n%s", diag.String())
	}
}

func TestAssembleCleanPass(t *testing.T) {
	dir := t.TempDir()
	sourceBase := "src-ara1"
	sourcePath := writeSource(t, dir, sourceBase, "نص")

	works := []*models.Work{{
		WorkConfig: models.WorkConfig{Filename: "out-ara1"},
		Fragments:  []string{"نص CLEANME\nPageV01P001\n"},
	}}

	outDir := filepath.Join(dir, "split")
	_, err := Assemble(Config{
		Header:     "h\n",
		Works:      works,
		OutDir:     outDir,
		SourcePath: sourcePath,
		SourceBase: sourceBase,
		Sidecar:    "k: v\n",
		Clean: func(s string) string {
			return strings.ReplaceAll(s, "CLEANME", "")
		},
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "out-ara1"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "CLEANME") {
		t.Error("cleaning transform was not applied to the written file")
	}
}
