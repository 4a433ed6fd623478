package sidecar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "0974Author.Title.Ed1-ara1")
	if err := os.WriteFile(source+Suffix, []byte("00#BOOK#URI######: 0974Author.Title.Ed1-ara1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	content, err := Load(source)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(content, "0974Author.Title.Ed1-ara1") {
		t.Errorf("unexpected sidecar content: %q", content)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing sidecar")
	}
}

func TestRename(t *testing.T) {
	content := "00#BOOK#URI######: 0974Author.Title.Ed1-ara1\n90#BOOK#COMMENT##: copy of 0974Author.Title.Ed1-ara1\n"
	got := Rename(content, "0974Author.Title.Ed1-ara1", "0974Author.Title.Ed1BK1-ara1")

	if strings.Contains(got, "Ed1-ara1\n") && !strings.Contains(got, "BK1") {
		t.Errorf("source base filename survived: %q", got)
	}
	if strings.Count(got, "0974Author.Title.Ed1BK1-ara1") != 2 {
		t.Errorf("expected every occurrence replaced: %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("key: value\nother: 2\n"); err != nil {
		t.Errorf("valid YAML rejected: %v", err)
	}
	if err := Validate("key: [unclosed\n  bad:\n\t tab"); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
