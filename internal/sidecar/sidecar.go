// Package sidecar handles the YAML metadata files that accompany corpus
// documents. A document at <path> has its sidecar at <path>.yml; each work
// split off from the document gets a copy with the source's base filename
// replaced by the work's output filename.
package sidecar

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suffix is the fixed sidecar naming convention.
const Suffix = ".yml"

// Load reads the sidecar for the document at sourcePath. A missing sidecar is
// a fatal error: every corpus document is required to carry one.
func Load(sourcePath string) (string, error) {
	data, err := os.ReadFile(sourcePath + Suffix)
	if err != nil {
		return "", fmt.Errorf("read metadata sidecar: %w", err)
	}
	return string(data), nil
}

// Rename adapts sidecar content for one split-off work by replacing every
// occurrence of the source document's base filename with the work's output
// filename. The replacement is textual, preserving the sidecar byte-for-byte
// otherwise; it assumes the base filename does not collide with unrelated
// substrings.
func Rename(content, sourceBase, workFilename string) string {
	return strings.ReplaceAll(content, sourceBase, workFilename)
}

// Validate parses content as YAML and reports a malformed sidecar. Callers
// treat the result as a diagnostic only: the pipeline never parses sidecars
// itself, so a broken one must not stop a run.
func Validate(content string) error {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("malformed sidecar YAML: %w", err)
	}
	return nil
}
