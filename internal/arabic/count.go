// Package arabic counts significant (Arabic-script) characters in corpus
// text. The count is the sanity check for lossless splitting: a source file
// and the sum of the files split off from it should agree.
package arabic

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

const editorHeading = "### |EDITOR|"

// Count returns the number of Arabic-script letters in text. Markup, Latin
// text, digits and whitespace do not count.
func Count(text string) int {
	n := 0
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) && unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// CountFile counts the Arabic-script letters in the file at path. When
// includeEditorSections is false, editorial sections (an "### |EDITOR|"
// heading up to the next "### " heading) are excluded from the count.
func CountFile(path string, includeEditorSections bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("count chars in %s: %w", path, err)
	}
	text := string(data)
	if !includeEditorSections {
		text = stripEditorSections(text)
	}
	return Count(text), nil
}

// stripEditorSections removes every editorial section from text. A section
// runs from its "### |EDITOR|" heading to the next "### " heading or EOF.
func stripEditorSections(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	inEditor := false
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, editorHeading):
			inEditor = true
		case inEditor && strings.HasPrefix(line, "### "):
			inEditor = false
			kept = append(kept, line)
		case !inEditor:
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
