// Package documents inspects raw corpus files before the pipeline touches
// them, so that a stray PDF or database dump fails with a clear message
// instead of a regex mismatch.
package documents

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const (
	// TypeCorpus is a mARkdown corpus text carrying a metadata header.
	TypeCorpus = "corpus"
	// TypeText is plain text without a corpus header.
	TypeText = "txt"
	// TypeBinary is anything the pipeline cannot split.
	TypeBinary = "binary"
)

// DetectDocumentType determines the type of document from the raw data.
func DetectDocumentType(data []byte) string {
	if !isLikelyText(data) {
		return TypeBinary
	}
	if strings.Contains(string(data), "#META#Header#End#") {
		return TypeCorpus
	}
	return TypeText
}

// isLikelyText checks if the data is plausible UTF-8 text. Byte-level
// printable-range heuristics do not work here: corpus files are mostly
// Arabic, so nearly every byte is outside ASCII.
func isLikelyText(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.Contains(data, []byte{0}) {
		return false
	}
	return utf8.Valid(data)
}
