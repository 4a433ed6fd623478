// Package splitter partitions a combined corpus file into pages and extracts
// each configured work's share of every page.
//
// Corpus files consist of a metadata header terminated by the literal
// #META#Header#End#, followed by a body in which page boundaries are marked
// with PageV<volume>P<page> tokens. A single page may interleave several
// logical works (a base text plus commentaries); each work is pulled out of
// the page with a caller-supplied regex.
package splitter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/athar-lab/corpus-mcp/models"
)

// HeaderEnd is the literal that terminates a corpus file's metadata header.
const HeaderEnd = "#META#Header#End#"

// NoPageNumber is the sentinel marker paired with content that no real page
// marker follows.
const NoPageNumber = "\nNO_PAGE_NUMBER\n"

var (
	milestoneRE  = regexp.MustCompile(` *ms\d+ *`)
	pageMarkerRE = regexp.MustCompile(`[\r\n]*PageV[^P]+P\w+[\r\n]*`)
)

// SplitHeader splits a document into its metadata header and body. The
// header-end marker must occur exactly once; it is restored at the end of the
// returned header so every output file carries it verbatim.
func SplitHeader(text string) (header, body string, err error) {
	parts := strings.Split(text, HeaderEnd)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected exactly one %q marker, found %d", HeaderEnd, len(parts)-1)
	}
	return parts[0] + HeaderEnd + "\n\n", parts[1], nil
}

// RemoveMilestones strips inline msNNN collation tokens from body text. They
// are alignment artifacts, not content.
func RemoveMilestones(body string) string {
	return milestoneRE.ReplaceAllString(body, " ")
}

// Segment is one unit of the page partition: a span of page content and the
// page marker that follows it. Content after the final real marker carries
// the NoPageNumber sentinel instead.
type Segment struct {
	Content string
	Marker  string
}

// SplitPages partitions body text into content segments paired with their
// trailing page markers, in source order. Content between two markers may be
// empty; such segments are kept so that fragment counts stay aligned with the
// page count. A trailing segment is emitted only if any content follows the
// last marker.
func SplitPages(body string) []Segment {
	locs := pageMarkerRE.FindAllStringIndex(body, -1)

	var segments []Segment
	prev := 0
	for _, loc := range locs {
		segments = append(segments, Segment{
			Content: body[prev:loc[0]],
			Marker:  body[loc[0]:loc[1]],
		})
		prev = loc[1]
	}
	if rest := body[prev:]; rest != "" || len(locs) == 0 {
		segments = append(segments, Segment{Content: rest, Marker: NoPageNumber})
	}
	return segments
}

// Extractor applies one work's extraction pattern to page content.
//
// Patterns are compiled in dot-matches-newline mode with the regexp2 engine
// because corpus configurations rely on lookahead assertions, which the
// stdlib RE2 engine does not support.
type Extractor struct {
	re        *regexp2.Regexp
	grouped   bool
	groupByID int
}

// NewExtractor compiles a work's extraction pattern. An invalid pattern is a
// configuration error.
func NewExtractor(pattern string) (*Extractor, error) {
	re, err := regexp2.Compile(pattern, regexp2.Singleline)
	if err != nil {
		return nil, fmt.Errorf("compile extraction pattern %q: %w", pattern, err)
	}
	e := &Extractor{re: re}
	// Mirror re.findall semantics: with capturing groups the first group is
	// the extracted text, otherwise the whole match.
	for _, n := range re.GetGroupNumbers() {
		if n > 0 {
			e.grouped = true
			e.groupByID = n
			break
		}
	}
	return e, nil
}

// Extract returns the work's content on the given page, or the empty string
// when the pattern does not match. A non-matching page is normal: most works
// do not appear on every page.
func (e *Extractor) Extract(content string) string {
	m, err := e.re.FindStringMatch(content)
	if err != nil || m == nil {
		return ""
	}
	if e.grouped {
		if g := m.GroupByNumber(e.groupByID); g != nil {
			return g.String()
		}
		return ""
	}
	return m.String()
}

// Populate runs every work's extractor over every segment, appending
// fragment+marker to the work's fragment list. After Populate, each work has
// exactly one fragment per segment, so concatenating a work's fragments
// reproduces its page-by-page content with page markers attached.
func Populate(works []*models.Work, segments []Segment) error {
	extractors := make([]*Extractor, len(works))
	for i, w := range works {
		e, err := NewExtractor(w.Pattern)
		if err != nil {
			return fmt.Errorf("work %s: %w", w.Filename, err)
		}
		extractors[i] = e
	}

	for _, seg := range segments {
		for i, w := range works {
			w.Fragments = append(w.Fragments, extractors[i].Extract(seg.Content)+seg.Marker)
		}
	}
	return nil
}
