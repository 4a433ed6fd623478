// Package cleaner normalizes formatting artifacts in split corpus files.
package cleaner

import (
	"regexp"
	"strings"
)

// Cleaner applies a fixed, ordered sequence of text-normalization rules.
// The order matters: later rules assume the normalized form produced by
// earlier ones (the "# Page" collapse only fires once empty paragraph stubs
// are gone).
type Cleaner struct {
	markupTags       *regexp.Regexp
	redundantNoPage  *regexp.Regexp
	emptyParagraph   *regexp.Regexp
	pageAfterMark    *regexp.Regexp
	blankCommentary  *regexp.Regexp
	subheadingLabel  *regexp.Regexp
	commentaryStarts *regexp.Regexp
}

// New returns a Cleaner with all rule patterns precompiled.
func New() *Cleaner {
	return &Cleaner{
		markupTags:       regexp.MustCompile(`<[/a-zA-Z=\-_"' ]+>`),
		redundantNoPage:  regexp.MustCompile(`(PageV[^P]+P\w+)[\r\n]*NO_PAGE_NUMBER`),
		emptyParagraph:   regexp.MustCompile(`[\r\n]+#\s+[\r\n]+`),
		pageAfterMark:    regexp.MustCompile(`# Page`),
		blankCommentary:  regexp.MustCompile(`### \|.+[\r\n]+[# .]+[\r\n]+Page.+`),
		subheadingLabel:  regexp.MustCompile(`# ([([](?:باب|فرع|فصل)[^)\]]*[)\]])\s*#?`),
		commentaryStarts: regexp.MustCompile(`### \| \[حاشية.+`),
	}
}

// Clean applies every rule in order and trims the result.
func (c *Cleaner) Clean(text string) string {
	// Strip inline markup tags.
	text = c.markupTags.ReplaceAllString(text, "")
	// A NO_PAGE_NUMBER sentinel right after a real page number is redundant.
	text = c.redundantNoPage.ReplaceAllString(text, "$1")
	// Paragraph marks without a paragraph.
	text = c.emptyParagraph.ReplaceAllString(text, "\n")
	text = c.pageAfterMark.ReplaceAllString(text, "Page")
	// Empty commentary pages contain only a "# . . ." filler line.
	text = c.blankCommentary.ReplaceAllString(text, "")
	// Bracketed section labels become tagged subheadings.
	text = c.subheadingLabel.ReplaceAllString(text, "### | $1\n# ")
	// Leftover commentary-start tags are noise at fragment boundaries.
	text = c.commentaryStarts.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}
