// Package uri parses and validates corpus text URIs. A URI names one
// version of one work, e.g.
//
//	0974IbnHajarHaytami.TuhfatMuhtaj.Shamela0009059BK1-ara1
//
// author part (death date + name), title, then a version identifier and a
// language tag. Split-off works keep the scheme: only the version block
// changes (BK1, BK2, ...), so output filenames should themselves be URIs.
package uri

import (
	"fmt"
	"regexp"
)

var uriRE = regexp.MustCompile(`^(\d{4}[A-Za-z]+)\.([A-Za-z0-9]+)\.([A-Za-z0-9]+)-([a-z]{3}\d*)$`)

// URI is a parsed corpus text identifier.
type URI struct {
	Author  string // death-date prefix plus author name, e.g. 0974IbnHajarHaytami
	Title   string // work title, e.g. TuhfatMuhtaj
	Version string // edition identifier, e.g. Shamela0009059BK1
	Lang    string // language tag plus copy number, e.g. ara1
}

// Parse splits s into its URI components.
func Parse(s string) (*URI, error) {
	m := uriRE.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("not a valid corpus URI: %q", s)
	}
	return &URI{Author: m[1], Title: m[2], Version: m[3], Lang: m[4]}, nil
}

// Valid reports whether s is a well-formed corpus URI.
func Valid(s string) bool {
	return uriRE.MatchString(s)
}

// String reassembles the URI.
func (u *URI) String() string {
	return fmt.Sprintf("%s.%s.%s-%s", u.Author, u.Title, u.Version, u.Lang)
}
