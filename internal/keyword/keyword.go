// Package keyword scans documents for ordered lists of sharing-related
// search terms.
package keyword

import (
	"fmt"
	"regexp"

	"github.com/reprolab/sharescan/internal/document"
)

// DefaultTerms is the reproducibility term list used for MRM papers.
// Order matters: results are reported in term-list order. Terms are
// case-sensitive regular expressions; the padded " git " and " code "
// entries avoid matching inside words like "digital" or "encode".
var DefaultTerms = []string{
	"open source",
	"open-source",
	"opensource",
	"open science",
	"github",
	" git ",
	"osf",
	"jupyter",
	"notebook",
	"octave",
	"available online",
	"released",
	"shared",
	" code ",
}

// Term is a compiled search term.
type Term struct {
	Raw string
	re  *regexp.Regexp
}

// Compile compiles an ordered term list. Terms are treated as regular
// expressions, matching the original notebook's behavior; plain substrings
// compile to themselves.
func Compile(terms []string) ([]Term, error) {
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		re, err := regexp.Compile(t)
		if err != nil {
			return nil, fmt.Errorf("compiling term %q: %w", t, err)
		}
		out = append(out, Term{Raw: t, re: re})
	}
	return out, nil
}

// MustCompile is Compile for known-good term lists.
func MustCompile(terms []string) []Term {
	out, err := Compile(terms)
	if err != nil {
		panic(err)
	}
	return out
}

// Scan reports which terms match the document, in term-list order, each at
// most once. For every term, pages are scanned in order and recording
// stops at the first matching page; later pages are never consulted for
// that term, which keeps the result independent of how matches are
// distributed across pages.
func Scan(doc document.Document, terms []Term) []string {
	pages := doc.PageTexts(0)

	var found []string
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if seen[term.Raw] {
			continue
		}
		for _, page := range pages {
			if term.re.MatchString(page) {
				found = append(found, term.Raw)
				seen[term.Raw] = true
				break
			}
		}
	}
	return found
}
