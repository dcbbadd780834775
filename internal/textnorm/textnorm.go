// Package textnorm canonicalizes text extracted from PDFs so that the
// downstream regex-based extractors see a predictable string.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	digitLetter   = regexp.MustCompile(`(\d)([A-Za-z])`)
	letterDigit   = regexp.MustCompile(`([A-Za-z])(\d)`)
)

// Normalize canonicalizes raw page text for pattern matching:
// non-breaking spaces become ordinary spaces, whitespace runs (including
// newlines) collapse to single spaces, and a space is inserted at
// digit/letter boundaries where PDF extraction glued tokens together
// (e.g. "Accepted:2April2025" -> "Accepted: 2 April 2025").
//
// Normalize never fails and is idempotent: applying it to already
// normalized text is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ReplaceAll(text, "\u00a0", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	t = whitespaceRun.ReplaceAllString(t, " ")
	t = digitLetter.ReplaceAllString(t, "$1 $2")
	t = letterDigit.ReplaceAllString(t, "$1 $2")
	return strings.TrimSpace(t)
}
