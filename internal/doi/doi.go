// Package doi extracts canonical DOI identifiers from free text and links.
package doi

import (
	"regexp"
	"strings"
)

// pattern matches a DOI-shaped token: "10." followed by a 4-9 digit
// registrant code, a slash, and one or more suffix characters. The suffix
// excludes whitespace, quotes, and angle brackets, which commonly delimit
// DOIs embedded in URLs or reference lists.
var pattern = regexp.MustCompile(`(?i)\b10\.\d{4,9}/[^\s<>"']+`)

// trailingPunct is punctuation commonly glued onto a DOI by surrounding
// prose ("(doi:10.1002/mrm.1)." and the like).
const trailingPunct = ").,;]"

// Extract returns the first DOI-shaped token in text, lower-cased, with
// trailing closing punctuation stripped. It returns "" if no DOI is found.
// The first occurrence always wins; callers that need to disambiguate
// documents containing several DOIs (self-citations, reference lists)
// must do so themselves.
func Extract(text string) string {
	m := pattern.FindString(text)
	if m == "" {
		return ""
	}
	m = strings.TrimRight(m, trailingPunct)
	if !valid(m) {
		return ""
	}
	return strings.ToLower(m)
}

// valid rejects matches whose suffix was entirely punctuation.
func valid(doi string) bool {
	slash := strings.Index(doi, "/")
	return slash != -1 && slash < len(doi)-1
}
