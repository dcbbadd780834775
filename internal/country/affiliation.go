package country

import (
	"regexp"
	"strings"
)

// abstractHeading matches a line whose trimmed content is exactly
// "Abstract" (any case); everything after it is ignored for affiliation
// purposes.
var abstractHeading = regexp.MustCompile(`(?i)^\s*abstract\s*$`)

// affiliationLead matches numbered or lettered affiliation footnotes:
// a line starting with a number or a single letter, optionally followed
// by ")", "." or ":", then the affiliation body.
var affiliationLead = regexp.MustCompile(`(?i)^\s*(\d+|[a-z])[).:]?\s+(.*\S)\s*$`)

// affiliationMarker matches institutional words that distinguish
// affiliation lines from author or title lines.
var affiliationMarker = regexp.MustCompile(`(?i)\b(department|university|institute|hospital|centre|center|laboratory|lab)\b`)

// PreAbstract returns the portion of text preceding the first "Abstract"
// heading line, or the whole text when no such heading is present.
func PreAbstract(text string) string {
	if text == "" {
		return ""
	}
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		if abstractHeading.MatchString(strings.TrimSpace(ln)) {
			break
		}
		out = append(out, ln)
	}
	return strings.Join(out, "\n")
}

// PickFirstAffiliation locates the first author's affiliation line in
// pre-abstract text and infers its country. Three passes over the
// non-blank lines, first hit wins:
//
//  1. Numbered/lettered footnote lines whose body names a country. These
//     are the most reliable first-affiliation signal.
//  2. Lines containing an institutional marker word that name a country.
//  3. Any remaining line that names a country. Last resort; stray country
//     mentions (acknowledgments, grants) make this the most error-prone.
//
// Returns ("", "") when no pass succeeds.
func (l *Lexicon) PickFirstAffiliation(preAbstractText string) (line, country string) {
	if preAbstractText == "" {
		return "", ""
	}

	var lines []string
	for _, ln := range strings.Split(preAbstractText, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}

	for _, ln := range lines {
		m := affiliationLead.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		body := m[2]
		if c := l.Infer(body); c != "" {
			return body, c
		}
	}

	for _, ln := range lines {
		if !affiliationMarker.MatchString(ln) {
			continue
		}
		if c := l.Infer(ln); c != "" {
			return ln, c
		}
	}

	for _, ln := range lines {
		if c := l.Infer(ln); c != "" {
			return ln, c
		}
	}

	return "", ""
}
