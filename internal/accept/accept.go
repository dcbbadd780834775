// Package accept locates the "Accepted" date in first-page paper text.
package accept

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/reprolab/sharescan/internal/textnorm"
)

// The four supported patterns, tried in this order on normalized text.
// All are anchored on the literal word "Accepted", optionally followed by
// a colon.
var (
	// "Accepted: 2 April 2025" / "Accepted 2 April 2025"
	dayMonthYear = regexp.MustCompile(`(?i)\bAccepted\b\s*:?\s*(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})\b`)
	// "Accepted: April 2, 2025"
	monthDayYear = regexp.MustCompile(`(?i)\bAccepted\b\s*:?\s*([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})\b`)
	// "Accepted: 2025-04-02"
	yearMonthDay = regexp.MustCompile(`(?i)\bAccepted\b\s*:?\s*(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	// "Accepted: 02/04/2025". Ambiguous numeric form, resolved as
	// day/month/year. That is a policy choice, not a guess: MRM proofs use
	// the European order.
	dayMonthYearSlash = regexp.MustCompile(`(?i)\bAccepted\b\s*:?\s*(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

// months resolves full English month names and 3-letter abbreviations
// (plus "sept") to month numbers.
var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// monthByName resolves a month name or abbreviation, falling back to the
// first three letters ("Sept." -> "sep").
func monthByName(name string) (time.Month, bool) {
	key := strings.ToLower(name)
	if m, ok := months[key]; ok {
		return m, true
	}
	if len(key) > 3 {
		if m, ok := months[key[:3]]; ok {
			return m, true
		}
	}
	return 0, false
}

// Parse extracts the acceptance date from raw text. The text is normalized
// first, then the patterns above are tried in fixed order; the first match
// wins. A match that names an invalid calendar date (day 31 in April)
// makes Parse return absent rather than retrying later patterns.
func Parse(text string) (time.Time, bool) {
	t := textnorm.Normalize(text)
	if t == "" {
		return time.Time{}, false
	}

	if m := dayMonthYear.FindStringSubmatch(t); m != nil {
		if mon, ok := monthByName(m[2]); ok {
			return makeDate(m[3], mon, m[1])
		}
		// Unknown month name: not a date match, keep trying.
	}

	if m := monthDayYear.FindStringSubmatch(t); m != nil {
		if mon, ok := monthByName(m[1]); ok {
			return makeDate(m[3], mon, m[2])
		}
	}

	if m := yearMonthDay.FindStringSubmatch(t); m != nil {
		mon, _ := strconv.Atoi(m[2])
		if mon < 1 || mon > 12 {
			return time.Time{}, false
		}
		return makeDate(m[1], time.Month(mon), m[3])
	}

	if m := dayMonthYearSlash.FindStringSubmatch(t); m != nil {
		mon, _ := strconv.Atoi(m[2])
		if mon < 1 || mon > 12 {
			return time.Time{}, false
		}
		return makeDate(m[3], time.Month(mon), m[1])
	}

	return time.Time{}, false
}

// makeDate builds a UTC date from string year/day and a month, rejecting
// values that time.Date would silently normalize (31 April -> 1 May).
func makeDate(year string, month time.Month, day string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	d, _ := strconv.Atoi(day)

	date := time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
	if date.Year() != y || date.Month() != month || date.Day() != d {
		return time.Time{}, false
	}
	return date, true
}
