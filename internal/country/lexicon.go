// Package country infers affiliation countries from first-page paper text.
//
// A Lexicon maps every known country name or alias (lower-cased) to a
// canonical country name and supports greedy longest-alias-first matching,
// so "south korea" can never be shadowed by "korea".
package country

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pariz/gountries"
)

// DefaultAliases covers spellings the registry misses in substring
// matching. Aliases take precedence over registry names for the same key.
// The table is configuration: callers may extend or override it.
var DefaultAliases = map[string]string{
	"usa":                      "United States",
	"u.s.a.":                   "United States",
	"u.s.":                     "United States",
	"united states of america": "United States",
	"uk":                       "United Kingdom",
	"u.k.":                     "United Kingdom",
	"england":                  "United Kingdom",
	"scotland":                 "United Kingdom",
	"wales":                    "United Kingdom",
	"russia":                   "Russian Federation",
	"south korea":              "Korea, Republic of",
	"north korea":              "Korea, Democratic People's Republic of",
	"iran":                     "Iran, Islamic Republic of",
	"tanzania":                 "Tanzania, United Republic of",
	"viet nam":                 "Viet Nam",
	"vietnam":                  "Viet Nam",
	"czech republic":           "Czechia",
	"bolivia":                  "Bolivia, Plurinational State of",
	"venezuela":                "Venezuela, Bolivarian Republic of",
	"moldova":                  "Moldova, Republic of",
	"laos":                     "Lao People's Democratic Republic",
	"syria":                    "Syrian Arab Republic",
}

// Lexicon is an immutable country name lookup table. Build one with
// NewLexicon and share it freely; lookups are safe for concurrent use.
type Lexicon struct {
	names   map[string]string // lower-cased alias -> canonical name
	ordered []string          // keys sorted by length descending
}

var (
	structuralPunct = regexp.MustCompile(`[()\[\]{};]`)
	spaceRun        = regexp.MustCompile(`\s+`)
)

// NewLexicon builds a Lexicon from the gountries registry overlaid with
// the given alias table (nil means DefaultAliases). For every registry
// country, the common and official names map to the common name; aliases
// then overwrite any colliding keys.
func NewLexicon(aliases map[string]string) *Lexicon {
	if aliases == nil {
		aliases = DefaultAliases
	}

	names := make(map[string]string)
	query := gountries.New()
	for _, c := range query.FindAllCountries() {
		canonical := c.Name.Common
		if canonical == "" {
			continue
		}
		names[strings.ToLower(canonical)] = canonical
		if c.Name.Official != "" {
			names[strings.ToLower(c.Name.Official)] = canonical
		}
	}
	for k, v := range aliases {
		names[strings.ToLower(k)] = v
	}

	ordered := make([]string, 0, len(names))
	for k := range names {
		ordered = append(ordered, k)
	}
	// Longest first so that greedy matching can never let a shorter alias
	// shadow a longer one; ties break alphabetically for determinism.
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	return &Lexicon{names: names, ordered: ordered}
}

// Infer returns the canonical name of the first country mentioned in text,
// or "" if none is found. Matching is case-insensitive and space-delimited:
// "chinatown" does not match "china". Structural punctuation ()[]{}; is
// stripped before matching.
func (l *Lexicon) Infer(text string) string {
	if text == "" {
		return ""
	}
	t := " " + strings.ToLower(strings.TrimSpace(text)) + " "
	t = structuralPunct.ReplaceAllString(t, " ")
	t = spaceRun.ReplaceAllString(t, " ")

	for _, k := range l.ordered {
		if strings.Contains(t, " "+k+" ") {
			return l.names[k]
		}
	}
	return ""
}

// Canonical returns the canonical name for a single alias, or "" if the
// alias is unknown.
func (l *Lexicon) Canonical(alias string) string {
	return l.names[strings.ToLower(alias)]
}

// Len returns the number of known aliases.
func (l *Lexicon) Len() int {
	return len(l.names)
}
