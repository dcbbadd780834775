package accept

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{"day month year", "Accepted: 2 April 2025", date(2025, time.April, 2), true},
		{"day month year no colon", "Accepted 2 April 2025", date(2025, time.April, 2), true},
		{"month day year", "Accepted April 2, 2025", date(2025, time.April, 2), true},
		{"month day year no comma", "Accepted: April 2 2025", date(2025, time.April, 2), true},
		{"iso dashes", "Accepted: 2025-04-02", date(2025, time.April, 2), true},
		{"slashes day month year", "Accepted: 02/04/2025", date(2025, time.April, 2), true},
		{"abbreviated month", "Accepted: 2 Apr 2025", date(2025, time.April, 2), true},
		{"sept abbreviation", "Accepted: 14 Sept 2024", date(2024, time.September, 14), true},
		{"case insensitive anchor", "ACCEPTED: 2 April 2025", date(2025, time.April, 2), true},
		{"glued tokens normalized", "Accepted:2April2025", date(2025, time.April, 2), true},
		{"line break between tokens", "Accepted: 2\nApril 2025", date(2025, time.April, 2), true},
		{"surrounded by prose", "Received: 1 March 2025 Accepted: 2 April 2025 Published online", date(2025, time.April, 2), true},
		{"invalid calendar date", "Accepted 31 April 2025", time.Time{}, false},
		{"invalid slash month", "Accepted: 02/13/2025", time.Time{}, false},
		{"no anchor word", "2 April 2025", time.Time{}, false},
		{"anchor without date", "Accepted for publication", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFirstPatternWins(t *testing.T) {
	// Both the day-first and month-first forms could match this text;
	// the day-first pattern is tried first.
	got, ok := Parse("Accepted: 2 April 2025 and also Accepted: May 7, 2025")
	if !ok {
		t.Fatal("Parse() returned absent")
	}
	if want := date(2025, time.April, 2); !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}
