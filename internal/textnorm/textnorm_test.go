package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text unchanged", "Accepted: 2 April 2025", "Accepted: 2 April 2025"},
		{"glued date tokens", "Accepted:2April2025", "Accepted:2 April 2025"},
		{"non-breaking spaces", "Accepted:\u00a02\u00a0April\u00a02025", "Accepted: 2 April 2025"},
		{"newlines collapse", "Accepted:\n2 April\n2025", "Accepted: 2 April 2025"},
		{"whitespace runs", "a    b\t\tc", "a b c"},
		{"leading and trailing space trimmed", "  hello  ", "hello"},
		{"letter then digit", "page12", "page 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Accepted:2April2025",
		"Magn Reson Med.  2025;93:1–15",
		"1 Department of Radiology,\nMontreal, Canada",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
