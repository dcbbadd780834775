package doi

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare doi", "10.1002/mrm.30291", "10.1002/mrm.30291"},
		{"doi url", "https://doi.org/10.1002/mrm.30291", "10.1002/mrm.30291"},
		{"embedded in prose", "This article (DOI: 10.1002/mrm.30291) was accepted", "10.1002/mrm.30291"},
		{"uppercase lowered", "DOI 10.1002/MRM.30291", "10.1002/mrm.30291"},
		{"trailing paren stripped", "see (10.1002/mrm.30291)", "10.1002/mrm.30291"},
		{"trailing period stripped", "cited as 10.1002/mrm.30291.", "10.1002/mrm.30291"},
		{"trailing semicolon stripped", "10.1002/mrm.30291;", "10.1002/mrm.30291"},
		{"first occurrence wins", "10.1002/mrm.1 and later 10.1002/mrm.2", "10.1002/mrm.1"},
		{"no doi", "Magnetic Resonance in Medicine", ""},
		{"empty", "", ""},
		{"registrant too short", "10.99/x", ""},
		{"slash then only punctuation", "10.1002/).", ""},
		{"stops at whitespace", "10.1002/mrm.30291 2025", "10.1002/mrm.30291"},
		{"stops at angle bracket", "<a href=doi>10.1002/mrm.30291</a>", "10.1002/mrm.30291"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.input); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
