package country

import (
	"strings"
	"testing"
)

func testLexicon(t *testing.T) *Lexicon {
	t.Helper()
	return NewLexicon(nil)
}

func TestInfer(t *testing.T) {
	lex := testLexicon(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain country name", "1 Department of Radiology, Montreal, Canada", "Canada"},
		{"usa alias", "2 MIT, Cambridge, MA, USA", "United States"},
		{"uk alias", "University of Oxford, Oxford, UK", "United Kingdom"},
		{"russia alias", "Moscow, Russia", "Russian Federation"},
		{"parenthesized country", "NeuroSpin (France)", "France"},
		{"case insensitive", "ZURICH, SWITZERLAND", "Switzerland"},
		{"no country", "Department of Radiology", ""},
		{"empty", "", ""},
		{"partial word does not match", "visited chinatown yesterday", ""},
		{"germany", "Max Planck Institute, Tuebingen, Germany", "Germany"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.Infer(tt.text); got != tt.want {
				t.Errorf("Infer(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestInferLongestMatchFirst(t *testing.T) {
	lex := testLexicon(t)

	// "south korea" must resolve as South Korea, never fire on a shorter
	// "korea" alias first.
	got := lex.Infer("Department of Radiology, Seoul, South Korea")
	if got != "Korea, Republic of" {
		t.Errorf("Infer(south korea) = %q, want %q", got, "Korea, Republic of")
	}

	got = lex.Infer("Pyongyang, North Korea")
	if got != "Korea, Democratic People's Republic of" {
		t.Errorf("Infer(north korea) = %q, want %q", got, "Korea, Democratic People's Republic of")
	}
}

func TestLexiconOrderedLongestFirst(t *testing.T) {
	lex := testLexicon(t)

	for i := 1; i < len(lex.ordered); i++ {
		if len(lex.ordered[i-1]) < len(lex.ordered[i]) {
			t.Fatalf("ordered[%d]=%q is shorter than ordered[%d]=%q", i-1, lex.ordered[i-1], i, lex.ordered[i])
		}
	}
}

func TestLexiconAliasPrecedence(t *testing.T) {
	// A custom alias table must win over registry names for the same key.
	lex := NewLexicon(map[string]string{"germany": "Deutschland"})

	if got := lex.Canonical("germany"); got != "Deutschland" {
		t.Errorf("Canonical(germany) = %q, want Deutschland", got)
	}
}

func TestLexiconDeterministicOrder(t *testing.T) {
	a := NewLexicon(nil)
	b := NewLexicon(nil)

	if strings.Join(a.ordered, "|") != strings.Join(b.ordered, "|") {
		t.Error("two lexicons built from the same inputs differ in alias order")
	}
}
