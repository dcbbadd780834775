package keyword

import (
	"reflect"
	"testing"

	"github.com/reprolab/sharescan/internal/document"
)

func TestScanTermListOrder(t *testing.T) {
	terms := MustCompile([]string{"github", "osf"})
	doc := &document.Mem{
		DocPath: "paper.pdf",
		Pages: []string{
			"code is on github",
			"github and osf links here",
		},
	}

	got := Scan(doc, terms)
	want := []string{"github", "osf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		pages []string
		want  []string
	}{
		{
			name:  "no matches",
			terms: []string{"github", "osf"},
			pages: []string{"nothing relevant here"},
			want:  nil,
		},
		{
			name:  "case sensitive",
			terms: []string{"github"},
			pages: []string{"hosted on GitHub"},
			want:  nil,
		},
		{
			name:  "padded term avoids substrings",
			terms: []string{" git "},
			pages: []string{"a digital approach"},
			want:  nil,
		},
		{
			name:  "padded term matches word",
			terms: []string{" git "},
			pages: []string{"our git repository"},
			want:  []string{" git "},
		},
		{
			name:  "term recorded once across pages",
			terms: []string{"shared"},
			pages: []string{"data is shared", "code is shared too"},
			want:  []string{"shared"},
		},
		{
			name:  "output order follows term list not page order",
			terms: []string{"osf", "github"},
			pages: []string{"github first", "osf later"},
			want:  []string{"osf", "github"},
		},
		{
			name:  "duplicate term in list recorded once",
			terms: []string{"osf", "osf"},
			pages: []string{"osf.io/abcde"},
			want:  []string{"osf"},
		},
		{
			name:  "empty document",
			terms: []string{"github"},
			pages: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &document.Mem{DocPath: "x.pdf", Pages: tt.pages}
			got := Scan(doc, MustCompile(tt.terms))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompileInvalidTerm(t *testing.T) {
	if _, err := Compile([]string{"valid", "("}); err == nil {
		t.Error("Compile() expected error for invalid regexp")
	}
}

func TestDefaultTermsCompile(t *testing.T) {
	if _, err := Compile(DefaultTerms); err != nil {
		t.Errorf("DefaultTerms do not compile: %v", err)
	}
}
