package docindex

import (
	"testing"

	"github.com/reprolab/sharescan/internal/document"
)

func TestBuild(t *testing.T) {
	docs := []document.Document{
		&document.Mem{DocPath: "a.pdf", Pages: []string{"doi: 10.1002/mrm.1"}},
		&document.Mem{DocPath: "b.pdf", Pages: []string{"no identifier here"}},
		&document.Mem{DocPath: "c.pdf", Pages: []string{"", "DOI 10.1002/MRM.2 on page two"}},
	}

	idx, dups := Build(docs, 2)

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
	if len(dups) != 0 {
		t.Fatalf("duplicates = %v, want none", dups)
	}

	d, ok := idx.Lookup("10.1002/mrm.1")
	if !ok || d.Path() != "a.pdf" {
		t.Errorf("Lookup(10.1002/mrm.1) = %v, %v; want a.pdf", d, ok)
	}

	// Identifiers are lower-cased at extraction time.
	d, ok = idx.Lookup("10.1002/mrm.2")
	if !ok || d.Path() != "c.pdf" {
		t.Errorf("Lookup(10.1002/mrm.2) = %v, %v; want c.pdf", d, ok)
	}
}

func TestBuildFirstDocumentWins(t *testing.T) {
	docs := []document.Document{
		&document.Mem{DocPath: "first.pdf", Pages: []string{"10.1002/mrm.9"}},
		&document.Mem{DocPath: "second.pdf", Pages: []string{"10.1002/mrm.9"}},
	}

	idx, dups := Build(docs, 1)

	d, ok := idx.Lookup("10.1002/mrm.9")
	if !ok || d.Path() != "first.pdf" {
		t.Errorf("Lookup() kept %v, want first.pdf", d)
	}
	if len(dups) != 1 {
		t.Fatalf("duplicates = %d, want 1", len(dups))
	}
	if dups[0].Kept != "first.pdf" || dups[0].Skipped != "second.pdf" {
		t.Errorf("duplicate = %+v", dups[0])
	}
}

func TestBuildRespectsPageLimit(t *testing.T) {
	docs := []document.Document{
		&document.Mem{DocPath: "late.pdf", Pages: []string{"first page", "second page", "10.1002/mrm.5 on page three"}},
	}

	idx, _ := Build(docs, 2)
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0: identifier beyond page limit must be ignored", idx.Len())
	}
}
