// Package docindex builds an identifier -> document mapping over a corpus.
package docindex

import (
	"github.com/reprolab/sharescan/internal/document"
	"github.com/reprolab/sharescan/internal/doi"
)

// Duplicate records a later document whose identifier was already claimed
// by an earlier one. Duplicates are skipped, not errors; callers log them.
type Duplicate struct {
	Identifier string
	Kept       string // path of the document that won
	Skipped    string // path of the document that was skipped
}

// Index maps extracted identifiers to their documents. Built once per run
// from a corpus snapshot and read-only thereafter, so concurrent lookups
// need no locking.
type Index struct {
	byID map[string]document.Document
}

// Build extracts an identifier from the first maxPages pages of each
// document and indexes it. Documents are consumed in the given order and
// the first document wins for any identifier; later documents with the
// same identifier are reported as duplicates. Documents without an
// identifier are excluded.
func Build(docs []document.Document, maxPages int) (*Index, []Duplicate) {
	idx := &Index{byID: make(map[string]document.Document)}
	var dups []Duplicate

	for _, d := range docs {
		id := doi.Extract(document.Text(d, maxPages))
		if id == "" {
			continue
		}
		if kept, ok := idx.byID[id]; ok {
			dups = append(dups, Duplicate{Identifier: id, Kept: kept.Path(), Skipped: d.Path()})
			continue
		}
		idx.byID[id] = d
	}

	return idx, dups
}

// Lookup returns the document indexed under id.
func (x *Index) Lookup(id string) (document.Document, bool) {
	d, ok := x.byID[id]
	return d, ok
}

// Len returns the number of indexed identifiers.
func (x *Index) Len() int {
	return len(x.byID)
}

// Paths returns identifier -> document path, for reporting.
func (x *Index) Paths() map[string]string {
	out := make(map[string]string, len(x.byID))
	for id, d := range x.byID {
		out[id] = d.Path()
	}
	return out
}
