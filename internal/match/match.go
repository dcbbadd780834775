// Package match resolves extracted documents to workbook rows.
//
// Resolution uses a strict tier order: identifier equality, then
// title-in-filename, then filename-stem-in-title. Each tier stops at the
// first eligible row under the fixed row iteration order (sheet order,
// then row order), so results are stable across runs. When a tier holds
// more than one equally-eligible row, the first is still used but the
// result is flagged ambiguous for audit. A tier is never revisited after
// a match is accepted, and later tiers are not inspected for competing
// candidates; cross-tier ambiguity is a documented limitation.
package match

import (
	"fmt"
	"strings"

	"github.com/reprolab/sharescan/internal/document"
)

// Row is the matcher's view of one dataset row. Rows come pre-snapshotted
// in the store's fixed iteration order.
type Row struct {
	Sheet      string // sheet name, opaque handle for the result
	Index      int    // 1-based row number within the sheet
	Identifier string // identifier parsed from the row's link field, "" if none
	Title      string // title or filename field, "" if none
}

// Status classifies a resolution outcome.
type Status string

// Resolution statuses.
const (
	StatusOK        Status = "ok"
	StatusAmbiguous Status = "ambiguous"
	StatusNotFound  Status = "not_found"
)

// Result is the outcome of resolving one document.
type Result struct {
	Row    *Row // nil when Status is StatusNotFound
	Status Status
	Reason string
}

// Resolve associates a document (by extracted identifier and/or filename)
// with at most one row. identifier may be empty; filename is the
// document's base filename (or full path, only the base is used).
func Resolve(identifier, filename string, rows []Row) Result {
	if identifier != "" {
		if r, ok := firstEligible(rows, func(row Row) bool {
			return row.Identifier != "" && strings.EqualFold(row.Identifier, identifier)
		}, "identifier"); ok {
			return r
		}
	}

	lowerName := strings.ToLower(filename)
	if filename != "" {
		if r, ok := firstEligible(rows, func(row Row) bool {
			return row.Title != "" && strings.Contains(lowerName, strings.ToLower(row.Title))
		}, "title in filename"); ok {
			return r
		}

		stem := strings.ToLower(document.Stem(filename))
		if r, ok := firstEligible(rows, func(row Row) bool {
			return row.Title != "" && strings.Contains(strings.ToLower(row.Title), stem)
		}, "filename in title"); ok {
			return r
		}
	}

	return Result{Status: StatusNotFound, Reason: "no tier yielded a candidate"}
}

// firstEligible scans rows in order and returns a result built from the
// first row satisfying eligible. The remaining rows are still counted so
// that same-tier ambiguity is reported.
func firstEligible(rows []Row, eligible func(Row) bool, tier string) (Result, bool) {
	var first *Row
	count := 0
	for i := range rows {
		if !eligible(rows[i]) {
			continue
		}
		count++
		if first == nil {
			first = &rows[i]
		}
	}

	if first == nil {
		return Result{}, false
	}
	if count > 1 {
		return Result{
			Row:    first,
			Status: StatusAmbiguous,
			Reason: fmt.Sprintf("%s tier matched %d rows, kept first", tier, count),
		}, true
	}
	return Result{Row: first, Status: StatusOK, Reason: tier}, true
}
