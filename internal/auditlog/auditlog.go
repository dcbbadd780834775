// Package auditlog writes the per-decision CSV audit log.
//
// The log is the pipeline's primary observability surface: every
// extraction, match, or row-update decision lands in exactly one record,
// including the absent and failed outcomes.
package auditlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Status classifies one logged decision.
type Status string

// Decision statuses.
const (
	StatusOK          Status = "ok"
	StatusAmbiguous   Status = "ambiguous"
	StatusNotFound    Status = "not_found"
	StatusParseFailed Status = "parse_failed"
	StatusNoKeywords  Status = "no_keywords"
	StatusNoMatch     Status = "no_match"
)

// Record is one audit log row.
type Record struct {
	Sheet      string // sheet/section of the affected row, "" if none
	Row        int    // 1-based row index, 0 if none
	Identifier string
	Path       string // resolved document path, "" if none
	Value      string // resolved value written (country, keywords, ...), "" if none
	Status     Status
}

// header is the fixed CSV column order.
var header = []string{"sheet", "row", "identifier", "path", "value", "status"}

// Writer appends records to a CSV file.
type Writer struct {
	f *os.File
	w *csv.Writer
}

// Create opens path for writing and emits the header row.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating audit log: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing audit log header: %w", err)
	}
	return &Writer{f: f, w: w}, nil
}

// Append writes one record.
func (w *Writer) Append(r Record) error {
	row := ""
	if r.Row > 0 {
		row = strconv.Itoa(r.Row)
	}
	if err := w.w.Write([]string{r.Sheet, row, r.Identifier, r.Path, r.Value, string(r.Status)}); err != nil {
		return fmt.Errorf("writing audit log record: %w", err)
	}
	return nil
}

// Close flushes and closes the log file.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return fmt.Errorf("flushing audit log: %w", err)
	}
	return w.f.Close()
}
