// Package workbook reads and updates the OSF-style reproducibility
// workbook (January..December sheets plus an overflow sheet).
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v2"

	"github.com/reprolab/sharescan/internal/doi"
	"github.com/reprolab/sharescan/internal/match"
)

// Workbook wraps an xlsx file with schema-aware helpers.
type Workbook struct {
	file *xlsx.File
	path string
}

// New creates an empty workbook at path with all month sheets, the
// overflow sheet, and header rows. Nothing is written until Save.
func New(path string) (*Workbook, error) {
	f := xlsx.NewFile()
	for _, name := range append(append([]string{}, MonthSheets...), OverflowSheet) {
		sheet, err := f.AddSheet(name)
		if err != nil {
			return nil, fmt.Errorf("adding sheet %s: %w", name, err)
		}
		header := sheet.AddRow()
		for _, col := range Columns {
			header.AddCell().Value = col
		}
	}
	return &Workbook{file: f, path: path}, nil
}

// Load opens an existing workbook.
func Load(path string) (*Workbook, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	return &Workbook{file: f, path: path}, nil
}

// Path returns the workbook's file path.
func (w *Workbook) Path() string { return w.path }

// Save writes the workbook back to its path.
func (w *Workbook) Save() error {
	if err := w.file.Save(w.path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// SaveWithBackup copies the existing file to a timestamped sibling before
// saving, and returns the backup path ("" when there was nothing to back
// up).
func (w *Workbook) SaveWithBackup() (string, error) {
	backup := ""
	if data, err := os.ReadFile(w.path); err == nil {
		ext := filepath.Ext(w.path)
		stamp := time.Now().Format("20060102_150405")
		backup = strings.TrimSuffix(w.path, ext) + ".backup_" + stamp + ext
		if err := os.WriteFile(backup, data, 0644); err != nil {
			return "", fmt.Errorf("writing workbook backup: %w", err)
		}
	}
	return backup, w.Save()
}

// Sheet returns the named sheet.
func (w *Workbook) Sheet(name string) (*xlsx.Sheet, bool) {
	s, ok := w.file.Sheet[name]
	return s, ok
}

// SheetNames lists the workbook's sheets in file order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.file.Sheets))
	for i, s := range w.file.Sheets {
		names[i] = s.Name
	}
	return names
}

// HeaderIndex maps header names to 0-based column indices for a sheet.
func HeaderIndex(sheet *xlsx.Sheet) map[string]int {
	out := make(map[string]int)
	if len(sheet.Rows) == 0 {
		return out
	}
	for i, cell := range sheet.Rows[0].Cells {
		if v := strings.TrimSpace(cell.String()); v != "" {
			out[v] = i
		}
	}
	return out
}

// EnsureColumn returns the 0-based index of the named header column,
// appending it to the header row when missing.
func EnsureColumn(sheet *xlsx.Sheet, name string) int {
	if idx, ok := HeaderIndex(sheet)[name]; ok {
		return idx
	}
	if len(sheet.Rows) == 0 {
		sheet.AddRow()
	}
	header := sheet.Rows[0]
	header.AddCell().Value = name
	return len(header.Cells) - 1
}

// Cell returns the value of the cell at 1-based row and 0-based column,
// or "" when the cell does not exist.
func Cell(sheet *xlsx.Sheet, row, col int) string {
	if row < 1 || row > len(sheet.Rows) {
		return ""
	}
	cells := sheet.Rows[row-1].Cells
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col].String())
}

// SetCell writes value at 1-based row and 0-based column, growing the
// sheet as needed.
func SetCell(sheet *xlsx.Sheet, row, col int, value string) {
	for len(sheet.Rows) < row {
		sheet.AddRow()
	}
	r := sheet.Rows[row-1]
	for len(r.Cells) <= col {
		r.AddCell()
	}
	r.Cells[col].Value = value
}

// Append adds a data row to the named sheet, mapping values by header
// name. Headers absent from the sheet are ignored.
func (w *Workbook) Append(sheetName string, values map[string]string) error {
	sheet, ok := w.Sheet(sheetName)
	if !ok {
		return fmt.Errorf("workbook has no sheet %q", sheetName)
	}
	header := HeaderIndex(sheet)
	row := len(sheet.Rows) + 1
	for name, value := range values {
		col, ok := header[name]
		if !ok {
			continue
		}
		SetCell(sheet, row, col, value)
	}
	return nil
}

// Rows snapshots every data row the matcher needs, in the fixed iteration
// order: month sheets in calendar order, then the overflow sheet, then
// rows top to bottom. The identifier is parsed from the Link column; the
// title comes from the Filename column. Sheets without a Link column are
// skipped.
func (w *Workbook) Rows() []match.Row {
	var out []match.Row
	for _, name := range append(append([]string{}, MonthSheets...), OverflowSheet) {
		sheet, ok := w.Sheet(name)
		if !ok {
			continue
		}
		header := HeaderIndex(sheet)
		linkCol, ok := header[ColLink]
		if !ok {
			continue
		}
		titleCol, hasTitle := header[ColFilename]

		for r := 2; r <= len(sheet.Rows); r++ {
			row := match.Row{
				Sheet:      name,
				Index:      r,
				Identifier: doi.Extract(Cell(sheet, r, linkCol)),
			}
			if hasTitle {
				row.Title = Cell(sheet, r, titleCol)
			}
			out = append(out, row)
		}
	}
	return out
}

// MonthSheetFor returns the sheet name for an acceptance date; unknown
// dates go to the overflow sheet.
func MonthSheetFor(accepted time.Time) string {
	if accepted.IsZero() {
		return OverflowSheet
	}
	return MonthSheets[int(accepted.Month())-1]
}

// MonthCellValue renders an acceptance date as the first of its month
// ("2025-04-01"), or "" for unknown dates.
func MonthCellValue(accepted time.Time) string {
	if accepted.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-01", accepted.Year(), int(accepted.Month()))
}
