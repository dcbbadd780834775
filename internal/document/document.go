// Package document provides page-indexed text access to scanned papers.
//
// A Document is immutable once read: its pages are produced lazily on
// first access and cached. Unreadable inputs degrade to an empty page
// sequence rather than erroring, so downstream extractors only ever see
// "nothing found".
package document

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Document is an opaque source of page-indexed text.
type Document interface {
	// Path returns the stable locator of the document.
	Path() string
	// PageTexts returns the text of up to maxPages pages, in page order.
	// maxPages <= 0 means all pages. Unreadable documents return an empty
	// slice, never an error.
	PageTexts(maxPages int) []string
}

// Text joins the first maxPages page texts with newlines.
func Text(d Document, maxPages int) string {
	return strings.Join(d.PageTexts(maxPages), "\n")
}

// Stem returns the base filename without its extension, used for
// filename/title substring matching.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FindPDFs recursively collects *.pdf files under root (case-insensitive
// extension) in sorted path order. The fixed order is what makes corpus
// indexing and batch extraction deterministic across runs.
func FindPDFs(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// Mem is an in-memory Document for tests and pre-extracted text.
type Mem struct {
	DocPath string
	Pages   []string
}

// Path returns the document locator.
func (m *Mem) Path() string { return m.DocPath }

// PageTexts returns up to maxPages page texts.
func (m *Mem) PageTexts(maxPages int) []string {
	if maxPages <= 0 || maxPages > len(m.Pages) {
		return m.Pages
	}
	return m.Pages[:maxPages]
}
