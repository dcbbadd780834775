package document

import (
	"sync"

	"github.com/ledongthuc/pdf"
)

// PDF is a Document backed by a PDF file on disk. Pages are extracted on
// first access and cached; concurrent access is safe.
type PDF struct {
	path string

	once  sync.Once
	pages []string
}

// OpenPDF creates a lazily-read PDF document. The file is not touched
// until the first PageTexts call.
func OpenPDF(path string) *PDF {
	return &PDF{path: path}
}

// Path returns the file path.
func (p *PDF) Path() string { return p.path }

// PageTexts returns the text of up to maxPages pages. A file that cannot
// be opened yields no pages; a page that cannot be decoded yields an empty
// string so that page indices stay stable.
func (p *PDF) PageTexts(maxPages int) []string {
	p.once.Do(p.load)
	if maxPages <= 0 || maxPages > len(p.pages) {
		return p.pages
	}
	return p.pages[:maxPages]
}

func (p *PDF) load() {
	f, r, err := pdf.Open(p.path)
	if err != nil {
		return
	}
	defer f.Close()

	n := r.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	p.pages = pages
}
