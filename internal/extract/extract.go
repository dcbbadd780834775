// Package extract runs the per-document extraction pipeline and assembles
// results into ExtractionResult values.
package extract

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reprolab/sharescan/internal/accept"
	"github.com/reprolab/sharescan/internal/country"
	"github.com/reprolab/sharescan/internal/document"
	"github.com/reprolab/sharescan/internal/doi"
	"github.com/reprolab/sharescan/internal/keyword"
)

// Result holds everything extracted from one document. Fields are
// independently optional: a missing identifier says nothing about the
// date or country. Zero time means no acceptance date was found.
type Result struct {
	Path               string    `json:"path"`
	Identifier         string    `json:"identifier,omitempty"`
	Accepted           time.Time `json:"accepted,omitempty"`
	Keywords           []string  `json:"keywords,omitempty"`
	AffiliationCountry string    `json:"affiliation_country,omitempty"`
	AffiliationLine    string    `json:"affiliation_line,omitempty"`
}

// Cache stores extraction results between runs, keyed by document path.
// Implementations must treat a miss and an error the same way callers do:
// as "extract again".
type Cache interface {
	Get(path string) (Result, bool, error)
	Put(path string, r Result) error
}

// Extractor runs the field extractors over documents. The lexicon and
// term list are injected, immutable, and shared safely across goroutines.
type Extractor struct {
	Lexicon *country.Lexicon
	Terms   []keyword.Term

	// Page limits per concern; zero means DefaultMaxPages applies.
	MaxPagesIdentifier  int
	MaxPagesAffiliation int
	MaxPagesAccepted    int

	// Cache, when set, short-circuits extraction for known paths.
	Cache Cache
}

// DefaultMaxPages is how many leading pages the identifier, affiliation,
// and date extractors consult when no explicit limit is configured. The
// keyword scanner always reads every page.
const DefaultMaxPages = 2

// DefaultMaxPagesAccepted is the default page limit for the acceptance
// date, which can sit below the first-page fold.
const DefaultMaxPagesAccepted = 3

// Extract runs all field extractors over one document. Unreadable
// documents yield a Result with only the path set; extraction never
// fails.
func (e *Extractor) Extract(doc document.Document) Result {
	if e.Cache != nil {
		if r, ok, err := e.Cache.Get(doc.Path()); err == nil && ok {
			return r
		}
	}

	r := Result{Path: doc.Path()}

	r.Identifier = doi.Extract(document.Text(doc, limit(e.MaxPagesIdentifier, DefaultMaxPages)))

	if d, ok := accept.Parse(document.Text(doc, limit(e.MaxPagesAccepted, DefaultMaxPagesAccepted))); ok {
		r.Accepted = d
	}

	if len(e.Terms) > 0 {
		r.Keywords = keyword.Scan(doc, e.Terms)
	}

	if e.Lexicon != nil {
		pre := country.PreAbstract(document.Text(doc, limit(e.MaxPagesAffiliation, DefaultMaxPages)))
		r.AffiliationLine, r.AffiliationCountry = e.Lexicon.PickFirstAffiliation(pre)
	}

	if e.Cache != nil {
		_ = e.Cache.Put(doc.Path(), r) // cache failures never fail extraction
	}

	return r
}

// ExtractAll extracts every document with up to workers goroutines.
// Results come back indexed by input position, so downstream matching
// sees the same deterministic order regardless of completion order.
// Per-document work is independent; one unreadable document cannot
// affect the others.
func (e *Extractor) ExtractAll(ctx context.Context, docs []document.Document, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, d := range docs {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Extract(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func limit(configured, fallback int) int {
	if configured > 0 {
		return configured
	}
	return fallback
}
