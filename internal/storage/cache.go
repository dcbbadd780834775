// Package storage persists extraction results in SQLite so that reruns
// over a large PDF corpus skip documents already processed.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/reprolab/sharescan/internal/extract"
)

// Cache is a SQLite-backed extraction cache keyed by document path.
// It implements extract.Cache.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS extractions (
			path TEXT PRIMARY KEY,
			identifier TEXT,
			accepted TEXT,
			affiliation_country TEXT,
			affiliation_line TEXT,
			keywords_json TEXT,
			scanned_at INTEGER NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached result for a document path.
func (c *Cache) Get(path string) (extract.Result, bool, error) {
	var (
		r            extract.Result
		accepted     string
		keywordsJSON string
	)
	err := c.db.QueryRow(`
		SELECT path, identifier, accepted, affiliation_country, affiliation_line, keywords_json
		FROM extractions WHERE path = ?`, path,
	).Scan(&r.Path, &r.Identifier, &accepted, &r.AffiliationCountry, &r.AffiliationLine, &keywordsJSON)
	if err == sql.ErrNoRows {
		return extract.Result{}, false, nil
	}
	if err != nil {
		return extract.Result{}, false, fmt.Errorf("querying cache: %w", err)
	}

	if accepted != "" {
		d, err := time.Parse("2006-01-02", accepted)
		if err != nil {
			return extract.Result{}, false, fmt.Errorf("cache holds bad date %q: %w", accepted, err)
		}
		r.Accepted = d
	}
	if keywordsJSON != "" {
		if err := json.Unmarshal([]byte(keywordsJSON), &r.Keywords); err != nil {
			return extract.Result{}, false, fmt.Errorf("cache holds bad keywords: %w", err)
		}
	}

	return r, true, nil
}

// Put stores an extraction result, replacing any previous entry for the
// same path.
func (c *Cache) Put(path string, r extract.Result) error {
	accepted := ""
	if !r.Accepted.IsZero() {
		accepted = r.Accepted.Format("2006-01-02")
	}

	keywordsJSON := ""
	if len(r.Keywords) > 0 {
		data, err := json.Marshal(r.Keywords)
		if err != nil {
			return fmt.Errorf("encoding keywords: %w", err)
		}
		keywordsJSON = string(data)
	}

	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO extractions
			(path, identifier, accepted, affiliation_country, affiliation_line, keywords_json, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		path, r.Identifier, accepted, r.AffiliationCountry, r.AffiliationLine, keywordsJSON,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("storing extraction: %w", err)
	}
	return nil
}

// Len returns the number of cached extractions.
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM extractions").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}
