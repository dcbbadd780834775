package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/reprolab/sharescan/internal/extract"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("OpenCache() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCachePutGet(t *testing.T) {
	c := openTestCache(t)

	want := extract.Result{
		Path:               "/pdfs/a.pdf",
		Identifier:         "10.1002/mrm.1",
		Accepted:           time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
		Keywords:           []string{"github", "osf"},
		AffiliationCountry: "Canada",
		AffiliationLine:    "Department of Radiology, Montreal, Canada",
	}
	if err := c.Put(want.Path, want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := c.Get(want.Path)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() found nothing")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestCacheMiss(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get("/pdfs/unseen.pdf")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() reported a hit for an unseen path")
	}
}

func TestCacheAbsentFieldsRoundTrip(t *testing.T) {
	c := openTestCache(t)

	want := extract.Result{Path: "/pdfs/bare.pdf"}
	if err := c.Put(want.Path, want); err != nil {
		t.Fatal(err)
	}

	got, ok, err := c.Get(want.Path)
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if !got.Accepted.IsZero() {
		t.Errorf("Accepted = %v, want zero", got.Accepted)
	}
	if got.Keywords != nil {
		t.Errorf("Keywords = %v, want nil", got.Keywords)
	}
}

func TestCacheReplace(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("/pdfs/a.pdf", extract.Result{Path: "/pdfs/a.pdf", Identifier: "10.1/old"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("/pdfs/a.pdf", extract.Result{Path: "/pdfs/a.pdf", Identifier: "10.1/new"}); err != nil {
		t.Fatal(err)
	}

	got, _, err := c.Get("/pdfs/a.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if got.Identifier != "10.1/new" {
		t.Errorf("Identifier = %q, want 10.1/new", got.Identifier)
	}

	n, err := c.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
}

func TestCacheImplementsExtractCache(t *testing.T) {
	var _ extract.Cache = (*Cache)(nil)
}
