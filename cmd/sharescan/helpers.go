package main

import (
	"github.com/reprolab/sharescan/internal/auditlog"
	"github.com/reprolab/sharescan/internal/config"
	"github.com/reprolab/sharescan/internal/country"
	"github.com/reprolab/sharescan/internal/document"
	"github.com/reprolab/sharescan/internal/extract"
	"github.com/reprolab/sharescan/internal/gender"
	"github.com/reprolab/sharescan/internal/storage"
)

// mustLoadConfig loads the config named by --config (or the default
// location), exiting on parse errors. A missing file is not an error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// resolvePDFRoot picks the PDF directory from the flag or the config.
func resolvePDFRoot(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	if cfg.PDFRoot != "" {
		return cfg.PDFRoot
	}
	exitWithError(ExitConfigError, "no PDF root: pass --root or set pdf_root in the config")
	return ""
}

// resolveWorkbookPath picks the workbook path from the flag or the config.
func resolveWorkbookPath(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	if cfg.Workbook != "" {
		return cfg.Workbook
	}
	exitWithError(ExitConfigError, "no workbook: pass --workbook or set workbook in the config")
	return ""
}

// loadCorpus opens every PDF under root, lazily, in sorted path order.
func loadCorpus(root string) []document.Document {
	paths, err := document.FindPDFs(root)
	if err != nil {
		exitWithError(ExitDataError, "scanning %s: %v", root, err)
	}
	docs := make([]document.Document, len(paths))
	for i, p := range paths {
		docs[i] = document.OpenPDF(p)
	}
	return docs
}

// newExtractor assembles the extractor from config. The returned cleanup
// closes the extraction cache when one is configured.
func newExtractor(cfg *config.Config) (*extract.Extractor, func()) {
	terms, err := cfg.Terms()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	e := &extract.Extractor{
		Lexicon:             country.NewLexicon(cfg.Aliases()),
		Terms:               terms,
		MaxPagesIdentifier:  cfg.MaxPagesIdentifier,
		MaxPagesAffiliation: cfg.MaxPagesAffiliation,
		MaxPagesAccepted:    cfg.MaxPagesAccepted,
	}

	cleanup := func() {}
	if cfg.CachePath != "" {
		cache, err := storage.OpenCache(cfg.CachePath)
		if err != nil {
			exitWithError(ExitDataError, "opening extraction cache: %v", err)
		}
		e.Cache = cache
		cleanup = func() { cache.Close() }
	}
	return e, cleanup
}

// newGenderInferencer assembles the tiered gender inferencer from config.
// Unconfigured tiers are simply absent.
func newGenderInferencer(cfg *config.Config) *gender.Inferencer {
	inf := &gender.Inferencer{}
	if cfg.NamesTable != "" {
		table, err := gender.LoadTable(cfg.NamesTable)
		if err != nil {
			exitWithError(ExitDataError, "loading names table: %v", err)
		}
		inf.Table = table
	}
	if cfg.NameFrequencies != "" {
		det, err := gender.LoadFreqDetector(cfg.NameFrequencies)
		if err != nil {
			exitWithError(ExitDataError, "loading name frequencies: %v", err)
		}
		inf.Detector = det
	}
	if cfg.UseGenderize {
		inf.Oracle = gender.NewGenderizeClient()
	}
	return inf
}

// auditWriter opens an audit log when path is set. The returned close
// function is safe to call either way.
func auditWriter(path string) (*auditlog.Writer, func()) {
	if path == "" {
		return nil, func() {}
	}
	w, err := auditlog.Create(path)
	if err != nil {
		exitWithError(ExitError, "creating audit log: %v", err)
	}
	return w, func() {
		if err := w.Close(); err != nil {
			warn("closing audit log: %v", err)
		}
	}
}

// audit appends one record when the log is enabled. Audit failures warn
// but never abort the run.
func audit(w *auditlog.Writer, r auditlog.Record) {
	if w == nil {
		return
	}
	if err := w.Append(r); err != nil {
		warn("audit log: %v", err)
	}
}
