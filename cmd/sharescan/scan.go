package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reprolab/sharescan/internal/auditlog"
	"github.com/reprolab/sharescan/internal/match"
	"github.com/reprolab/sharescan/internal/workbook"
)

var (
	scanRoot     string
	scanWorkbook string
	scanAudit    string
)

func init() {
	scanCmd.Flags().StringVar(&scanRoot, "root", "", "PDF directory (default pdf_root from config)")
	scanCmd.Flags().StringVar(&scanWorkbook, "workbook", "", "Workbook to update (default workbook from config)")
	scanCmd.Flags().StringVar(&scanAudit, "audit", "", "Write a CSV audit log to this path")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan PDFs for sharing keywords and update the workbook",
	Long: `Scan every PDF for code/data sharing keywords and write the hits into
the matching workbook row's "Keywords Matched" column.

Each PDF is matched to at most one row: first by DOI, then by the row
title appearing in the filename, then by the filename stem appearing in
the title. The workbook is saved with a timestamped backup of the
previous version.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

// ScanResponse summarizes one keyword-scan run.
type ScanResponse struct {
	Status     string `json:"status"`
	Papers     int    `json:"papers"`
	Matched    int    `json:"matched"`
	Ambiguous  int    `json:"ambiguous"`
	NoKeywords int    `json:"no_keywords"`
	Unmatched  int    `json:"unmatched"`
	Backup     string `json:"backup,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	root := resolvePDFRoot(cfg, scanRoot)
	wbPath := resolveWorkbookPath(cfg, scanWorkbook)

	wb, err := workbook.Load(wbPath)
	if err != nil {
		exitWithError(ExitDataError, "loading workbook: %v", err)
	}
	rows := wb.Rows()

	docs := loadCorpus(root)
	extractor, cleanup := newExtractor(cfg)
	defer cleanup()

	results, err := extractor.ExtractAll(cmd.Context(), docs, cfg.Workers)
	if err != nil {
		exitWithError(ExitError, "extracting: %v", err)
	}

	auditW, closeAudit := auditWriter(scanAudit)
	defer closeAudit()

	resp := ScanResponse{Status: "updated", Papers: len(results)}
	for _, res := range results {
		if len(res.Keywords) == 0 {
			resp.NoKeywords++
			audit(auditW, auditlog.Record{
				Identifier: res.Identifier,
				Path:       res.Path,
				Status:     auditlog.StatusNoKeywords,
			})
			continue
		}

		m := match.Resolve(res.Identifier, filepath.Base(res.Path), rows)
		if m.Status == match.StatusNotFound {
			resp.Unmatched++
			audit(auditW, auditlog.Record{
				Identifier: res.Identifier,
				Path:       res.Path,
				Value:      strings.Join(res.Keywords, ", "),
				Status:     auditlog.StatusNoMatch,
			})
			continue
		}

		sheet, ok := wb.Sheet(m.Row.Sheet)
		if !ok {
			exitWithError(ExitDataError, "workbook lost sheet %s", m.Row.Sheet)
		}
		col := workbook.EnsureColumn(sheet, workbook.ColKeywords)
		value := strings.Join(res.Keywords, ", ")
		workbook.SetCell(sheet, m.Row.Index, col, value)

		status := auditlog.StatusOK
		if m.Status == match.StatusAmbiguous {
			status = auditlog.StatusAmbiguous
			resp.Ambiguous++
		}
		resp.Matched++
		audit(auditW, auditlog.Record{
			Sheet:      m.Row.Sheet,
			Row:        m.Row.Index,
			Identifier: res.Identifier,
			Path:       res.Path,
			Value:      value,
			Status:     status,
		})
	}

	backup, err := wb.SaveWithBackup()
	if err != nil {
		exitWithError(ExitError, "saving workbook: %v", err)
	}
	resp.Backup = backup

	if humanOutput {
		fmt.Printf("Scanned %d PDFs: %d matched (%d ambiguous), %d without keywords, %d unmatched\n",
			resp.Papers, resp.Matched, resp.Ambiguous, resp.NoKeywords, resp.Unmatched)
	} else {
		outputJSON(resp)
	}
	return nil
}
