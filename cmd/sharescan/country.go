package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reprolab/sharescan/internal/auditlog"
	"github.com/reprolab/sharescan/internal/country"
	"github.com/reprolab/sharescan/internal/docindex"
	"github.com/reprolab/sharescan/internal/document"
	"github.com/reprolab/sharescan/internal/workbook"
)

var (
	countryRoot     string
	countryWorkbook string
	countryAudit    string
)

func init() {
	countryCmd.Flags().StringVar(&countryRoot, "root", "", "PDF directory (default pdf_root from config)")
	countryCmd.Flags().StringVar(&countryWorkbook, "workbook", "", "Workbook to update (default workbook from config)")
	countryCmd.Flags().StringVar(&countryAudit, "audit", "", "Write a CSV audit log to this path")
	rootCmd.AddCommand(countryCmd)
}

var countryCmd = &cobra.Command{
	Use:   "country",
	Short: "Fill in first-author affiliation countries from the PDFs",
	Long: `Resolve each workbook row's DOI to a PDF, pick the first author
affiliation line from the pre-abstract text, and write the inferred
country into the "First author affiliation country" column (added when
missing). The workbook is saved with a timestamped backup.`,
	Args: cobra.NoArgs,
	RunE: runCountry,
}

// CountryResponse summarizes one affiliation-country run.
type CountryResponse struct {
	Status       string `json:"status"`
	Rows         int    `json:"rows"`
	Resolved     int    `json:"resolved"`
	NoIdentifier int    `json:"no_identifier"`
	NoPDF        int    `json:"no_pdf"`
	Unresolved   int    `json:"unresolved"`
	Duplicates   int    `json:"duplicates,omitempty"`
	Backup       string `json:"backup,omitempty"`
}

func runCountry(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	root := resolvePDFRoot(cfg, countryRoot)
	wbPath := resolveWorkbookPath(cfg, countryWorkbook)

	wb, err := workbook.Load(wbPath)
	if err != nil {
		exitWithError(ExitDataError, "loading workbook: %v", err)
	}

	docs := loadCorpus(root)
	lex := country.NewLexicon(cfg.Aliases())

	idx, dups := docindex.Build(docs, cfg.MaxPagesIdentifier)

	auditW, closeAudit := auditWriter(countryAudit)
	defer closeAudit()

	for _, d := range dups {
		audit(auditW, auditlog.Record{
			Identifier: d.Identifier,
			Path:       d.Skipped,
			Value:      d.Kept,
			Status:     auditlog.StatusAmbiguous,
		})
	}

	rows := wb.Rows()
	resp := CountryResponse{Status: "updated", Rows: len(rows), Duplicates: len(dups)}
	for _, row := range rows {
		if row.Identifier == "" {
			resp.NoIdentifier++
			audit(auditW, auditlog.Record{
				Sheet:  row.Sheet,
				Row:    row.Index,
				Status: auditlog.StatusNotFound,
			})
			continue
		}

		doc, ok := idx.Lookup(row.Identifier)
		if !ok {
			resp.NoPDF++
			audit(auditW, auditlog.Record{
				Sheet:      row.Sheet,
				Row:        row.Index,
				Identifier: row.Identifier,
				Status:     auditlog.StatusNotFound,
			})
			continue
		}

		pre := country.PreAbstract(document.Text(doc, cfg.MaxPagesAffiliation))
		_, c := lex.PickFirstAffiliation(pre)
		if c == "" {
			resp.Unresolved++
			audit(auditW, auditlog.Record{
				Sheet:      row.Sheet,
				Row:        row.Index,
				Identifier: row.Identifier,
				Path:       doc.Path(),
				Status:     auditlog.StatusParseFailed,
			})
			continue
		}

		sheet, ok := wb.Sheet(row.Sheet)
		if !ok {
			exitWithError(ExitDataError, "workbook lost sheet %s", row.Sheet)
		}
		col := workbook.EnsureColumn(sheet, workbook.ColCountry)
		workbook.SetCell(sheet, row.Index, col, c)

		resp.Resolved++
		audit(auditW, auditlog.Record{
			Sheet:      row.Sheet,
			Row:        row.Index,
			Identifier: row.Identifier,
			Path:       doc.Path(),
			Value:      c,
			Status:     auditlog.StatusOK,
		})
	}

	backup, err := wb.SaveWithBackup()
	if err != nil {
		exitWithError(ExitError, "saving workbook: %v", err)
	}
	resp.Backup = backup

	if humanOutput {
		fmt.Printf("Resolved %d/%d rows (%d without DOI, %d without PDF, %d unresolved)\n",
			resp.Resolved, resp.Rows, resp.NoIdentifier, resp.NoPDF, resp.Unresolved)
	} else {
		outputJSON(resp)
	}
	return nil
}
