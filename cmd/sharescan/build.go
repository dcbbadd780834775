package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/reprolab/sharescan/internal/auditlog"
	"github.com/reprolab/sharescan/internal/crossref"
	"github.com/reprolab/sharescan/internal/document"
	"github.com/reprolab/sharescan/internal/gender"
	"github.com/reprolab/sharescan/internal/workbook"
)

var (
	buildRoot     string
	buildWorkbook string
	buildAudit    string
	buildMove     bool
	buildGenders  bool
)

func init() {
	buildCmd.Flags().StringVar(&buildRoot, "root", "", "PDF directory (default pdf_root from config)")
	buildCmd.Flags().StringVar(&buildWorkbook, "workbook", "", "Output workbook path (default workbook from config)")
	buildCmd.Flags().StringVar(&buildAudit, "audit", "", "Write a CSV audit log to this path")
	buildCmd.Flags().BoolVar(&buildMove, "move", false, "Move PDFs into per-month folders under the root")
	buildCmd.Flags().BoolVar(&buildGenders, "genders", false, "Resolve author genders from Crossref metadata")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a month-sheet workbook from a PDF corpus",
	Long: `Build a fresh workbook from a folder of PDFs.

Every PDF is parsed for a DOI and an "Accepted: <date>" statement. Papers
land on the sheet of their acceptance month; papers without a parseable
date land on the overflow sheet. With --genders, each DOI is resolved via
Crossref and the first and last authors' given names run through the
gender inferencer. With --move, PDFs are physically sorted into
per-month folders under the root.

Examples:
  sharescan build --root ~/pdfs --workbook papers.xlsx
  sharescan build --genders --move --audit build_log.csv`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

// BuildResponse summarizes one build run.
type BuildResponse struct {
	Status   string `json:"status"`
	Workbook string `json:"workbook"`
	Papers   int    `json:"papers"`
	Dated    int    `json:"dated"`
	Moved    int    `json:"moved,omitempty"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := mustLoadConfig()
	root := resolvePDFRoot(cfg, buildRoot)
	outPath := resolveWorkbookPath(cfg, buildWorkbook)
	ctx := cmd.Context()

	docs := loadCorpus(root)
	extractor, cleanup := newExtractor(cfg)
	defer cleanup()

	results, err := extractor.ExtractAll(ctx, docs, cfg.Workers)
	if err != nil {
		exitWithError(ExitError, "extracting: %v", err)
	}

	wb, err := workbook.New(outPath)
	if err != nil {
		exitWithError(ExitError, "creating workbook: %v", err)
	}

	auditW, closeAudit := auditWriter(buildAudit)
	defer closeAudit()

	var (
		inferencer *gender.Inferencer
		cr         *crossref.Client
	)
	if buildGenders {
		inferencer = newGenderInferencer(cfg)
		cr = crossref.NewClient(crossref.WithMailto(cfg.CrossrefMailto))
	}

	resp := BuildResponse{Status: "built", Workbook: outPath, Papers: len(results)}
	for _, res := range results {
		sheet := workbook.MonthSheetFor(res.Accepted)
		row := map[string]string{
			workbook.ColFilename: document.Stem(res.Path),
			workbook.ColMonth:    workbook.MonthCellValue(res.Accepted),
		}
		if res.Identifier != "" {
			row[workbook.ColLink] = "https://doi.org/" + res.Identifier
		}

		status := auditlog.StatusOK
		if res.Accepted.IsZero() {
			status = auditlog.StatusParseFailed
		} else {
			resp.Dated++
		}

		if buildGenders && res.Identifier != "" {
			if work, err := cr.WorkByDOI(ctx, res.Identifier); err == nil {
				if a, ok := work.FirstAuthor(); ok {
					row[workbook.ColFirstGender] = genderCell(inferencer.Infer(ctx, a.Given))
				}
				if a, ok := work.LastAuthor(); ok {
					row[workbook.ColLastGender] = genderCell(inferencer.Infer(ctx, a.Given))
				}
			} else {
				warn("crossref %s: %v", res.Identifier, err)
			}
		}

		if err := wb.Append(sheet, row); err != nil {
			exitWithError(ExitError, "appending to %s: %v", sheet, err)
		}
		audit(auditW, auditlog.Record{
			Sheet:      sheet,
			Identifier: res.Identifier,
			Path:       res.Path,
			Value:      workbook.MonthCellValue(res.Accepted),
			Status:     status,
		})

		if buildMove {
			moved, err := moveIntoMonth(root, res.Path, sheet)
			if err != nil {
				warn("moving %s: %v", res.Path, err)
			} else if moved {
				resp.Moved++
			}
		}
	}

	if err := wb.Save(); err != nil {
		exitWithError(ExitError, "saving workbook: %v", err)
	}

	if humanOutput {
		fmt.Printf("Built %s: %d papers, %d with acceptance dates\n", outPath, resp.Papers, resp.Dated)
		if buildMove {
			fmt.Printf("Moved %d PDFs into month folders\n", resp.Moved)
		}
	} else {
		outputJSON(resp)
	}
	return nil
}

// genderCell maps an inference outcome to a workbook cell value; unknown
// stays blank for hand curation.
func genderCell(g gender.Gender) string {
	if g == gender.Unknown {
		return ""
	}
	return string(g)
}

// moveIntoMonth moves a PDF into root/<sheet>/, creating the folder. A
// file already in its month folder is left alone.
func moveIntoMonth(root, path, sheet string) (bool, error) {
	dir := filepath.Join(root, sheet)
	if filepath.Dir(path) == dir {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	if err := os.Rename(path, filepath.Join(dir, filepath.Base(path))); err != nil {
		return false, err
	}
	return true, nil
}
