package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reprolab/sharescan/internal/report"
	"github.com/reprolab/sharescan/internal/workbook"
)

var reportWorkbook string

func init() {
	reportCmd.Flags().StringVar(&reportWorkbook, "workbook", "", "Workbook to summarize (default workbook from config)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize sharing statistics from a curated workbook",
	Long: `Tally the headline numbers of a curated workbook: papers tracked,
keyword matches, false positives, code and data sharing, and the
country and author-gender breakdowns.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	wbPath := resolveWorkbookPath(cfg, reportWorkbook)

	wb, err := workbook.Load(wbPath)
	if err != nil {
		exitWithError(ExitDataError, "loading workbook: %v", err)
	}

	sum := report.Build(wb)

	if humanOutput {
		fmt.Printf("Papers:           %d\n", sum.Papers)
		fmt.Printf("Keywords matched: %d\n", sum.KeywordsMatched)
		fmt.Printf("False positives:  %d\n", sum.FalsePositives)
		fmt.Printf("Shared code:      %d\n", sum.SharedCode)
		fmt.Printf("Shared data:      %d\n", sum.SharedData)
		if top := sum.TopCountries(10); len(top) > 0 {
			fmt.Println("\nTop countries:")
			for _, cc := range top {
				fmt.Printf("  %3d  %s\n", cc.Count, cc.Country)
			}
		}
	} else {
		outputJSON(sum)
	}
	return nil
}
