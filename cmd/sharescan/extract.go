package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reprolab/sharescan/internal/document"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Extract reproducibility metadata from a single PDF",
	Long: `Extract everything the pipeline can see in one PDF: DOI, acceptance
date, sharing keywords, and the first author affiliation line with its
inferred country. Useful for debugging why a document did or did not
resolve during a batch run.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	extractor, cleanup := newExtractor(cfg)
	defer cleanup()

	res := extractor.Extract(document.OpenPDF(args[0]))

	if humanOutput {
		fmt.Printf("path:        %s\n", res.Path)
		fmt.Printf("identifier:  %s\n", res.Identifier)
		if !res.Accepted.IsZero() {
			fmt.Printf("accepted:    %s\n", res.Accepted.Format("2006-01-02"))
		} else {
			fmt.Printf("accepted:    (none)\n")
		}
		fmt.Printf("keywords:    %s\n", strings.Join(res.Keywords, ", "))
		fmt.Printf("country:     %s\n", res.AffiliationCountry)
		fmt.Printf("affiliation: %s\n", res.AffiliationLine)
	} else {
		outputJSON(res)
	}
	return nil
}
