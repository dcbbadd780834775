package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/reprolab/sharescan/internal/docindex"
)

var indexRoot string

func init() {
	indexCmd.Flags().StringVar(&indexRoot, "root", "", "PDF directory (default pdf_root from config)")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Print the DOI -> PDF path index",
	Long: `Build the DOI index over the PDF corpus and print it. Documents are
consumed in sorted path order and the first document wins for any DOI;
later duplicates are reported separately.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

// DuplicateEntry reports a PDF whose DOI was already claimed.
type DuplicateEntry struct {
	Identifier string `json:"identifier"`
	Kept       string `json:"kept"`
	Skipped    string `json:"skipped"`
}

// IndexResponse is the printed index.
type IndexResponse struct {
	Count       int               `json:"count"`
	Identifiers map[string]string `json:"identifiers"`
	Duplicates  []DuplicateEntry  `json:"duplicates,omitempty"`
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	root := resolvePDFRoot(cfg, indexRoot)

	docs := loadCorpus(root)
	idx, dups := docindex.Build(docs, cfg.MaxPagesIdentifier)

	resp := IndexResponse{Count: idx.Len(), Identifiers: idx.Paths()}
	for _, d := range dups {
		resp.Duplicates = append(resp.Duplicates, DuplicateEntry{
			Identifier: d.Identifier,
			Kept:       d.Kept,
			Skipped:    d.Skipped,
		})
	}

	if humanOutput {
		ids := make([]string, 0, len(resp.Identifiers))
		for id := range resp.Identifiers {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("%s  %s\n", id, resp.Identifiers[id])
		}
		fmt.Printf("\n%d identifiers, %d duplicates\n", resp.Count, len(resp.Duplicates))
	} else {
		outputJSON(resp)
	}
	return nil
}
