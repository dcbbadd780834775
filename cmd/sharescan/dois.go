package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/reprolab/sharescan/internal/crossref"
)

// DefaultISSN is Magnetic Resonance in Medicine, the journal the
// original survey tracked.
const DefaultISSN = "1522-2594"

var (
	doisISSN string
	doisOut  string
)

func init() {
	doisCmd.Flags().StringVar(&doisISSN, "issn", DefaultISSN, "Journal ISSN")
	doisCmd.Flags().StringVar(&doisOut, "out", "", "Write DOIs to this CSV file instead of stdout")
	rootCmd.AddCommand(doisCmd)
}

var doisCmd = &cobra.Command{
	Use:   "dois <year>",
	Short: "List a journal's DOIs for a publication year via Crossref",
	Long: `List every DOI the journal published in a year, following Crossref
cursor pagination to the end. The list is the ground truth to check a
scanned PDF corpus for completeness.

Examples:
  sharescan dois 2024
  sharescan dois 2024 --issn 1522-2594 --out mrm_2024.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runDois,
}

// DoisResponse is the JSON DOI listing.
type DoisResponse struct {
	ISSN  string   `json:"issn"`
	Year  int      `json:"year"`
	Count int      `json:"count"`
	DOIs  []string `json:"dois"`
}

func runDois(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	cfg := mustLoadConfig()

	year, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "invalid year %q", args[0])
	}

	client := crossref.NewClient(crossref.WithMailto(cfg.CrossrefMailto))
	dois, err := client.DOIsByYear(cmd.Context(), doisISSN, year)
	if err != nil {
		exitWithError(ExitError, "listing DOIs: %v", err)
	}

	if doisOut != "" {
		if err := writeDOIsCSV(doisOut, dois); err != nil {
			exitWithError(ExitError, "writing %s: %v", doisOut, err)
		}
	}

	if humanOutput {
		for _, d := range dois {
			fmt.Println(d)
		}
		fmt.Fprintf(os.Stderr, "%d DOIs for %s in %d\n", len(dois), doisISSN, year)
	} else {
		outputJSON(DoisResponse{ISSN: doisISSN, Year: year, Count: len(dois), DOIs: dois})
	}
	return nil
}

func writeDOIsCSV(path string, dois []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"doi"}); err != nil {
		return err
	}
	for _, d := range dois {
		if err := w.Write([]string{d}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
