// Package main provides the sharescan CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configPath is the config file path; empty means the default location.
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sharescan",
	Short: "Reproducibility-metadata pipeline for scanned journal PDFs",
	Long: `sharescan extracts reproducibility metadata from a folder of scanned
journal PDFs: DOIs, acceptance dates, code/data sharing keywords, and
first-author affiliation countries. Extracted values are matched to the
rows of an OSF-style xlsx workbook with one sheet per acceptance month.

All commands output JSON by default for easy scripting; pass --human
for readable output. Every value written to the workbook can be traced
through the CSV audit log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/sharescan/config.yml)")
	rootCmd.Version = Version
}
