// Package report summarizes a reproducibility workbook: how many papers
// were tracked, how many matched sharing keywords, and how sharing,
// countries, and author genders break down.
package report

import (
	"sort"
	"strings"

	"github.com/reprolab/sharescan/internal/workbook"
)

// Summary aggregates one workbook.
type Summary struct {
	Papers          int `json:"papers"`
	KeywordsMatched int `json:"keywords_matched"`
	FalsePositives  int `json:"false_positives"`
	SharedCode      int `json:"shared_code"`
	SharedData      int `json:"shared_data"`

	ByCountry     map[string]int `json:"by_country,omitempty"`
	FirstGender   map[string]int `json:"first_gender,omitempty"`
	LastGender    map[string]int `json:"last_gender,omitempty"`
	PapersByMonth map[string]int `json:"papers_by_month,omitempty"`
}

// yes reports whether a hand-curated cell records an affirmative.
func yes(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

// Build walks every sheet of the workbook and tallies the summary.
// Counting matches the row-iteration order rule: the twelve month sheets
// then the overflow sheet, data rows starting below the header.
func Build(wb *workbook.Workbook) Summary {
	s := Summary{
		ByCountry:     make(map[string]int),
		FirstGender:   make(map[string]int),
		LastGender:    make(map[string]int),
		PapersByMonth: make(map[string]int),
	}

	sheets := append(append([]string{}, workbook.MonthSheets...), workbook.OverflowSheet)
	for _, name := range sheets {
		sheet, ok := wb.Sheet(name)
		if !ok {
			continue
		}
		header := workbook.HeaderIndex(sheet)
		col := func(row int, name string) string {
			i, ok := header[name]
			if !ok {
				return ""
			}
			return workbook.Cell(sheet, row, i)
		}

		for row := 2; ; row++ {
			filename := col(row, workbook.ColFilename)
			link := col(row, workbook.ColLink)
			if filename == "" && link == "" {
				break
			}

			s.Papers++
			s.PapersByMonth[name]++
			if col(row, workbook.ColKeywords) != "" {
				s.KeywordsMatched++
			}
			if yes(col(row, workbook.ColFalsePositive)) {
				s.FalsePositives++
			}
			if yes(col(row, workbook.ColSharedCode)) {
				s.SharedCode++
			}
			if yes(col(row, workbook.ColSharedData)) {
				s.SharedData++
			}
			if c := strings.TrimSpace(col(row, workbook.ColCountry)); c != "" {
				s.ByCountry[c]++
			}
			if g := strings.TrimSpace(col(row, workbook.ColFirstGender)); g != "" {
				s.FirstGender[g]++
			}
			if g := strings.TrimSpace(col(row, workbook.ColLastGender)); g != "" {
				s.LastGender[g]++
			}
		}
	}

	return s
}

// TopCountries returns the country tallies sorted by count descending,
// ties broken alphabetically. n <= 0 returns all.
func (s Summary) TopCountries(n int) []CountryCount {
	counts := make([]CountryCount, 0, len(s.ByCountry))
	for country, count := range s.ByCountry {
		counts = append(counts, CountryCount{Country: country, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Country < counts[j].Country
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// CountryCount is one entry of a ranked country tally.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}
