package report

import (
	"path/filepath"
	"testing"

	"github.com/reprolab/sharescan/internal/workbook"
)

func buildTestWorkbook(t *testing.T) *workbook.Workbook {
	t.Helper()
	wb, err := workbook.New(filepath.Join(t.TempDir(), "papers.xlsx"))
	if err != nil {
		t.Fatal(err)
	}

	appendRow := func(sheet string, row map[string]string) {
		t.Helper()
		if err := wb.Append(sheet, row); err != nil {
			t.Fatal(err)
		}
	}

	appendRow("April", map[string]string{
		workbook.ColFilename:      "Paper A",
		workbook.ColKeywords:      "github, osf",
		workbook.ColSharedCode:    "Yes",
		workbook.ColSharedData:    "no",
		workbook.ColFirstGender:   "female",
		workbook.ColLastGender:    "male",
	})
	appendRow("April", map[string]string{
		workbook.ColFilename:      "Paper B",
		workbook.ColKeywords:      "github",
		workbook.ColFalsePositive: "yes",
	})
	appendRow("Sheet7", map[string]string{
		workbook.ColLink: "https://doi.org/10.1002/mrm.3",
	})

	for _, sheet := range []string{"April", "Sheet7"} {
		s, _ := wb.Sheet(sheet)
		col := workbook.EnsureColumn(s, workbook.ColCountry)
		workbook.SetCell(s, 2, col, "Canada")
	}
	s, _ := wb.Sheet("April")
	col := workbook.EnsureColumn(s, workbook.ColCountry)
	workbook.SetCell(s, 3, col, "Canada")

	return wb
}

func TestBuild(t *testing.T) {
	sum := Build(buildTestWorkbook(t))

	if sum.Papers != 3 {
		t.Errorf("Papers = %d, want 3", sum.Papers)
	}
	if sum.KeywordsMatched != 2 {
		t.Errorf("KeywordsMatched = %d, want 2", sum.KeywordsMatched)
	}
	if sum.FalsePositives != 1 {
		t.Errorf("FalsePositives = %d, want 1", sum.FalsePositives)
	}
	if sum.SharedCode != 1 || sum.SharedData != 0 {
		t.Errorf("shared = code %d data %d, want 1/0", sum.SharedCode, sum.SharedData)
	}
	if sum.ByCountry["Canada"] != 3 {
		t.Errorf("ByCountry[Canada] = %d, want 3", sum.ByCountry["Canada"])
	}
	if sum.FirstGender["female"] != 1 || sum.LastGender["male"] != 1 {
		t.Errorf("genders = %v / %v", sum.FirstGender, sum.LastGender)
	}
	if sum.PapersByMonth["April"] != 2 || sum.PapersByMonth["Sheet7"] != 1 {
		t.Errorf("PapersByMonth = %v", sum.PapersByMonth)
	}
}

func TestBuildEmptyWorkbook(t *testing.T) {
	wb, err := workbook.New(filepath.Join(t.TempDir(), "empty.xlsx"))
	if err != nil {
		t.Fatal(err)
	}
	sum := Build(wb)
	if sum.Papers != 0 || sum.KeywordsMatched != 0 {
		t.Errorf("empty workbook summary = %+v", sum)
	}
}

func TestTopCountries(t *testing.T) {
	sum := Summary{ByCountry: map[string]int{
		"Canada":        3,
		"United States": 3,
		"Germany":       5,
		"Japan":         1,
	}}

	got := sum.TopCountries(3)
	want := []CountryCount{
		{Country: "Germany", Count: 5},
		{Country: "Canada", Count: 3},
		{Country: "United States", Count: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("TopCountries(3) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopCountries[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if all := sum.TopCountries(0); len(all) != 4 {
		t.Errorf("TopCountries(0) = %d entries, want 4", len(all))
	}
}

func TestYes(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Yes", true},
		{"y", true},
		{" TRUE ", true},
		{"1", true},
		{"no", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		if got := yes(tt.in); got != tt.want {
			t.Errorf("yes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
