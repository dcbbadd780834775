package gender

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Classification thresholds for the frequency detector. A name is "male"
// when at least 95% of its recorded bearers are male, "mostly_male" at
// 60%, and symmetrically for female; anything closer to even is unknown.
const (
	strongThreshold = 0.95
	mostlyThreshold = 0.60
)

// FreqDetector classifies names by observed male/female bearer counts.
// The zero value classifies everything as unknown.
type FreqDetector struct {
	counts map[string][2]int // lower-cased name -> {male, female}
}

// NewFreqDetector builds a detector from explicit counts, for tests and
// embedded tables.
func NewFreqDetector(counts map[string][2]int) *FreqDetector {
	lower := make(map[string][2]int, len(counts))
	for k, v := range counts {
		lower[strings.ToLower(k)] = v
	}
	return &FreqDetector{counts: lower}
}

// LoadFreqDetector reads a "name,male,female" counts CSV (header row
// required, extra columns ignored).
func LoadFreqDetector(path string) (*FreqDetector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name frequencies: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return &FreqDetector{counts: map[string][2]int{}}, nil
		}
		return nil, fmt.Errorf("reading name frequencies header: %w", err)
	}

	counts := make(map[string][2]int)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading name frequencies: %w", err)
		}
		line++
		if len(rec) < 3 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		male, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("name frequencies line %d: %w", line, err)
		}
		female, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("name frequencies line %d: %w", line, err)
		}
		counts[strings.ToLower(strings.TrimSpace(rec[0]))] = [2]int{male, female}
	}

	return &FreqDetector{counts: counts}, nil
}

// Classify maps a name onto a detector category by bearer-count ratio.
func (d *FreqDetector) Classify(name string) Category {
	if d == nil || d.counts == nil {
		return CatUnknown
	}
	c, ok := d.counts[strings.ToLower(name)]
	if !ok {
		return CatUnknown
	}

	total := c[0] + c[1]
	if total == 0 {
		return CatUnknown
	}

	maleFrac := float64(c[0]) / float64(total)
	switch {
	case maleFrac >= strongThreshold:
		return CatMale
	case maleFrac >= mostlyThreshold:
		return CatMostlyMale
	case 1-maleFrac >= strongThreshold:
		return CatFemale
	case 1-maleFrac >= mostlyThreshold:
		return CatMostlyFemale
	default:
		return CatUnknown
	}
}
