// Package gender infers author gender from given names via a tiered
// lookup: curated table, statistical detector, optional remote oracle.
package gender

import (
	"context"
	"strings"
)

// Gender is the final classification of a given name.
type Gender string

// Final classifications.
const (
	Male    Gender = "male"
	Female  Gender = "female"
	Unknown Gender = "unknown"
)

// Category is the finer-grained classification produced by the
// statistical detector.
type Category string

// Detector categories.
const (
	CatMale         Category = "male"
	CatFemale       Category = "female"
	CatMostlyMale   Category = "mostly_male"
	CatMostlyFemale Category = "mostly_female"
	CatUnknown      Category = "unknown"
)

// Detector is a statistical name-gender classifier.
type Detector interface {
	Classify(name string) Category
}

// Oracle is a remote gender-inference capability. Implementations may
// block on network I/O; errors make the inferencer fall through.
type Oracle interface {
	ResolveGender(ctx context.Context, name string) (Gender, error)
}

// Inferencer resolves given names through its tiers in order. Every tier
// is optional; a nil tier and a tier miss behave the same way. The
// curated table is trusted absolutely when it has an entry.
type Inferencer struct {
	Table    Table
	Detector Detector
	Oracle   Oracle
}

// Infer resolves name to male, female, or unknown. Blank input
// short-circuits to unknown without consulting any tier. Only the first
// space-separated token is used ("Jean Pierre" -> "Jean").
func (inf *Inferencer) Infer(ctx context.Context, name string) Gender {
	first := firstToken(name)
	if first == "" {
		return Unknown
	}

	if g, ok := inf.Table.Lookup(first); ok && (g == Male || g == Female) {
		return g
	}

	if inf.Detector != nil {
		switch inf.Detector.Classify(first) {
		case CatMale, CatMostlyMale:
			return Male
		case CatFemale, CatMostlyFemale:
			return Female
		}
	}

	if inf.Oracle != nil {
		if g, err := inf.Oracle.ResolveGender(ctx, first); err == nil && (g == Male || g == Female) {
			return g
		}
	}

	return Unknown
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
