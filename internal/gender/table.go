package gender

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a curated name -> gender lookup, keyed by lower-cased name.
type Table map[string]Gender

// Lookup finds a name in the table, case-insensitively.
func (t Table) Lookup(name string) (Gender, bool) {
	g, ok := t[strings.ToLower(name)]
	return g, ok
}

// LoadTable reads a curated names CSV. Two layouts are supported:
//
//   - wide: exactly the columns "male,female", each row listing one male
//     and/or one female name
//   - long: a "name" (or firstname/first_name/first) column plus a
//     "gender" (or sex) column with m/male/man or f/female/woman values
//
// Unrecognized gender values map to unknown. Header matching is
// case-insensitive.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening names table: %w", err)
	}
	defer f.Close()
	return ReadTable(f)
}

// ReadTable parses a curated names CSV from r. See LoadTable.
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return Table{}, nil
		}
		return nil, fmt.Errorf("reading names table header: %w", err)
	}

	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = strings.ToLower(strings.TrimSpace(h))
	}

	if maleIdx, femaleIdx := indexOf(fields, "male"), indexOf(fields, "female"); maleIdx >= 0 && femaleIdx >= 0 && len(fields) == 2 {
		return readWide(cr, maleIdx, femaleIdx)
	}

	nameIdx := firstIndexOf(fields, "name", "firstname", "first_name", "first")
	genderIdx := firstIndexOf(fields, "gender", "sex")
	if nameIdx < 0 || genderIdx < 0 {
		return nil, fmt.Errorf("names table: could not detect columns in header %v", header)
	}
	return readLong(cr, nameIdx, genderIdx)
}

func readWide(cr *csv.Reader, maleIdx, femaleIdx int) (Table, error) {
	out := Table{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading names table: %w", err)
		}
		if m := field(rec, maleIdx); m != "" {
			out[strings.ToLower(m)] = Male
		}
		if f := field(rec, femaleIdx); f != "" {
			out[strings.ToLower(f)] = Female
		}
	}
}

func readLong(cr *csv.Reader, nameIdx, genderIdx int) (Table, error) {
	out := Table{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading names table: %w", err)
		}
		name := field(rec, nameIdx)
		if name == "" {
			continue
		}
		switch strings.ToLower(field(rec, genderIdx)) {
		case "m", "male", "man":
			out[strings.ToLower(name)] = Male
		case "f", "female", "woman":
			out[strings.ToLower(name)] = Female
		default:
			out[strings.ToLower(name)] = Unknown
		}
	}
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func indexOf(fields []string, name string) int {
	for i, f := range fields {
		if f == name {
			return i
		}
	}
	return -1
}

func firstIndexOf(fields []string, names ...string) int {
	for _, n := range names {
		if i := indexOf(fields, n); i >= 0 {
			return i
		}
	}
	return -1
}
