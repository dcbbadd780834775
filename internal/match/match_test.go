package match

import "testing"

func rows() []Row {
	return []Row{
		{Sheet: "January", Index: 2, Identifier: "10.1002/mrm.1", Title: "Deep learning reconstruction"},
		{Sheet: "January", Index: 3, Identifier: "10.1002/mrm.2", Title: "Smith 2024"},
		{Sheet: "February", Index: 2, Identifier: "", Title: "Quantitative susceptibility mapping"},
	}
}

func TestResolveByIdentifier(t *testing.T) {
	got := Resolve("10.1002/mrm.2", "whatever.pdf", rows())

	if got.Status != StatusOK {
		t.Fatalf("Status = %v, want ok (%s)", got.Status, got.Reason)
	}
	if got.Row.Sheet != "January" || got.Row.Index != 3 {
		t.Errorf("Row = %s!%d, want January!3", got.Row.Sheet, got.Row.Index)
	}
}

func TestResolveIdentifierCaseInsensitive(t *testing.T) {
	got := Resolve("10.1002/MRM.1", "x.pdf", rows())
	if got.Status != StatusOK || got.Row.Index != 2 {
		t.Errorf("Resolve() = %+v, want January!2", got)
	}
}

func TestResolveAmbiguousIdentifier(t *testing.T) {
	rs := []Row{
		{Sheet: "January", Index: 2, Identifier: "10.1002/mrm.1"},
		{Sheet: "March", Index: 5, Identifier: "10.1002/mrm.1"},
	}

	// Repeated runs must return the same first row and still flag the tie.
	for i := 0; i < 5; i++ {
		got := Resolve("10.1002/mrm.1", "", rs)
		if got.Status != StatusAmbiguous {
			t.Fatalf("Status = %v, want ambiguous", got.Status)
		}
		if got.Row.Sheet != "January" || got.Row.Index != 2 {
			t.Fatalf("Row = %s!%d, want the first row January!2", got.Row.Sheet, got.Row.Index)
		}
	}
}

func TestResolveTitleInFilename(t *testing.T) {
	got := Resolve("", "Smith 2024 MRM preprint.pdf", rows())

	if got.Status != StatusOK {
		t.Fatalf("Status = %v (%s), want ok", got.Status, got.Reason)
	}
	if got.Row.Index != 3 {
		t.Errorf("Row = %s!%d, want January!3", got.Row.Sheet, got.Row.Index)
	}
}

func TestResolveFilenameStemInTitle(t *testing.T) {
	rs := []Row{
		{Sheet: "January", Index: 2, Title: "The smith2024 acquisition study"},
	}

	got := Resolve("", "smith2024.pdf", rs)
	if got.Status != StatusOK || got.Row.Index != 2 {
		t.Errorf("Resolve() = %+v, want January!2 via stem tier", got)
	}
}

func TestResolveIdentifierTierNotRevisited(t *testing.T) {
	// The document's identifier matches nothing, but its filename does;
	// the identifier tier must fall through, not abort.
	got := Resolve("10.9999/nomatch", "Smith 2024.pdf", rows())
	if got.Status != StatusOK || got.Row.Index != 3 {
		t.Errorf("Resolve() = %+v, want fallback to title tier", got)
	}
}

func TestResolveNotFound(t *testing.T) {
	got := Resolve("", "unrelated.pdf", rows())
	if got.Status != StatusNotFound {
		t.Fatalf("Status = %v, want not_found", got.Status)
	}
	if got.Row != nil {
		t.Errorf("Row = %+v, want nil", got.Row)
	}
}

func TestResolveEmptyInputs(t *testing.T) {
	got := Resolve("", "", rows())
	if got.Status != StatusNotFound {
		t.Errorf("Status = %v, want not_found", got.Status)
	}
}

func TestResolveEarlierTierWins(t *testing.T) {
	rs := []Row{
		{Sheet: "January", Index: 2, Identifier: "", Title: "smith"},
		{Sheet: "January", Index: 3, Identifier: "10.1002/mrm.7", Title: ""},
	}

	// Identifier tier matches row 3 even though the title tier would have
	// matched row 2 first.
	got := Resolve("10.1002/mrm.7", "smith2024.pdf", rs)
	if got.Status != StatusOK || got.Row.Index != 3 {
		t.Errorf("Resolve() = %+v, want identifier tier row January!3", got)
	}
}
