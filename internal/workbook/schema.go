package workbook

// Column headers of the OSF-style reproducibility workbook. The core
// reads Link and Filename and writes the keyword, country, gender, and
// month columns; the remaining columns are curated by hand.
const (
	ColFilename      = "Filename"
	ColMonth         = "Month"
	ColKeywords      = "Keywords Matched"
	ColDataStatement = "Data Availability Statement"
	ColFalsePositive = "False Positive?"
	ColLink          = "Link"
	ColSharedCode    = "Shared code?"
	ColSharedData    = "Shared data?"
	ColLanguages     = "Language(s)"
	ColNotes         = "Additional notes"
	ColFirstGender   = "First author gender"
	ColLastGender    = "Last author gender"

	// ColCountry is added by the country command when missing.
	ColCountry = "First author affiliation country"
)

// Columns is the header row of a freshly built workbook, in order.
var Columns = []string{
	ColFilename,
	ColMonth,
	ColKeywords,
	ColDataStatement,
	ColFalsePositive,
	ColLink,
	ColSharedCode,
	ColSharedData,
	ColLanguages,
	ColNotes,
	ColFirstGender,
	ColLastGender,
}

// MonthSheets are the twelve per-month sheets, in calendar order. This
// order, followed by OverflowSheet, is the fixed row iteration order the
// matcher depends on.
var MonthSheets = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// OverflowSheet holds papers whose acceptance month is unknown.
const OverflowSheet = "Sheet7"
