package models

// ReportType selects the report archetype. Its string value doubles as
// the name of the sheet tab the report rows are appended to.
type ReportType string

// The two supported report archetypes.
const (
	ArrestLog      ReportType = "Arrest Log"
	IncidentReport ReportType = "Incident Report"
)

// Placeholder strings written in place of optional row values.
const (
	NoSummaryPlaceholder = "No summary provided"
	NoImagePlaceholder   = "No image provided"
)

// Valid reports whether t is one of the supported report types.
func (t ReportType) Valid() bool {
	return t == ArrestLog || t == IncidentReport
}

// Prefix returns the case-number prefix for the report type.
func (t ReportType) Prefix() string {
	if t == IncidentReport {
		return "IR"
	}
	return "AL"
}

// Tab returns the sheet tab the report type persists to.
func (t ReportType) Tab() string {
	return string(t)
}

// OfficerColumn returns the zero-based column index that holds the
// officer name in the persisted row layout for the report type.
func (t ReportType) OfficerColumn() int {
	if t == IncidentReport {
		return 3
	}
	return 2
}
