package contact

import "time"

// Columns is the canonical field order for cleaned contact CSV output.
var Columns = []string{"name", "email", "phone", "company"}

// Contact is a single cleaned contact record. Empty strings represent
// fields that were absent or emptied by cleaning; no field is ever nil.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// Stats counts data-quality issues across one cleaning run. Counters are
// only ever incremented, once per input record, during the tally pass.
// A missing counter and its matching invalid counter are mutually
// exclusive for any single record.
type Stats struct {
	Total          int
	MissingName    int
	MissingEmail   int
	InvalidEmail   int
	MissingPhone   int
	InvalidPhone   int
	MissingCompany int
}

// Result contains the final outcome of a cleaning run.
type Result struct {
	RunID             string
	Stats             Stats
	Contacts          []Contact // deduplicated, in output order
	RowsAfterDedup    int
	DuplicatesRemoved int
	CleanedPath       string
	ReportPath        string
	Duration          time.Duration
}
