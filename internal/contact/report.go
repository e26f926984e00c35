package contact

import (
	"fmt"
	"strings"
)

// Rows converts contacts to CSV rows, header first, in the canonical
// name,email,phone,company column order.
func Rows(contacts []Contact) [][]string {
	rows := make([][]string, 0, len(contacts)+1)
	rows = append(rows, Columns)
	for _, c := range contacts {
		rows = append(rows, []string{c.Name, c.Email, c.Phone, c.Company})
	}
	return rows
}

// RenderReport formats the plain-text cleaning report.
//
// The layout is stable: title, separator, total_rows, rows_after_dedup,
// duplicates_removed, then the quality counters in a fixed order.
func RenderReport(stats Stats, rowsAfterDedup, duplicatesRemoved int) string {
	var b strings.Builder

	b.WriteString("CLEANING REPORT\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	fmt.Fprintf(&b, "total_rows: %d\n", stats.Total)
	fmt.Fprintf(&b, "rows_after_dedup: %d\n", rowsAfterDedup)
	fmt.Fprintf(&b, "duplicates_removed: %d\n", duplicatesRemoved)
	fmt.Fprintf(&b, "missing_name: %d\n", stats.MissingName)
	fmt.Fprintf(&b, "missing_email: %d\n", stats.MissingEmail)
	fmt.Fprintf(&b, "invalid_email: %d\n", stats.InvalidEmail)
	fmt.Fprintf(&b, "missing_phone: %d\n", stats.MissingPhone)
	fmt.Fprintf(&b, "invalid_phone: %d\n", stats.InvalidPhone)
	fmt.Fprintf(&b, "missing_company: %d\n", stats.MissingCompany)

	return b.String()
}
