package contact

// validate.go provides data-quality predicates and the stats tally pass.
//
// Predicates never reject a record from the pipeline; invalid values are
// counted in Stats and flow through to the output unchanged.

import (
	"regexp"
	"strings"
)

// emailRegex is an intentionally permissive check: something before an @,
// something after it containing a dot. Anchored at the start only, so a
// valid prefix counts even with trailing garbage. Not RFC-compliant.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+`)

// IsValidEmail reports whether the address looks plausibly deliverable.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsValidUKPhone reports whether phone is all digits, starts with 0, and
// is 10 or 11 digits long.
func IsValidUKPhone(phone string) bool {
	if len(phone) < 10 || len(phone) > 11 {
		return false
	}
	if phone[0] != '0' {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// CompletenessScore counts how many of the four fields are non-empty
// (0-4). Higher score wins when duplicates are merged.
func CompletenessScore(c Contact) int {
	score := 0
	if c.Name != "" {
		score++
	}
	if c.Email != "" {
		score++
	}
	if c.Phone != "" {
		score++
	}
	if c.Company != "" {
		score++
	}
	return score
}

// Tally folds cleaned contacts into quality statistics in input order.
//
// A field is counted as missing OR invalid, never both: validity is only
// checked when the field is present.
func Tally(contacts []Contact) Stats {
	var stats Stats

	for _, c := range contacts {
		stats.Total++

		if c.Name == "" {
			stats.MissingName++
		}

		if c.Email == "" {
			stats.MissingEmail++
		} else if !IsValidEmail(c.Email) {
			stats.InvalidEmail++
		}

		if c.Phone == "" {
			stats.MissingPhone++
		} else if !IsValidUKPhone(c.Phone) {
			stats.InvalidPhone++
		}

		if c.Company == "" {
			stats.MissingCompany++
		}
	}

	return stats
}
