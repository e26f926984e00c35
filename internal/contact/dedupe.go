package contact

import "github.com/google/uuid"

// Dedupe merges contacts that share a non-empty normalized email, keeping
// the more complete record. It returns the surviving contacts in
// first-seen order and the number of duplicates removed.
//
// A later duplicate replaces the stored record only when its completeness
// score is strictly greater; ties keep the earlier record. A replacement
// keeps the original record's position in the output.
//
// Contacts without an email are indexed under a fresh synthetic key, so
// they are never merged with anything, not even with each other.
func Dedupe(contacts []Contact) ([]Contact, int) {
	index := make(map[string]int, len(contacts))
	out := make([]Contact, 0, len(contacts))
	removed := 0

	for _, c := range contacts {
		key := c.Email
		if key == "" {
			key = "noemail-" + uuid.NewString()
		}

		pos, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, c)
			continue
		}

		if CompletenessScore(c) > CompletenessScore(out[pos]) {
			out[pos] = c
		}
		removed++
	}

	return out, removed
}
