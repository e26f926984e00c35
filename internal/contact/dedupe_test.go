package contact

import "testing"

func TestDedupe_NoDuplicates(t *testing.T) {
	contacts := []Contact{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com"},
	}

	out, removed := Dedupe(contacts)

	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Email != "a@example.com" || out[1].Email != "b@example.com" {
		t.Errorf("order not preserved: %+v", out)
	}
}

// A later duplicate with a strictly higher completeness score replaces
// the stored record, at the original record's position.
func TestDedupe_MoreCompleteReplaces(t *testing.T) {
	contacts := []Contact{
		{Name: "First", Email: "x@example.com"},
		{Name: "A", Email: "a@b.com"},
		{Name: "A", Email: "a@b.com", Phone: "07123456789"},
	}

	out, removed := Dedupe(contacts)

	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	// Replacement keeps the first-seen position (after x@example.com)
	if out[1].Email != "a@b.com" || out[1].Phone != "07123456789" {
		t.Errorf("out[1] = %+v, want the more complete a@b.com record", out[1])
	}
}

// Equal completeness keeps the earlier-seen record.
func TestDedupe_TieKeepsFirst(t *testing.T) {
	contacts := []Contact{
		{Name: "First", Email: "a@b.com"},
		{Name: "Second", Email: "a@b.com"},
	}

	out, removed := Dedupe(contacts)

	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].Name != "First" {
		t.Errorf("out[0].Name = %q, want %q", out[0].Name, "First")
	}
}

func TestDedupe_LessCompleteKept(t *testing.T) {
	contacts := []Contact{
		{Name: "Full", Email: "a@b.com", Phone: "07123456789", Company: "Acme"},
		{Name: "Sparse", Email: "a@b.com"},
	}

	out, removed := Dedupe(contacts)

	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if out[0].Name != "Full" {
		t.Errorf("out[0].Name = %q, want %q", out[0].Name, "Full")
	}
}

// Records without an email are never merged, even when every other field
// matches another emailless record.
func TestDedupe_EmaillessNeverMerged(t *testing.T) {
	contacts := []Contact{
		{Name: "Same", Phone: "07123456789"},
		{Name: "Same", Phone: "07123456789"},
		{Name: "Other"},
	}

	out, removed := Dedupe(contacts)

	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if len(out) != 3 {
		t.Errorf("len(out) = %d, want 3", len(out))
	}
}

// rows_after_dedup == distinct non-empty emails + emailless row count,
// and output length plus removals accounts for every input row.
func TestDedupe_CountInvariant(t *testing.T) {
	contacts := []Contact{
		{Email: "a@b.com"},
		{Email: "a@b.com"},
		{Email: "a@b.com"},
		{Email: "c@d.com"},
		{},
		{},
	}

	out, removed := Dedupe(contacts)

	wantRows := 2 + 2 // distinct emails + emailless rows
	if len(out) != wantRows {
		t.Errorf("len(out) = %d, want %d", len(out), wantRows)
	}
	if len(out)+removed != len(contacts) {
		t.Errorf("len(out)+removed = %d, want %d", len(out)+removed, len(contacts))
	}
}
