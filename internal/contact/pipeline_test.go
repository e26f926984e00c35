package contact

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/ContactCleaner/internal/config"
)

func testConfig(t *testing.T, inputCSV string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "contacts_raw.csv")
	if err := os.WriteFile(inputPath, []byte(inputCSV), 0644); err != nil {
		t.Fatalf("writing input fixture: %v", err)
	}

	return &config.Config{
		Paths: config.PathsConfig{
			InputFile:   inputPath,
			OutputDir:   filepath.Join(dir, "output"),
			CleanedFile: "cleaned_contacts.csv",
			ReportFile:  "cleaning_report.txt",
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	input := "name,email,phone,company\n" +
		"  amy-walker jones , AMY@Example.COM ,+44 7700 900123,acme ltd\n" +
		"amy-walker jones,amy@example.com,,\n" +
		"bob,,0044 7700 900123,\n"

	cfg := testConfig(t, input)

	result, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID is empty")
	}
	if result.Stats.Total != 3 {
		t.Errorf("Stats.Total = %d, want 3", result.Stats.Total)
	}
	// Rows 1 and 2 share amy@example.com; row 1 is more complete and wins
	if result.DuplicatesRemoved != 1 {
		t.Errorf("DuplicatesRemoved = %d, want 1", result.DuplicatesRemoved)
	}
	if result.RowsAfterDedup != 2 {
		t.Errorf("RowsAfterDedup = %d, want 2", result.RowsAfterDedup)
	}

	cleaned, err := os.ReadFile(result.CleanedPath)
	if err != nil {
		t.Fatalf("reading cleaned csv: %v", err)
	}
	wantCSV := "name,email,phone,company\n" +
		"Amy-Walker Jones,amy@example.com,07700900123,Acme Ltd\n" +
		"Bob,,00447700900123,\n"
	if string(cleaned) != wantCSV {
		t.Errorf("cleaned csv mismatch:\ngot:\n%s\nwant:\n%s", cleaned, wantCSV)
	}

	report, err := os.ReadFile(result.ReportPath)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	for _, line := range []string{
		"CLEANING REPORT",
		"total_rows: 3",
		"rows_after_dedup: 2",
		"duplicates_removed: 1",
		"missing_email: 1",
		"invalid_phone: 1", // 00447700900123 is 14 digits
	} {
		if !strings.Contains(string(report), line) {
			t.Errorf("report missing %q:\n%s", line, report)
		}
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.csv")

	cfg := &config.Config{
		Paths: config.PathsConfig{
			InputFile:   missing,
			OutputDir:   filepath.Join(dir, "output"),
			CleanedFile: "cleaned_contacts.csv",
			ReportFile:  "cleaning_report.txt",
		},
	}

	_, err := Run(context.Background(), cfg)
	if err == nil {
		t.Fatal("Run() succeeded with missing input file")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q does not name the missing path %q", err, missing)
	}

	// Nothing should have been written
	if _, statErr := os.Stat(cfg.Paths.CleanedPath()); !os.IsNotExist(statErr) {
		t.Error("cleaned csv was written despite missing input")
	}
	if _, statErr := os.Stat(cfg.Paths.ReportPath()); !os.IsNotExist(statErr) {
		t.Error("report was written despite missing input")
	}
}

// Every input row is accounted for: output rows plus removed duplicates
// equals the input row count.
func TestRun_RowAccounting(t *testing.T) {
	input := "name,email,phone,company\n" +
		"a,dup@x.com,,\n" +
		"b,dup@x.com,,\n" +
		"c,dup@x.com,,\n" +
		"d,,,\n" +
		"e,,,\n"

	cfg := testConfig(t, input)

	result, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.RowsAfterDedup+result.DuplicatesRemoved != result.Stats.Total {
		t.Errorf("rows_after_dedup (%d) + duplicates_removed (%d) != total (%d)",
			result.RowsAfterDedup, result.DuplicatesRemoved, result.Stats.Total)
	}
	// 1 distinct email + 2 emailless rows
	if result.RowsAfterDedup != 3 {
		t.Errorf("RowsAfterDedup = %d, want 3", result.RowsAfterDedup)
	}
}

func TestRun_EmptyDataRows(t *testing.T) {
	cfg := testConfig(t, "name,email,phone,company\n")

	result, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.Total != 0 || result.RowsAfterDedup != 0 {
		t.Errorf("got total=%d rows_after_dedup=%d, want 0, 0",
			result.Stats.Total, result.RowsAfterDedup)
	}

	cleaned, err := os.ReadFile(result.CleanedPath)
	if err != nil {
		t.Fatalf("reading cleaned csv: %v", err)
	}
	if string(cleaned) != "name,email,phone,company\n" {
		t.Errorf("cleaned csv = %q, want header only", cleaned)
	}
}
