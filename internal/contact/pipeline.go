package contact

// pipeline.go orchestrates a full cleaning run:
// load -> normalize -> tally -> dedupe -> write outputs.
//
// Data flows strictly forward and stages share nothing but their explicit
// inputs, so each stage is testable on its own. Stats tallying and
// deduplication observe records in input order; tie-breaking during
// deduplication depends on that order.

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/ContactCleaner/internal/config"
	"github.com/JonMunkholm/ContactCleaner/internal/csvio"
	"github.com/JonMunkholm/ContactCleaner/internal/logging"
	"github.com/google/uuid"
)

// Clean normalizes raw records into contacts, preserving input order.
func Clean(records []csvio.Record) []Contact {
	contacts := make([]Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, CleanContact(rec))
	}
	return contacts
}

// Run executes a full batch cleaning run per cfg: reads the input CSV,
// cleans and deduplicates it, and writes the cleaned CSV plus the text
// report. The returned Result restates everything the run produced.
//
// Field-level problems never fail the run; they degrade to empty values
// or validity counters. Only I/O errors (missing input, unwritable
// output) are returned.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := logging.WithFields(ctx, "run_id", runID)

	records, err := csvio.ReadFile(cfg.Paths.InputFile)
	if err != nil {
		return nil, err
	}
	logger.Info("contacts loaded", "path", cfg.Paths.InputFile, "rows", len(records))

	cleaned := Clean(records)
	stats := Tally(cleaned)
	deduped, removed := Dedupe(cleaned)

	cleanedPath := cfg.Paths.CleanedPath()
	if err := csvio.WriteFile(cleanedPath, Rows(deduped)); err != nil {
		return nil, fmt.Errorf("writing cleaned csv: %w", err)
	}
	logger.Info("saved cleaned csv", "path", cleanedPath, "rows", len(deduped))

	reportPath := cfg.Paths.ReportPath()
	report := RenderReport(stats, len(deduped), removed)
	if err := csvio.WriteTextFile(reportPath, report); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	logger.Info("saved report", "path", reportPath)

	// Restate the statistics on the console
	logger.Info("cleaning report",
		"total_rows", stats.Total,
		"rows_after_dedup", len(deduped),
		"duplicates_removed", removed,
		"missing_name", stats.MissingName,
		"missing_email", stats.MissingEmail,
		"invalid_email", stats.InvalidEmail,
		"missing_phone", stats.MissingPhone,
		"invalid_phone", stats.InvalidPhone,
		"missing_company", stats.MissingCompany,
	)

	return &Result{
		RunID:             runID,
		Stats:             stats,
		Contacts:          deduped,
		RowsAfterDedup:    len(deduped),
		DuplicatesRemoved: removed,
		CleanedPath:       cleanedPath,
		ReportPath:        reportPath,
		Duration:          time.Since(start),
	}, nil
}
