// Command cleaner runs one batch cleaning pass over the raw contacts CSV:
// it normalizes fields, counts data-quality issues, removes duplicates by
// email, and writes the cleaned CSV plus a text report.
//
// It takes no arguments. Paths and the optional database sink are
// configured through environment variables (see internal/config); the
// defaults read data/contacts_raw.csv and write under output/.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JonMunkholm/ContactCleaner/internal/config"
	"github.com/JonMunkholm/ContactCleaner/internal/contact"
	"github.com/JonMunkholm/ContactCleaner/internal/logging"
	"github.com/JonMunkholm/ContactCleaner/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"input", cfg.Paths.InputFile,
		"output_dir", cfg.Paths.OutputDir,
		"db_sink", cfg.Database.SinkEnabled(),
	)

	ctx := context.Background()

	result, err := contact.Run(ctx, cfg)
	if err != nil {
		msg := contact.MapError(err)
		slog.Error("cleaning failed",
			"error", err,
			"code", msg.Code,
			"action", msg.Action,
		)
		os.Exit(1)
	}

	if cfg.Database.SinkEnabled() {
		if err := loadIntoDatabase(ctx, cfg, result); err != nil {
			msg := contact.MapError(err)
			slog.Error("database load failed",
				"error", err,
				"code", msg.Code,
				"action", msg.Action,
			)
			os.Exit(1)
		}
	}

	slog.Info("done",
		"run_id", result.RunID,
		"duration_ms", result.Duration.Milliseconds(),
		"cleaned_csv", result.CleanedPath,
		"report", result.ReportPath,
	)
}

// loadIntoDatabase pushes the deduplicated contacts into PostgreSQL.
func loadIntoDatabase(ctx context.Context, cfg *config.Config, result *contact.Result) error {
	pool, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := store.EnsureSchema(ctx, pool); err != nil {
		return err
	}

	n, err := store.ReplaceContacts(ctx, pool, result.RunID, result.Contacts)
	if err != nil {
		return err
	}

	slog.Info("contacts loaded into database", "rows", n, "run_id", result.RunID)
	return nil
}
