// Package store provides the optional PostgreSQL sink for cleaned
// contacts. It is only exercised when DATABASE_URL is configured; batch
// runs without it write files only.
package store

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/ContactCleaner/internal/config"
	"github.com/JonMunkholm/ContactCleaner/internal/contact"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

const createContactsTable = `
CREATE TABLE IF NOT EXISTS contacts (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	run_id UUID NOT NULL,
	name TEXT,
	email TEXT,
	phone TEXT,
	company TEXT,
	loaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Connect builds a pgx pool from the database configuration and verifies
// the connection.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the contacts table if it does not exist.
func EnsureSchema(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, createContactsTable); err != nil {
		return fmt.Errorf("creating contacts table: %w", err)
	}
	return nil
}

// ReplaceContacts loads deduplicated contacts into the contacts table,
// replacing the previous run's rows. The delete and the COPY happen in a
// single transaction, so readers never observe a half-loaded table.
func ReplaceContacts(ctx context.Context, pool *pgxpool.Pool, runID string, contacts []contact.Contact) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading contacts into database: begin: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	if _, err := tx.Exec(ctx, "DELETE FROM contacts"); err != nil {
		return 0, fmt.Errorf("loading contacts into database: clearing table: %w", err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"contacts"},
		[]string{"run_id", "name", "email", "phone", "company"},
		pgx.CopyFromSlice(len(contacts), func(i int) ([]any, error) {
			c := contacts[i]
			return []any{runID, toText(c.Name), toText(c.Email), toText(c.Phone), toText(c.Company)}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("loading contacts into database: copy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("loading contacts into database: commit: %w", err)
	}

	return n, nil
}

// toText converts a cleaned field to pgtype.Text, storing empty fields
// as NULL.
func toText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}
