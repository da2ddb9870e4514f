package postgres

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS audit_events (
	id          UUID PRIMARY KEY,
	machine     TEXT NOT NULL,
	action      TEXT NOT NULL,
	drink_id    TEXT,
	quantity    INTEGER NOT NULL DEFAULT 0,
	amount      NUMERIC(10,2) NOT NULL DEFAULT 0,
	change      NUMERIC(10,2) NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_events_machine_created ON audit_events (machine, created_at)`,
}

// Migrate creates the journal schema in a single transaction. It is safe to
// run on every start.
func Migrate(ctx context.Context, pool Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
