package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upLedgerPaidAndIndex, downLedgerPaidAndIndex)
}

func upLedgerPaidAndIndex(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `ALTER TABLE media_ledger ADD COLUMN paid BOOLEAN NOT NULL DEFAULT FALSE`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX idx_media_ledger_scraped_at ON media_ledger (scraped_at)`); err != nil {
		return err
	}
	return nil
}

func downLedgerPaidAndIndex(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX idx_media_ledger_scraped_at`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE media_ledger DROP COLUMN paid`); err != nil {
		return err
	}
	return nil
}
