package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upMediaLedger, downMediaLedger)
}

func upMediaLedger(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE media_ledger (
		subscription_id BIGINT NOT NULL,
		post_id BIGINT NOT NULL,
		media_id BIGINT NOT NULL,
		api_type VARCHAR(64) NOT NULL,
		media_type VARCHAR(32) NOT NULL,
		directory TEXT NOT NULL,
		filename TEXT NOT NULL,
		link TEXT NOT NULL DEFAULT '',
		linked VARCHAR(64) NOT NULL DEFAULT '',
		scraped_at TIMESTAMP NOT NULL,
		PRIMARY KEY (subscription_id, post_id, media_id, api_type)
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downMediaLedger(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE media_ledger;
	`)
	if err != nil {
		return err
	}
	return nil
}
