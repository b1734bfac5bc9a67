package media

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/repositories"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/samber/lo"

	sq "github.com/Masterminds/squirrel"
)

// Sqlite is the ledger for local runs without a Postgres server.
type Sqlite struct {
	db     *sql.DB
	logger logger.Logger
}

func NewSqlite(db *sql.DB, logger logger.Logger) *Sqlite {
	return &Sqlite{
		db:     db,
		logger: logger.WithComponent("MediaLedgerSqlite"),
	}
}

var _ Repository = (*Sqlite)(nil)

func (s *Sqlite) Upsert(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCannotUpsert, err)
	}
	defer tx.Rollback()

	for _, batch := range lo.Chunk(uniqueEntries(entries), upsertBatchSize) {
		builder := repositories.SqliteBuilder.Insert(table).Columns(columns...)
		for _, e := range batch {
			builder = builder.Values(e.SubscriptionID, e.PostID, e.MediaID, e.APIType, e.MediaType,
				e.Directory, e.Filename, e.Link, e.Linked, e.Paid, e.ScrapedAt.UTC().Truncate(time.Second))
		}
		query, args, err := builder.Suffix(upsertSuffix).ToSql()
		if err != nil {
			return repositories.ErrBadQuery
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrCannotUpsert, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCannotUpsert, err)
	}
	return nil
}

func (s *Sqlite) CountBySubscription(ctx context.Context, subscriptionID int64) (int, error) {
	query, args, err := repositories.SqliteBuilder.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"subscription_id": subscriptionID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Sqlite) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-olderThan).UTC().Truncate(time.Second)

	query, args, err := repositories.SqliteBuilder.
		Delete(table).
		Where(sq.Lt{"scraped_at": cutoffTime}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Sqlite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
