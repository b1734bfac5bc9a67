package media

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/repositories"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/samber/lo"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("MediaLedgerPgx"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Upsert(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entries = uniqueEntries(entries)
	err := pgx.BeginFunc(ctx, p.pg, func(tx pgx.Tx) error {
		for _, batch := range lo.Chunk(entries, upsertBatchSize) {
			builder := repositories.SqBuilder.Insert(table).Columns(columns...)
			for _, e := range batch {
				builder = builder.Values(e.SubscriptionID, e.PostID, e.MediaID, e.APIType, e.MediaType,
					e.Directory, e.Filename, e.Link, e.Linked, e.Paid, e.ScrapedAt)
			}
			query, args, err := builder.Suffix(upsertSuffix).ToSql()
			if err != nil {
				return repositories.ErrBadQuery
			}

			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrCannotUpsert, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.logger.Debug("Media upserted", "count", len(entries))
	return nil
}

func (p *Pgx) CountBySubscription(ctx context.Context, subscriptionID int64) (int, error) {
	query, args, err := repositories.SqBuilder.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"subscription_id": subscriptionID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var count int
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"scraped_at": cutoffTime}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (p *Pgx) Ping(ctx context.Context) error {
	return p.pg.Ping(ctx)
}
