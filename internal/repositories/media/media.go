package media

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/samber/lo"
)

var (
	ErrCannotUpsert  = errors.New("cannot upsert media")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

const table = "media_ledger"

// upsertBatchSize keeps a single insert below the bind parameter limits of SQLite and Postgres.
const upsertBatchSize = 500

var columns = []string{
	"subscription_id", "post_id", "media_id", "api_type", "media_type",
	"directory", "filename", "link", "linked", "paid", "scraped_at",
}

// upsertSuffix refreshes a row that was already recorded by an earlier pass.
const upsertSuffix = `ON CONFLICT (subscription_id, post_id, media_id, api_type) DO UPDATE SET
	media_type = EXCLUDED.media_type,
	directory = EXCLUDED.directory,
	filename = EXCLUDED.filename,
	link = EXCLUDED.link,
	linked = EXCLUDED.linked,
	paid = EXCLUDED.paid,
	scraped_at = EXCLUDED.scraped_at`

//go:generate go run go.uber.org/mock/mockgen -source=media.go -destination=mocks/mock.go
type Repository interface {
	// Upsert records processed media, replacing rows of the same post, media and category
	Upsert(ctx context.Context, entries []domain.LedgerEntry) error

	// CountBySubscription returns how many media are recorded for a subscription
	CountBySubscription(ctx context.Context, subscriptionID int64) (int, error)

	// CleanupOldRecords deletes rows not refreshed within olderThan
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)

	Ping(ctx context.Context) error
}

type ledgerKey struct {
	subscriptionID, postID, mediaID int64
	apiType                         string
}

// uniqueEntries drops repeated keys; a multi-row upsert may not touch a row twice.
func uniqueEntries(entries []domain.LedgerEntry) []domain.LedgerEntry {
	return lo.UniqBy(entries, func(e domain.LedgerEntry) ledgerKey {
		return ledgerKey{e.SubscriptionID, e.PostID, e.MediaID, e.APIType}
	})
}
