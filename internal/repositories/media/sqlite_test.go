package media

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/orgball2608/subscraper/internal/db"
	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSqlite(t *testing.T) *Sqlite {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = "sqlite"
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "ledger.db")

	conn, dialect, err := db.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(context.Background(), conn, dialect, "up"))

	return NewSqlite(conn, logger.NewNop())
}

func TestSqliteUpsertAndCount(t *testing.T) {
	repo := newTestSqlite(t)
	ctx := context.Background()
	now := time.Now()

	entries := []domain.LedgerEntry{
		{SubscriptionID: 1, PostID: 10, MediaID: 100, APIType: domain.CategoryPosts, MediaType: "Images", Filename: "a.jpg", ScrapedAt: now},
		{SubscriptionID: 1, PostID: 10, MediaID: 101, APIType: domain.CategoryPosts, MediaType: "Images", Filename: "b.jpg", ScrapedAt: now},
		{SubscriptionID: 1, PostID: 10, MediaID: 101, APIType: domain.CategoryPosts, MediaType: "Images", Filename: "b.jpg", ScrapedAt: now},
		{SubscriptionID: 2, PostID: 20, MediaID: 200, APIType: domain.CategoryMessages, MediaType: "Videos", Filename: "c.mp4", ScrapedAt: now},
	}
	require.NoError(t, repo.Upsert(ctx, entries))

	entries[0].Linked = domain.CategoryMessages
	require.NoError(t, repo.Upsert(ctx, entries[:1]))

	count, err := repo.CountBySubscription(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSqliteUpsertLargeBatch(t *testing.T) {
	repo := newTestSqlite(t)
	ctx := context.Background()
	now := time.Now()

	entries := make([]domain.LedgerEntry, 0, 4000)
	for i := 0; i < 4000; i++ {
		entries = append(entries, domain.LedgerEntry{
			SubscriptionID: 1,
			PostID:         int64(i / 4),
			MediaID:        int64(i),
			APIType:        domain.CategoryPosts,
			MediaType:      "Images",
			Filename:       fmt.Sprintf("%d.jpg", i),
			ScrapedAt:      now,
		})
	}
	require.NoError(t, repo.Upsert(ctx, entries))

	count, err := repo.CountBySubscription(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4000, count)
}

func TestSqliteCleanupOldRecords(t *testing.T) {
	repo := newTestSqlite(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []domain.LedgerEntry{
		{SubscriptionID: 1, PostID: 1, MediaID: 1, APIType: domain.CategoryPosts, ScrapedAt: time.Now().Add(-48 * time.Hour)},
		{SubscriptionID: 1, PostID: 2, MediaID: 2, APIType: domain.CategoryPosts, ScrapedAt: time.Now()},
	}))

	deleted, err := repo.CleanupOldRecords(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, repo.Ping(ctx))
}

func TestNewRepositoryUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "mongo"

	_, err := NewRepository(Params{Config: cfg, Logger: logger.NewNop()})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
