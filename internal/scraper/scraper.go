package scraper

import (
	"context"

	"github.com/orgball2608/subscraper/internal/domain"
)

// ScrapeReport summarizes one scrape pass over a subscription.
type ScrapeReport struct {
	RunID         string
	Username      string
	Posts         int
	Media         int
	Linked        int
	Directories   int
	Categories    map[string]int
	FailedFetches []string
}

// LinkPicker selects the raw download link of a media record.
type LinkPicker interface {
	PickLink(post domain.PostLike, media domain.MediaRecord, videoQuality string) string
}

//go:generate go run go.uber.org/mock/mockgen -source=scraper.go -destination=mocks/mock.go
type Client interface {
	// MediaScrape normalizes post and resolves the paths of its media.
	// It returns nil when site settings are unavailable.
	MediaScrape(ctx context.Context, post domain.PostLike, sub *domain.Subscription, directory, apiType string) *domain.ResultSet

	// ReconcileMassMessages fetches the mass message queue and matches it against the chat cache.
	ReconcileMassMessages(ctx context.Context) ([]*domain.Message, error)

	GetAllStories(ctx context.Context, sub *domain.Subscription) ([]*domain.Story, error)
	GetAllSubscriptions(ctx context.Context, identifiers []string, refresh bool) ([]*domain.Subscription, error)

	ScrapeSubscription(ctx context.Context, sub *domain.Subscription) (*ScrapeReport, error)
	ScrapeAll(ctx context.Context, identifiers []string) ([]*ScrapeReport, error)

	ScheduleScrape(ctx context.Context) error
	ScheduleMassMessages(ctx context.Context) error
	ScheduleLedgerCleanup(ctx context.Context) error
}
