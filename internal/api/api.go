package api

import (
	"context"

	"github.com/orgball2608/subscraper/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=mocks/mock.go
type Client interface {
	// Me returns the logged-in account.
	Me(ctx context.Context) (*domain.User, error)
	SiteName() string
	// SiteSettings returns nil when the path formats are not configured.
	SiteSettings() *domain.SiteSettings

	GetSubscriptions(ctx context.Context, identifiers []string, refresh bool) ([]*domain.Subscription, error)

	GetStories(ctx context.Context, userID int64) ([]*domain.Story, error)
	GetArchivedStories(ctx context.Context, userID int64) ([]*domain.Story, error)
	GetHighlights(ctx context.Context, userID int64) ([]*domain.Highlight, error)
	GetHighlightStories(ctx context.Context, highlightID int64) ([]*domain.Story, error)

	GetPosts(ctx context.Context, userID int64) ([]*domain.Post, error)
	GetArchivedPosts(ctx context.Context, userID int64) ([]*domain.Post, error)
	GetProducts(ctx context.Context, userID int64) ([]*domain.Product, error)

	// GetMessages returns the chat history with chatID, newest first.
	// When resume is set only messages newer than resume are fetched and resume is appended.
	GetMessages(ctx context.Context, chatID int64, resume []*domain.Message) ([]*domain.Message, error)
	GetMassMessages(ctx context.Context) ([]*domain.MassMessage, error)
	SearchMessages(ctx context.Context, text string, limit int) ([]*domain.ChatSearchItem, error)
	GetMessageByID(ctx context.Context, chatID, messageID int64) (*domain.Message, error)
}
