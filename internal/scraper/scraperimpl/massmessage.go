package scraperimpl

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html"
	"path/filepath"
	"time"

	"github.com/orgball2608/subscraper/internal/api"
	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/metadata"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/orgball2608/subscraper/internal/pathformat"
	"github.com/orgball2608/subscraper/pkg/logger"
)

const (
	searchLimit   = 2
	hashFreshness = 24 * time.Hour
)

type ReconcileOpts struct {
	MetadataDirectory string
	// RandomString salts the hash that marks which setup refreshed a found message.
	RandomString string
	Now          func() time.Time
}

// ReconcileMassMessages matches queue entries against the chat history cache in Chats.json,
// searching and fetching chats that are not cached yet. Found messages whose delivery data is
// older than a day, or was fetched with another salt, are fetched again by id.
// Both the chat cache and the annotated queue are written back to the metadata directory.
func ReconcileMassMessages(ctx context.Context, authed api.Client, opts ReconcileOpts, log logger.Logger, queue []*domain.MassMessage) ([]*domain.Message, error) {
	if authed.SiteSettings() == nil {
		log.Warn("Site settings unavailable, skipping mass message reconciliation")
		return nil, nil
	}

	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}
	dateString := now.Format(pathformat.PostedAtLayout)
	hash := saltHash(opts.RandomString)

	chatsPath := filepath.Join(opts.MetadataDirectory, metadata.ChatsFile)
	massMessagesPath := filepath.Join(opts.MetadataDirectory, metadata.MassMessagesFile)

	var chats []*domain.Chat
	if _, err := metadata.ImportJSONIfExists(chatsPath, &chats); err != nil {
		return nil, fmt.Errorf("failed to load chat cache: %w", err)
	}

	for _, mm := range queue {
		if mm.DateHashed == "" {
			mm.DateHashed = dateString
		}
		if mm.IsCanceled || mm.Found != nil || !mm.HasMedia() {
			continue
		}

		found := findInChats(mm.ID, chats)
		if found == nil {
			text := html.UnescapeString(mm.TextCropped)
			items, err := authed.SearchMessages(ctx, text, searchLimit)
			if err != nil {
				log.Warn("Failed to search messages", "queue_id", mm.ID, "error", err)
				continue
			}
			if len(items) == 0 {
				continue
			}

			for _, item := range items {
				var messages []*domain.Message
				messages, chats, err = refreshChat(ctx, authed, chats, item.WithUser)
				if err != nil {
					log.Warn("Failed to fetch chat history", "chat_id", item.WithUser.ID, "error", err)
					continue
				}
				if found = matchQueued(mm.ID, messages); found != nil {
					break
				}
			}
		}

		if found != nil {
			mm.Found = found
			mm.Status = domain.StatusFound
		} else {
			mm.Status = domain.StatusNotFound
		}
		observability.MassMessagesReconciled.WithLabelValues(statusLabel(mm.Status)).Inc()
	}

	if err := metadata.ExportJSON(chatsPath, chats); err != nil {
		return nil, fmt.Errorf("failed to save chat cache: %w", err)
	}

	var globalFound []*domain.Message
	for _, mm := range queue {
		found := mm.Found
		if found == nil || len(found.Media) == 0 {
			continue
		}

		if stale(mm, hash, now) {
			if fresh, err := refetch(ctx, authed, found); err != nil {
				log.Warn("Failed to refresh mass message", "queue_id", mm.ID, "message_id", found.ID, "error", err)
			} else {
				mm.Found = fresh
				mm.HashedIP = hash
				mm.DateHashed = dateString
			}
		}
		globalFound = append(globalFound, mm.Found)
	}

	if err := metadata.ExportJSON(massMessagesPath, queue); err != nil {
		return nil, fmt.Errorf("failed to save mass messages: %w", err)
	}
	return globalFound, nil
}

// refreshChat brings the cached history of user up to date, adding the chat to the cache if needed.
func refreshChat(ctx context.Context, authed api.Client, chats []*domain.Chat, user domain.User) ([]*domain.Message, []*domain.Chat, error) {
	var chat *domain.Chat
	for _, c := range chats {
		if c.Identifier == user.ID {
			chat = c
			break
		}
	}

	var resume []*domain.Message
	if chat != nil {
		resume = chat.Messages.List
	}
	messages, err := authed.GetMessages(ctx, user.ID, resume)
	if err != nil {
		return nil, chats, err
	}

	withUser := &domain.User{ID: user.ID, Username: user.Username}
	for _, m := range messages {
		m.WithUser = withUser
		if m.FromUser != nil {
			m.FromUser = &domain.User{ID: m.FromUser.ID, Username: m.FromUser.Username}
		}
	}

	if chat == nil {
		chat = &domain.Chat{Identifier: user.ID}
		chats = append(chats, chat)
	}
	chat.Messages.List = messages
	return messages, chats, nil
}

func refetch(ctx context.Context, authed api.Client, found *domain.Message) (*domain.Message, error) {
	if found.WithUser == nil {
		return nil, fmt.Errorf("message %d has no chat", found.ID)
	}
	fresh, err := authed.GetMessageByID(ctx, found.WithUser.ID, found.ID)
	if err != nil {
		return nil, err
	}
	fresh.WithUser = found.WithUser
	return fresh, nil
}

func stale(mm *domain.MassMessage, hash string, now time.Time) bool {
	if mm.HashedIP != hash {
		return true
	}
	hashedAt, err := time.ParseInLocation(pathformat.PostedAtLayout, mm.DateHashed, now.Location())
	if err != nil {
		return true
	}
	return now.After(hashedAt.Add(hashFreshness))
}

func findInChats(queueID int64, chats []*domain.Chat) *domain.Message {
	for _, chat := range chats {
		if m := matchQueued(queueID, chat.Messages.List); m != nil {
			return m
		}
	}
	return nil
}

func matchQueued(queueID int64, messages []*domain.Message) *domain.Message {
	for _, m := range messages {
		if m.IsFromQueue && m.QueueID == queueID {
			return m
		}
	}
	return nil
}

func saltHash(salt string) string {
	sum := md5.Sum([]byte(salt))
	return hex.EncodeToString(sum[:])
}

func statusLabel(s domain.QueueStatus) string {
	switch s {
	case domain.StatusFound:
		return "found"
	case domain.StatusNotFound:
		return "not_found"
	default:
		return "unresolved"
	}
}

// ReconcileMassMessages fetches the queue, restores annotations persisted by earlier runs and reconciles it.
func (s *ScraperImpl) ReconcileMassMessages(ctx context.Context) ([]*domain.Message, error) {
	queue, err := s.API.GetMassMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get mass messages: %w", err)
	}

	var persisted []*domain.MassMessage
	path := filepath.Join(s.Config.Profile.MetadataDirectory, metadata.MassMessagesFile)
	if _, err := metadata.ImportJSONIfExists(path, &persisted); err != nil {
		s.Logger.Warn("Ignoring unreadable mass message state", "path", path, "error", err)
	}

	byID := make(map[int64]*domain.MassMessage, len(persisted))
	for _, mm := range persisted {
		byID[mm.ID] = mm
	}
	for _, mm := range queue {
		if prev, ok := byID[mm.ID]; ok {
			mm.Annotate(prev)
		}
	}

	found, err := ReconcileMassMessages(ctx, s.API, ReconcileOpts{
		MetadataDirectory: s.Config.Profile.MetadataDirectory,
		RandomString:      s.Config.Profile.RandomString,
		Now:               s.now,
	}, s.Logger, queue)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Mass messages reconciled", "queue", len(queue), "found", len(found))
	return found, nil
}
