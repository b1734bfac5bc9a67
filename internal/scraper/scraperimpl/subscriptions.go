package scraperimpl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/orgball2608/subscraper/internal/domain"
)

// GetAllSubscriptions returns the matching subscriptions, soonest to expire first.
func (s *ScraperImpl) GetAllSubscriptions(ctx context.Context, identifiers []string, refresh bool) ([]*domain.Subscription, error) {
	subs, err := s.API.GetSubscriptions(ctx, identifiers, refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	me, err := s.API.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get authed user: %w", err)
	}
	for _, sub := range subs {
		sub.Authed = me
	}

	expires := make(map[*domain.Subscription]time.Time, len(subs))
	for _, sub := range subs {
		t, err := dateparse.ParseAny(sub.SubscribedByData.ExpiredAt)
		if err != nil {
			s.Logger.Debug("Unparsable subscription expiry", "username", sub.Username, "expired_at", sub.SubscribedByData.ExpiredAt)
		}
		expires[sub] = t
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return expires[subs[i]].Before(expires[subs[j]])
	})

	return subs, nil
}
