package apiimpl

import (
	"context"
	"net/url"
	"strconv"

	"github.com/orgball2608/subscraper/internal/domain"
)

func (a *ApiImpl) Me(ctx context.Context) (*domain.User, error) {
	a.mu.Lock()
	cached := a.me
	a.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	var me domain.User
	if err := a.get(ctx, "me", "/users/me", nil, &me); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.me = &me
	a.mu.Unlock()
	return &me, nil
}

// GetSubscriptions returns active subscriptions, optionally filtered by username or id.
// Without refresh the list fetched by a previous call is reused.
func (a *ApiImpl) GetSubscriptions(ctx context.Context, identifiers []string, refresh bool) ([]*domain.Subscription, error) {
	a.mu.Lock()
	subs := a.subscriptions
	a.mu.Unlock()

	if subs == nil || refresh {
		fetched, err := paginate[*domain.Subscription](ctx, a, "subscriptions", "/subscriptions/subscribes", url.Values{"type": {"active"}})
		if err != nil {
			return nil, err
		}
		a.mu.Lock()
		a.subscriptions = fetched
		a.mu.Unlock()
		subs = fetched
	}

	if len(identifiers) == 0 {
		return append([]*domain.Subscription(nil), subs...), nil
	}

	wanted := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		wanted[id] = struct{}{}
	}

	var out []*domain.Subscription
	for _, sub := range subs {
		_, byName := wanted[sub.Username]
		_, byID := wanted[strconv.FormatInt(sub.ID, 10)]
		if byName || byID {
			out = append(out, sub)
		}
	}
	return out, nil
}
