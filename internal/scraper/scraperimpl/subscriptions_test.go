package scraperimpl

import (
	"context"
	"testing"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func subscription(id int64, username, expiredAt string) *domain.Subscription {
	sub := &domain.Subscription{ID: id, Username: username}
	sub.SubscribedByData.ExpiredAt = expiredAt
	return sub
}

func TestGetAllSubscriptionsSortedByExpiry(t *testing.T) {
	s, deps := newTestScraper(t)
	me := &domain.User{ID: 1, Username: "me"}

	deps.api.EXPECT().GetSubscriptions(gomock.Any(), []string{"a", "b"}, true).Return([]*domain.Subscription{
		subscription(1, "late", "2024-06-01T00:00:00+00:00"),
		subscription(2, "soon", "2024-04-01T00:00:00+00:00"),
		subscription(3, "middle", "2024-05-01T00:00:00+00:00"),
	}, nil)
	deps.api.EXPECT().Me(gomock.Any()).Return(me, nil)

	subs, err := s.GetAllSubscriptions(context.Background(), []string{"a", "b"}, true)
	require.NoError(t, err)
	require.Len(t, subs, 3)

	assert.Equal(t, "soon", subs[0].Username)
	assert.Equal(t, "middle", subs[1].Username)
	assert.Equal(t, "late", subs[2].Username)
	for _, sub := range subs {
		assert.Same(t, me, sub.Authed)
	}
}
