package scraperimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetAllStoriesOrder(t *testing.T) {
	s, deps := newTestScraper(t)
	ctx := context.Background()

	deps.api.EXPECT().GetStories(ctx, int64(7)).Return([]*domain.Story{{ID: 1}, {ID: 2}}, nil)
	deps.api.EXPECT().GetArchivedStories(ctx, int64(7)).Return([]*domain.Story{{ID: 3}}, nil)
	deps.api.EXPECT().GetHighlights(ctx, int64(7)).Return([]*domain.Highlight{{ID: 50}, {ID: 60}}, nil)
	deps.api.EXPECT().GetHighlightStories(ctx, int64(50)).Return([]*domain.Story{{ID: 4}}, nil)
	deps.api.EXPECT().GetHighlightStories(ctx, int64(60)).Return([]*domain.Story{{ID: 5}, {ID: 6}}, nil)

	stories, err := s.GetAllStories(ctx, testSub())
	require.NoError(t, err)

	ids := make([]int64, 0, len(stories))
	for _, st := range stories {
		ids = append(ids, st.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, ids)
}

func TestGetAllStoriesError(t *testing.T) {
	s, deps := newTestScraper(t)

	deps.api.EXPECT().GetStories(gomock.Any(), int64(7)).Return(nil, nil)
	deps.api.EXPECT().GetArchivedStories(gomock.Any(), int64(7)).Return(nil, errors.New("boom"))

	_, err := s.GetAllStories(context.Background(), testSub())
	assert.ErrorContains(t, err, "archived stories")
}
