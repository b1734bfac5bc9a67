package scraperimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/subscraper/internal/domain"
)

// GetAllStories returns current stories, archived stories and the stories of every highlight.
func (s *ScraperImpl) GetAllStories(ctx context.Context, sub *domain.Subscription) ([]*domain.Story, error) {
	stories, err := s.API.GetStories(ctx, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stories for %s: %w", sub.Username, err)
	}

	archived, err := s.API.GetArchivedStories(ctx, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get archived stories for %s: %w", sub.Username, err)
	}
	stories = append(stories, archived...)

	highlights, err := s.API.GetHighlights(ctx, sub.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get highlights for %s: %w", sub.Username, err)
	}
	for _, h := range highlights {
		highlightStories, err := s.API.GetHighlightStories(ctx, h.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get highlight %d for %s: %w", h.ID, sub.Username, err)
		}
		stories = append(stories, highlightStories...)
	}

	return stories, nil
}
