package apiimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/orgball2608/subscraper/internal/domain"
)

func (a *ApiImpl) GetStories(ctx context.Context, userID int64) ([]*domain.Story, error) {
	var stories []*domain.Story
	if err := a.get(ctx, "stories", fmt.Sprintf("/users/%d/stories", userID), nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (a *ApiImpl) GetArchivedStories(ctx context.Context, userID int64) ([]*domain.Story, error) {
	stories, err := paginate[*domain.Story](ctx, a, "stories_archive", "/stories/archive", url.Values{"userId": {fmt.Sprint(userID)}})
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (a *ApiImpl) GetHighlights(ctx context.Context, userID int64) ([]*domain.Highlight, error) {
	var highlights []*domain.Highlight
	if err := a.get(ctx, "highlights", fmt.Sprintf("/users/%d/stories/highlights", userID), nil, &highlights); err != nil {
		return nil, err
	}
	return highlights, nil
}

func (a *ApiImpl) GetHighlightStories(ctx context.Context, highlightID int64) ([]*domain.Story, error) {
	var highlight struct {
		Stories []*domain.Story `json:"stories"`
	}
	if err := a.get(ctx, "highlight", fmt.Sprintf("/stories/highlights/%d", highlightID), nil, &highlight); err != nil {
		return nil, err
	}
	return highlight.Stories, nil
}

func (a *ApiImpl) GetPosts(ctx context.Context, userID int64) ([]*domain.Post, error) {
	return paginate[*domain.Post](ctx, a, "posts", fmt.Sprintf("/users/%d/posts", userID), url.Values{"order": {"publish_date_desc"}})
}

func (a *ApiImpl) GetArchivedPosts(ctx context.Context, userID int64) ([]*domain.Post, error) {
	posts, err := paginate[*domain.Post](ctx, a, "posts_archived", fmt.Sprintf("/users/%d/posts/archived", userID), url.Values{"order": {"publish_date_desc"}})
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.IsArchived = true
	}
	return posts, nil
}

func (a *ApiImpl) GetProducts(ctx context.Context, userID int64) ([]*domain.Product, error) {
	return paginate[*domain.Product](ctx, a, "products", fmt.Sprintf("/users/%d/products", userID), nil)
}
