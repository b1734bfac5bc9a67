package scraperimpl

import (
	"testing"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/stretchr/testify/assert"
)

func storedPost(apiType string, filenames ...string) *domain.NormalizedPost {
	post := &domain.NormalizedPost{PostID: 1, APIType: apiType}
	for i, name := range filenames {
		post.Medias = append(post.Medias, &domain.NormalizedMedia{MediaID: int64(i + 1), Filename: name})
	}
	return post
}

func linkedValue(m *domain.NormalizedMedia) string {
	if m.Linked == nil {
		return ""
	}
	return *m.Linked
}

func TestLinkIfDuplicate(t *testing.T) {
	tests := []struct {
		name         string
		apiType      string
		build        func(store *domain.ScrapedStore) []*domain.NormalizedMedia
		wantLinked   bool
		wantFilename string
		wantLinkedTo string
		wantPrior    []string
	}{
		{
			name:    "no match",
			apiType: domain.CategoryMessages,
			build: func(store *domain.ScrapedStore) []*domain.NormalizedMedia {
				post := storedPost(domain.CategoryPosts, "other.jpg")
				store.Put(domain.CategoryPosts, []*domain.NormalizedPost{post})
				return post.Medias
			},
			wantFilename: "x.jpg",
			wantPrior:    []string{""},
		},
		{
			name:    "same category is skipped",
			apiType: domain.CategoryPosts,
			build: func(store *domain.ScrapedStore) []*domain.NormalizedMedia {
				post := storedPost(domain.CategoryPosts, "x.jpg")
				store.Put(domain.CategoryPosts, []*domain.NormalizedPost{post})
				return post.Medias
			},
			wantFilename: "x.jpg",
			wantPrior:    []string{""},
		},
		{
			name:    "archived sub-list of the same api type",
			apiType: domain.CategoryPosts,
			build: func(store *domain.ScrapedStore) []*domain.NormalizedMedia {
				post := storedPost(domain.CategoryPosts, "x.jpg")
				store.PutArchived(domain.CategoryPosts, []*domain.NormalizedPost{post})
				return post.Medias
			},
			wantLinked:   true,
			wantFilename: "linked_x.jpg",
			wantLinkedTo: domain.CategoryPosts,
			wantPrior:    []string{domain.CategoryPosts},
		},
		{
			name:    "archived sub-list of another api type is ignored",
			apiType: domain.CategoryMessages,
			build: func(store *domain.ScrapedStore) []*domain.NormalizedMedia {
				post := storedPost(domain.CategoryPosts, "x.jpg")
				store.PutArchived(domain.CategoryPosts, []*domain.NormalizedPost{post})
				return post.Medias
			},
			wantFilename: "x.jpg",
			wantPrior:    []string{""},
		},
		{
			name:    "every matching media of the prior post is linked",
			apiType: domain.CategoryMessages,
			build: func(store *domain.ScrapedStore) []*domain.NormalizedMedia {
				post := storedPost(domain.CategoryPosts, "x.jpg", "y.jpg", "x.jpg")
				store.Put(domain.CategoryPosts, []*domain.NormalizedPost{post})
				return post.Medias
			},
			wantLinked:   true,
			wantFilename: "linked_x.jpg",
			wantLinkedTo: domain.CategoryPosts,
			wantPrior:    []string{domain.CategoryMessages, "", domain.CategoryMessages},
		},
		{
			name:    "second match compares the prefixed name",
			apiType: domain.CategoryPosts,
			build: func(store *domain.ScrapedStore) []*domain.NormalizedMedia {
				stories := storedPost(domain.CategoryStories, "x.jpg")
				messages := storedPost(domain.CategoryMessages, "x.jpg")
				store.Put(domain.CategoryStories, []*domain.NormalizedPost{stories})
				store.Put(domain.CategoryMessages, []*domain.NormalizedPost{messages})
				return append(stories.Medias, messages.Medias...)
			},
			wantLinked:   true,
			wantFilename: "linked_x.jpg",
			wantLinkedTo: domain.CategoryStories,
			wantPrior:    []string{domain.CategoryPosts, ""},
		},
		{
			name:    "last matching category wins",
			apiType: domain.CategoryPosts,
			build: func(store *domain.ScrapedStore) []*domain.NormalizedMedia {
				stories := storedPost(domain.CategoryStories, "x.jpg")
				messages := storedPost(domain.CategoryMessages, "linked_x.jpg")
				store.Put(domain.CategoryStories, []*domain.NormalizedPost{stories})
				store.Put(domain.CategoryMessages, []*domain.NormalizedPost{messages})
				return append(stories.Medias, messages.Medias...)
			},
			wantLinked:   true,
			wantFilename: "linked_linked_x.jpg",
			wantLinkedTo: domain.CategoryMessages,
			wantPrior:    []string{domain.CategoryPosts, domain.CategoryPosts},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := domain.NewScrapedStore()
			prior := tt.build(store)
			media := &domain.NormalizedMedia{MediaID: 99, Filename: "x.jpg"}

			assert.Equal(t, tt.wantLinked, linkIfDuplicate(media, tt.apiType, store))
			assert.Equal(t, tt.wantFilename, media.Filename)
			assert.Equal(t, tt.wantLinkedTo, linkedValue(media))

			got := make([]string, len(prior))
			for i, m := range prior {
				got[i] = linkedValue(m)
			}
			assert.Equal(t, tt.wantPrior, got)
		})
	}
}

func TestLinkIfDuplicateNilStore(t *testing.T) {
	media := &domain.NormalizedMedia{Filename: "x.jpg"}
	assert.False(t, linkIfDuplicate(media, domain.CategoryPosts, nil))
	assert.Nil(t, media.Linked)
}
