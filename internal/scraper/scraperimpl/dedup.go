package scraperimpl

import "github.com/orgball2608/subscraper/internal/domain"

// linkIfDuplicate looks for media with the same filename in the other categories of store.
// Matches are linked to apiType; media is linked to the matching post's category and renamed.
// Categories are scanned in store order and the last match wins.
func linkIfDuplicate(media *domain.NormalizedMedia, apiType string, store *domain.ScrapedStore) bool {
	if store == nil {
		return false
	}

	linked := false
	for _, category := range store.Categories() {
		if category == apiType {
			continue
		}
		for _, prior := range store.Posts(category, apiType) {
			var found []*domain.NormalizedMedia
			for _, m := range prior.Medias {
				if m.Filename != "" && m.Filename == media.Filename {
					found = append(found, m)
				}
			}
			if len(found) == 0 {
				continue
			}

			for _, m := range found {
				m.Linked = ptr(apiType)
			}
			media.Linked = ptr(prior.APIType)
			media.Filename = "linked_" + media.Filename
			linked = true
		}
	}
	return linked
}

func ptr[T any](v T) *T {
	return &v
}
