package domain

// ScrapedStore keeps the results of categories already scraped in a pass,
// in the order the categories were first stored.
type ScrapedStore struct {
	order      []string
	categories map[string][]*NormalizedPost
	archived   map[string][]*NormalizedPost
}

func NewScrapedStore() *ScrapedStore {
	return &ScrapedStore{
		categories: make(map[string][]*NormalizedPost),
		archived:   make(map[string][]*NormalizedPost),
	}
}

func (s *ScrapedStore) touch(category string) {
	for _, c := range s.order {
		if c == category {
			return
		}
	}
	s.order = append(s.order, category)
}

// Put appends posts under category.
func (s *ScrapedStore) Put(category string, posts []*NormalizedPost) {
	s.touch(category)
	s.categories[category] = append(s.categories[category], posts...)
}

// PutArchived appends posts under Archived, nested by the category they came from.
func (s *ScrapedStore) PutArchived(apiType string, posts []*NormalizedPost) {
	s.touch(CategoryArchived)
	s.archived[apiType] = append(s.archived[apiType], posts...)
}

func (s *ScrapedStore) Categories() []string {
	return append([]string(nil), s.order...)
}

// Posts returns the posts stored under category. For Archived the
// sub-list of apiType is returned.
func (s *ScrapedStore) Posts(category, apiType string) []*NormalizedPost {
	if category == CategoryArchived {
		return s.archived[apiType]
	}
	return s.categories[category]
}
