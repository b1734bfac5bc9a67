package domain

// Scrape categories. Archived holds posts nested by the category they were archived from.
const (
	CategoryStories      = "Stories"
	CategoryPosts        = "Posts"
	CategoryArchived     = "Archived"
	CategoryProducts     = "Products"
	CategoryMessages     = "Messages"
	CategoryMassMessages = "Mass Messages"
)

type MediaSource struct {
	URL    string `json:"source"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// MediaRecord is a raw media entry as returned by the API.
type MediaRecord struct {
	ID           int64             `json:"id"`
	Type         string            `json:"type"`
	CanView      bool              `json:"canView"`
	Preview      string            `json:"preview"`
	Full         string            `json:"full"`
	Source       MediaSource       `json:"source"`
	VideoSources map[string]string `json:"videoSources,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
}

type NormalizedMedia struct {
	MediaID   int64    `json:"media_id"`
	Links     []string `json:"links"`
	MediaType string   `json:"media_type"`
	Preview   bool     `json:"preview"`
	CreatedAt string   `json:"created_at"`
	Directory string   `json:"directory"`
	Filename  string   `json:"filename"`
	Linked    *string  `json:"linked"`
}

// NormalizedPost is the canonical per-post record produced by the media pipeline.
type NormalizedPost struct {
	PostID          int64              `json:"post_id"`
	UserID          int64              `json:"user_id"`
	Text            string             `json:"text"`
	PostedAt        string             `json:"postedAt"`
	Paid            bool               `json:"paid"`
	PreviewMediaIDs []int64            `json:"preview_media_ids"`
	APIType         string             `json:"api_type"`
	Price           float64            `json:"price"`
	Archived        bool               `json:"archived"`
	Title           string             `json:"title,omitempty"`
	Medias          []*NormalizedMedia `json:"medias"`
}

type ResultSet struct {
	Content     []*NormalizedPost `json:"content"`
	Directories []string          `json:"directories"`
}

func NewResultSet() *ResultSet {
	return &ResultSet{
		Content:     []*NormalizedPost{},
		Directories: []string{},
	}
}

// Merge adds post to the set. Media of a post already present is appended to the existing entry.
func (r *ResultSet) Merge(post *NormalizedPost) {
	for _, existing := range r.Content {
		if existing.PostID == post.PostID {
			existing.Medias = append(existing.Medias, post.Medias...)
			return
		}
	}
	r.Content = append(r.Content, post)
}

// AddDirectory records dir once, keeping first-seen order.
func (r *ResultSet) AddDirectory(dir string) {
	for _, d := range r.Directories {
		if d == dir {
			return
		}
	}
	r.Directories = append(r.Directories, dir)
}

// Extend merges every post and directory of other into r.
func (r *ResultSet) Extend(other *ResultSet) {
	if other == nil {
		return
	}
	for _, post := range other.Content {
		r.Merge(post)
	}
	for _, dir := range other.Directories {
		r.AddDirectory(dir)
	}
}

// MediaCount returns the number of media across all posts and how many of them are linked.
func (r *ResultSet) MediaCount() (total, linked int) {
	for _, post := range r.Content {
		for _, m := range post.Medias {
			total++
			if m.Linked != nil {
				linked++
			}
		}
	}
	return total, linked
}

// MediaCategory maps a logical media category to the raw API types it accepts.
type MediaCategory struct {
	Name  string
	Types []string
}

func (c MediaCategory) Accepts(rawType string) bool {
	for _, t := range c.Types {
		if t == rawType {
			return true
		}
	}
	return false
}

func DefaultMediaTypes() []MediaCategory {
	return []MediaCategory{
		{Name: "Images", Types: []string{"photo"}},
		{Name: "Videos", Types: []string{"video", "stream", "gif"}},
		{Name: "Audios", Types: []string{"audio"}},
		{Name: "Texts", Types: []string{"text"}},
	}
}

type SiteSettings struct {
	DateFormat          string
	FileDirectoryFormat string
	FilenameFormat      string
	VideoQuality        string
	IgnoredKeywords     []string
	TextLength          int
}
