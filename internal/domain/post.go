package domain

// PostLike is any record the media pipeline can normalize.
// The set of implementations is closed: Story, Post, Product and Message.
type PostLike interface {
	PostID() int64
	MediaList() []MediaRecord
	postLike()
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Story struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	CreatedAt string        `json:"createdAt"`
	Media     []MediaRecord `json:"media"`
}

type Post struct {
	ID             int64         `json:"id"`
	PostedAt       string        `json:"postedAt"`
	RawText        string        `json:"rawText"`
	Text           string        `json:"text"`
	Price          *float64      `json:"price"`
	Preview        []int64       `json:"preview"`
	IsReportedByMe bool          `json:"isReportedByMe"`
	IsArchived     bool          `json:"isArchived"`
	Author         *User         `json:"author,omitempty"`
	Media          []MediaRecord `json:"media"`
}

// Product is a paid post with a title.
type Product struct {
	Post
	Title string `json:"title"`
}

// Message is a chat message. Mass messages found in chats carry IsFromQueue and QueueID.
type Message struct {
	ID             int64         `json:"id"`
	Text           string        `json:"text"`
	Previews       []int64       `json:"previews"`
	CreatedAt      string        `json:"createdAt"`
	Price          *float64      `json:"price"`
	IsReportedByMe bool          `json:"isReportedByMe"`
	IsFromQueue    bool          `json:"isFromQueue"`
	QueueID        int64         `json:"queueId,omitempty"`
	FromUser       *User         `json:"fromUser,omitempty"`
	WithUser       *User         `json:"withUser,omitempty"`
	Media          []MediaRecord `json:"media"`
}

func (s *Story) PostID() int64              { return s.ID }
func (s *Story) MediaList() []MediaRecord   { return s.Media }
func (*Story) postLike()                    {}
func (p *Post) PostID() int64               { return p.ID }
func (p *Post) MediaList() []MediaRecord    { return p.Media }
func (*Post) postLike()                     {}
func (p *Product) PostID() int64            { return p.ID }
func (p *Product) MediaList() []MediaRecord { return p.Media }
func (*Product) postLike()                  {}
func (m *Message) PostID() int64            { return m.ID }
func (m *Message) MediaList() []MediaRecord { return m.Media }
func (*Message) postLike()                  {}

// PriceOrZero dereferences a nullable price.
func PriceOrZero(price *float64) float64 {
	if price == nil {
		return 0
	}
	return *price
}
