package domain

type Highlight struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	Title        string `json:"title"`
	StoriesCount int    `json:"storiesCount"`
}
