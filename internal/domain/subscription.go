package domain

type SubscribedByData struct {
	ExpiredAt string  `json:"expiredAt"`
	Price     float64 `json:"price"`
}

// Subscription is a followed model together with the per-pass scrape state.
type Subscription struct {
	ID               int64            `json:"id"`
	Username         string           `json:"username"`
	Name             string           `json:"name"`
	SubscribedByData SubscribedByData `json:"subscribedByData"`

	// Authed is the logged-in account that fetched this subscription.
	Authed *User `json:"-"`
	// TempScraped holds the category results already produced in the current pass.
	TempScraped *ScrapedStore `json:"-"`
}
