package domain

import "time"

// LedgerEntry is a processed media item as persisted by the media ledger.
type LedgerEntry struct {
	SubscriptionID int64
	PostID         int64
	MediaID        int64
	APIType        string
	MediaType      string
	Directory      string
	Filename       string
	Link           string
	Linked         string
	Paid           bool
	ScrapedAt      time.Time
}

// LedgerEntries flattens a result set into ledger rows.
func LedgerEntries(subscriptionID int64, set *ResultSet, scrapedAt time.Time) []LedgerEntry {
	var entries []LedgerEntry
	for _, post := range set.Content {
		for _, m := range post.Medias {
			e := LedgerEntry{
				SubscriptionID: subscriptionID,
				PostID:         post.PostID,
				MediaID:        m.MediaID,
				APIType:        post.APIType,
				MediaType:      m.MediaType,
				Directory:      m.Directory,
				Filename:       m.Filename,
				Paid:           post.Paid,
				ScrapedAt:      scrapedAt,
			}
			if len(m.Links) > 0 {
				e.Link = m.Links[0]
			}
			if m.Linked != nil {
				e.Linked = *m.Linked
			}
			entries = append(entries, e)
		}
	}
	return entries
}
