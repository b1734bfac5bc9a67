package scraperimpl

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/pathformat"
)

// nullDate is what the API sends for posts without a publish date.
const nullDate = "-001-11-30T00:00:00+00:00"

// normalizePost builds the canonical record of post for apiType.
// ok is false when the post must be skipped.
func (s *ScraperImpl) normalizePost(post domain.PostLike, apiType string, sub *domain.Subscription, now time.Time) (*domain.NormalizedPost, bool) {
	np := &domain.NormalizedPost{
		PostID:          post.PostID(),
		UserID:          sub.ID,
		APIType:         apiType,
		PreviewMediaIDs: []int64{},
		Medias:          []*domain.NormalizedMedia{},
	}

	var (
		rawText, text, date string
		previews            []int64
		price               *float64
	)

	switch p := post.(type) {
	case *domain.Story:
		date = p.CreatedAt
	case *domain.Post:
		if p.IsReportedByMe {
			return nil, false
		}
		rawText, text, previews, date, price = p.RawText, p.Text, p.Preview, p.PostedAt, p.Price
		np.Archived = p.IsArchived
	case *domain.Product:
		if p.IsReportedByMe {
			return nil, false
		}
		rawText, text, previews, date, price = p.RawText, p.Text, p.Preview, p.PostedAt, p.Price
		np.Title = p.Title
		np.Archived = p.IsArchived
	case *domain.Message:
		if p.IsReportedByMe {
			return nil, false
		}
		if apiType == domain.CategoryMassMessages && (p.FromUser == nil || p.FromUser.Username != sub.Username) {
			return nil, false
		}
		text, previews, date, price = p.Text, p.Previews, p.CreatedAt, p.Price
		if p.FromUser != nil {
			np.UserID = p.FromUser.ID
		}
	default:
		return nil, false
	}

	np.Text = text
	if rawText != "" {
		np.Text = rawText
	}

	postedAt, err := normalizeDate(date, now)
	if err != nil {
		s.Logger.Warn("Unparsable post date, using current time", "post_id", np.PostID, "date", date, "error", err)
	}
	np.PostedAt = postedAt

	if previews != nil {
		np.PreviewMediaIDs = previews
	}

	np.Price = domain.PriceOrZero(price)
	np.Paid = np.Price != 0 && allViewable(post.MediaList())

	return np, true
}

// normalizeDate renders raw in the PostedAt layout, dropping any zone offset.
// The null sentinel and empty dates become now. On error now is returned too.
func normalizeDate(raw string, now time.Time) (string, error) {
	fallback := now.Format(pathformat.PostedAtLayout)
	if raw == "" || raw == nullDate {
		return fallback, nil
	}

	var (
		t   time.Time
		err error
	)
	if strings.Contains(raw, "T") {
		t, err = dateparse.ParseAny(raw)
	} else {
		t, err = time.Parse(pathformat.PostedAtLayout, raw)
	}
	if err != nil {
		return fallback, err
	}
	return t.Format(pathformat.PostedAtLayout), nil
}

func allViewable(media []domain.MediaRecord) bool {
	for _, m := range media {
		if !m.CanView {
			return false
		}
	}
	return true
}
