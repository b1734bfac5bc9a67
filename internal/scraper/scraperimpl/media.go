package scraperimpl

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/orgball2608/subscraper/internal/pathformat"
	"github.com/samber/lo"
)

// mediaPass carries what every media entry of one post and media category needs.
type mediaPass struct {
	post            domain.PostLike
	np              *domain.NormalizedPost
	sub             *domain.Subscription
	settings        *domain.SiteSettings
	category        domain.MediaCategory
	apiType         string
	directory       string
	profileUsername string
	now             time.Time
}

func (s *ScraperImpl) MediaScrape(_ context.Context, post domain.PostLike, sub *domain.Subscription, directory, apiType string) *domain.ResultSet {
	settings := s.API.SiteSettings()
	if settings == nil {
		s.Logger.Warn("Site settings unavailable, skipping post", "post_id", post.PostID(), "api_type", apiType)
		return nil
	}

	profileUsername := s.Config.Profile.Username
	if sub.Authed != nil {
		profileUsername = sub.Authed.Username
	}

	set := domain.NewResultSet()
	for _, category := range s.MediaTypes {
		now := s.now()
		np, ok := s.normalizePost(post, apiType, sub, now)
		if !ok {
			continue
		}

		pass := mediaPass{
			post:            post,
			np:              np,
			sub:             sub,
			settings:        settings,
			category:        category,
			apiType:         apiType,
			directory:       directory,
			profileUsername: profileUsername,
			now:             now,
		}
		for _, m := range post.MediaList() {
			nm, outcome := s.processMedia(pass, m)
			if outcome != observability.OutcomeWrongType {
				observability.MediaProcessed.WithLabelValues(outcome).Inc()
			}
			if nm == nil {
				continue
			}

			set.AddDirectory(nm.Directory)
			if linkIfDuplicate(nm, apiType, sub.TempScraped) {
				observability.MediaLinked.WithLabelValues(apiType).Inc()
			}
			np.Medias = append(np.Medias, nm)
		}
		set.Merge(np)
	}
	return set
}

func (s *ScraperImpl) processMedia(p mediaPass, m domain.MediaRecord) (*domain.NormalizedMedia, string) {
	if !p.category.Accepts(m.Type) {
		return nil, observability.OutcomeWrongType
	}

	link, preview, outcome := resolveLink(s.LinkPicker, p.post, m, p.settings.VideoQuality)
	if outcome != "" {
		return nil, outcome
	}

	nm := &domain.NormalizedMedia{
		MediaID:   m.ID,
		Links:     []string{},
		MediaType: p.category.Name,
		Preview:   slices.Contains(p.np.PreviewMediaIDs, m.ID),
		CreatedAt: p.np.PostedAt,
	}
	if _, isStory := p.post.(*domain.Story); isStory && m.CreatedAt != "" {
		if createdAt, err := normalizeDate(m.CreatedAt, p.now); err == nil {
			nm.CreatedAt = createdAt
		}
	}
	if first, ok := lo.Coalesce(link, preview); ok {
		nm.Links = append(nm.Links, first)
	}

	if outcome, kw := classify(m, p.category, p.settings.IgnoredKeywords, p.np.Text); outcome != "" {
		s.Logger.Info("Ignoring media by keyword", "post_id", p.np.PostID, "keyword", kw)
		return nil, outcome
	}

	filename, ext := splitFilename(link)
	apiType := p.apiType
	if p.np.Archived {
		apiType = filepath.Join(domain.CategoryArchived, apiType)
	}

	opts := pathformat.Options{
		SiteName:        s.API.SiteName(),
		ProfileUsername: p.profileUsername,
		ModelUsername:   p.sub.Username,
		APIType:         apiType,
		MediaType:       p.category.Name,
		MediaID:         m.ID,
		PostID:          p.np.PostID,
		UserID:          p.np.UserID,
		Filename:        filename,
		Ext:             ext,
		Text:            p.np.Text,
		Title:           p.np.Title,
		PostedAt:        nm.CreatedAt,
		DateFormat:      p.settings.DateFormat,
		TextLength:      p.settings.TextLength,
		Directory:       p.directory,
		Price:           p.np.Price,
		Paid:            p.np.Paid,
		Preview:         nm.Preview,
		Archived:        p.np.Archived,
	}
	dir, file, err := buildPaths(opts, p.settings.FileDirectoryFormat, p.settings.FilenameFormat)
	if err != nil {
		s.Logger.Warn("Failed to build media path", "post_id", p.np.PostID, "media_id", m.ID, "error", err)
		return nil, observability.OutcomeBadPath
	}

	nm.Directory = dir
	nm.Filename = file
	return nm, observability.OutcomeAccepted
}
