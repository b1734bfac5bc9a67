package scraperimpl

import (
	"net/url"
	"path"
	"strings"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/samber/lo"
)

// classify checks media against the allow-list of category and the ignored keywords.
// It returns the rejection outcome and, for keyword rejections, the keyword that matched.
func classify(media domain.MediaRecord, category domain.MediaCategory, ignoredKeywords []string, text string) (outcome, keyword string) {
	if !category.Accepts(media.Type) {
		return observability.OutcomeWrongType, ""
	}
	if kw, ok := lo.Find(lo.Compact(ignoredKeywords), func(k string) bool {
		return strings.Contains(text, k)
	}); ok {
		return observability.OutcomeIgnored, kw
	}
	return "", ""
}

// splitFilename returns the name and extension (without dot) of the link's last path segment.
func splitFilename(link string) (name, ext string) {
	p := link
	if u, err := url.Parse(link); err == nil {
		p = u.Path
	} else if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}

	base := path.Base(p)
	ext = path.Ext(base)
	return strings.TrimSuffix(base, ext), strings.TrimPrefix(ext, ".")
}
