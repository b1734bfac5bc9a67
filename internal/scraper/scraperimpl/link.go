package scraperimpl

import (
	"net/url"
	"strings"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/orgball2608/subscraper/internal/scraper"
)

// regionalCodes are CDN host prefixes whose second label names the processing stage.
var regionalCodes = []string{"us", "uk", "ca", "ca2", "de"}

// DefaultLinkPicker prefers the requested video quality, then the source, then the full-size link.
type DefaultLinkPicker struct{}

var _ scraper.LinkPicker = DefaultLinkPicker{}

func (DefaultLinkPicker) PickLink(_ domain.PostLike, media domain.MediaRecord, videoQuality string) string {
	link := media.Source.URL
	if link != "" && media.Type == "video" {
		quality := strings.TrimSuffix(videoQuality, "p")
		if quality != "" && quality != "source" {
			if q := media.VideoSources[quality]; q != "" {
				link = q
			}
		}
	}
	if link == "" {
		link = media.Full
	}
	return link
}

// resolveLink returns the download and preview links of media.
// A non-empty outcome means the media must be dropped.
func resolveLink(picker scraper.LinkPicker, post domain.PostLike, media domain.MediaRecord, videoQuality string) (link, preview, outcome string) {
	link = picker.PickLink(post, media, videoQuality)
	if link == "" {
		return "", "", observability.OutcomeNoLink
	}

	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return "", "", observability.OutcomeNoLink
	}

	preview = media.Preview
	labels := strings.Split(u.Hostname(), ".")
	if len(labels) > 1 && isRegional(labels[0]) {
		switch {
		case strings.Contains(labels[1], "upload"):
			return "", "", observability.OutcomeUploading
		case strings.Contains(labels[1], "convert"):
			link = preview
		}
	}

	if link == "" && preview == "" {
		return "", "", observability.OutcomeNoLink
	}
	return link, preview, ""
}

// isRegional reports whether label is a regional code optionally followed by digits (de, de2, ca2).
func isRegional(label string) bool {
	for _, code := range regionalCodes {
		rest, ok := strings.CutPrefix(label, code)
		if !ok {
			continue
		}
		if strings.Trim(rest, "0123456789") == "" {
			return true
		}
	}
	return false
}
