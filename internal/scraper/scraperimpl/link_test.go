package scraperimpl

import (
	"testing"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/stretchr/testify/assert"
)

func TestIsRegional(t *testing.T) {
	for label, want := range map[string]bool{
		"de":   true,
		"de2":  true,
		"ca2":  true,
		"us12": true,
		"uk":   true,
		"cdn":  false,
		"dex":  false,
		"fr":   false,
		"":     false,
	} {
		assert.Equal(t, want, isRegional(label), label)
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name        string
		media       domain.MediaRecord
		wantLink    string
		wantOutcome string
	}{
		{
			name:     "plain cdn",
			media:    domain.MediaRecord{Type: "photo", Full: "https://cdn.example.com/x.jpg"},
			wantLink: "https://cdn.example.com/x.jpg",
		},
		{
			name:     "converting uses preview",
			media:    domain.MediaRecord{Type: "video", Preview: "https://cdn.example.com/p.jpg", Source: domain.MediaSource{URL: "https://us3.convert.example.com/v.mp4"}},
			wantLink: "https://cdn.example.com/p.jpg",
		},
		{
			name:        "converting without preview",
			media:       domain.MediaRecord{Type: "video", Source: domain.MediaSource{URL: "https://us3.convert.example.com/v.mp4"}},
			wantOutcome: observability.OutcomeNoLink,
		},
		{
			name:        "uploading",
			media:       domain.MediaRecord{Type: "video", Source: domain.MediaSource{URL: "https://de.upload.example.com/v.mp4"}},
			wantOutcome: observability.OutcomeUploading,
		},
		{
			name:     "upload label on a non regional host",
			media:    domain.MediaRecord{Type: "video", Source: domain.MediaSource{URL: "https://cdn.upload.example.com/v.mp4"}},
			wantLink: "https://cdn.upload.example.com/v.mp4",
		},
		{
			name:        "relative link",
			media:       domain.MediaRecord{Type: "photo", Full: "/files/x.jpg"},
			wantOutcome: observability.OutcomeNoLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, _, outcome := resolveLink(DefaultLinkPicker{}, &domain.Post{}, tt.media, "source")
			assert.Equal(t, tt.wantOutcome, outcome)
			assert.Equal(t, tt.wantLink, link)
		})
	}
}

func TestDefaultLinkPickerVideoQuality(t *testing.T) {
	media := domain.MediaRecord{
		Type:         "video",
		Source:       domain.MediaSource{URL: "https://cdn.example.com/source.mp4"},
		VideoSources: map[string]string{"720": "https://cdn.example.com/720.mp4", "240": ""},
	}

	picker := DefaultLinkPicker{}
	assert.Equal(t, "https://cdn.example.com/720.mp4", picker.PickLink(nil, media, "720p"))
	assert.Equal(t, "https://cdn.example.com/source.mp4", picker.PickLink(nil, media, "240"))
	assert.Equal(t, "https://cdn.example.com/source.mp4", picker.PickLink(nil, media, "source"))
}

func TestSplitFilename(t *testing.T) {
	for link, want := range map[string][2]string{
		"https://cdn.example.com/a/b/photo.jpg?Policy=abc&sig=1": {"photo", "jpg"},
		"https://cdn.example.com/a/clip.tar.mp4":                 {"clip.tar", "mp4"},
		"https://cdn.example.com/a/noext":                        {"noext", ""},
	} {
		name, ext := splitFilename(link)
		assert.Equal(t, want[0], name, link)
		assert.Equal(t, want[1], ext, link)
	}
}

func TestClassify(t *testing.T) {
	images := domain.MediaCategory{Name: "Images", Types: []string{"photo"}}

	outcome, _ := classify(domain.MediaRecord{Type: "video"}, images, nil, "")
	assert.Equal(t, observability.OutcomeWrongType, outcome)

	outcome, kw := classify(domain.MediaRecord{Type: "photo"}, images, []string{"promo"}, "weekend promo")
	assert.Equal(t, observability.OutcomeIgnored, outcome)
	assert.Equal(t, "promo", kw)

	outcome, _ = classify(domain.MediaRecord{Type: "photo"}, images, []string{"promo"}, "hello")
	assert.Empty(t, outcome)
}
