package scraperimpl

import (
	"testing"
	"time"

	mock_api "github.com/orgball2608/subscraper/internal/api/mocks"
	"github.com/orgball2608/subscraper/internal/domain"
	mock_media "github.com/orgball2608/subscraper/internal/repositories/media/mocks"
	mock_telegram "github.com/orgball2608/subscraper/internal/telegram/mocks"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/logger"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

type testDeps struct {
	api      *mock_api.MockClient
	telegram *mock_telegram.MockClient
	media    *mock_media.MockRepository
	cfg      *config.Config
}

func testSettings() *domain.SiteSettings {
	return &domain.SiteSettings{
		DateFormat:          "%d-%m-%Y",
		FileDirectoryFormat: "{site_name}/{model_username}/{api_type}/{value}/{media_type}",
		FilenameFormat:      "{filename}.{ext}",
		VideoQuality:        "source",
		TextLength:          255,
	}
}

func newTestScraper(t *testing.T) (*ScraperImpl, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Profile.Username = "profile"
	cfg.Profile.MetadataDirectory = t.TempDir()
	cfg.Profile.DownloadDirectory = "/dl"
	cfg.Profile.RandomString = "salt"
	cfg.Parser.Workers = 2

	deps := testDeps{
		api:      mock_api.NewMockClient(ctrl),
		telegram: mock_telegram.NewMockClient(ctrl),
		media:    mock_media.NewMockRepository(ctrl),
		cfg:      cfg,
	}

	s := New(Opts{
		API:       deps.api,
		Telegram:  deps.telegram,
		MediaRepo: deps.media,
		Logger:    logger.NewNop(),
		Config:    cfg,
	})
	s.now = func() time.Time { return fixedNow }
	return s, deps
}

// withSettings makes the API mock serve the default site settings.
func (d testDeps) withSettings() {
	d.api.EXPECT().SiteSettings().Return(testSettings()).AnyTimes()
	d.api.EXPECT().SiteName().Return("StarsAVN").AnyTimes()
}

func testSub() *domain.Subscription {
	return &domain.Subscription{
		ID:          7,
		Username:    "alice",
		Authed:      &domain.User{ID: 1, Username: "me"},
		TempScraped: domain.NewScrapedStore(),
	}
}

func photo(id int64, url string) domain.MediaRecord {
	return domain.MediaRecord{
		ID:      id,
		Type:    "photo",
		CanView: true,
		Preview: "https://cdn.example.com/preview/p.jpg",
		Full:    url,
		Source:  domain.MediaSource{URL: url},
	}
}

func price(v float64) *float64 { return &v }
