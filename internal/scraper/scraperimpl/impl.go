package scraperimpl

import (
	"time"

	"github.com/orgball2608/subscraper/internal/api"
	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/repositories/media"
	"github.com/orgball2608/subscraper/internal/scraper"
	"github.com/orgball2608/subscraper/internal/telegram"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	API        api.Client
	Telegram   telegram.Client
	MediaRepo  media.Repository
	Logger     logger.Logger
	Config     *config.Config
	LinkPicker scraper.LinkPicker `optional:"true"`
}

type ScraperImpl struct {
	API        api.Client
	Telegram   telegram.Client
	MediaRepo  media.Repository
	Logger     logger.Logger
	Config     *config.Config
	LinkPicker scraper.LinkPicker
	MediaTypes []domain.MediaCategory

	now func() time.Time
}

func New(opts Opts) *ScraperImpl {
	picker := opts.LinkPicker
	if picker == nil {
		picker = DefaultLinkPicker{}
	}

	return &ScraperImpl{
		API:        opts.API,
		Telegram:   opts.Telegram,
		MediaRepo:  opts.MediaRepo,
		Logger:     opts.Logger.WithComponent("Scraper"),
		Config:     opts.Config,
		LinkPicker: picker,
		MediaTypes: domain.DefaultMediaTypes(),
		now:        time.Now,
	}
}

var _ scraper.Client = (*ScraperImpl)(nil)
