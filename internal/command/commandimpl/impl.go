package commandimpl

import (
	"github.com/orgball2608/subscraper/internal/command"
	"github.com/orgball2608/subscraper/internal/repositories/media"
	"github.com/orgball2608/subscraper/internal/scraper"
	"github.com/orgball2608/subscraper/internal/telegram"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram  telegram.Client
	Scraper   scraper.Client
	MediaRepo media.Repository
	Logger    logger.Logger
	Config    *config.Config
}

type CommandImpl struct {
	Telegram  telegram.Client
	Scraper   scraper.Client
	MediaRepo media.Repository
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram:  opts.Telegram,
		Scraper:   opts.Scraper,
		MediaRepo: opts.MediaRepo,
		Logger:    opts.Logger.WithComponent("Command"),
		Config:    opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
