package app

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/subscraper/internal/api"
	"github.com/orgball2608/subscraper/internal/api/apiimpl"
	"github.com/orgball2608/subscraper/internal/command"
	"github.com/orgball2608/subscraper/internal/command/commandimpl"
	"github.com/orgball2608/subscraper/internal/db"
	"github.com/orgball2608/subscraper/internal/observability"
	repositories "github.com/orgball2608/subscraper/internal/repositories/fx"
	"github.com/orgball2608/subscraper/internal/repositories/media"
	"github.com/orgball2608/subscraper/internal/scraper"
	"github.com/orgball2608/subscraper/internal/scraper/scraperimpl"
	"github.com/orgball2608/subscraper/internal/telegram"
	"github.com/orgball2608/subscraper/internal/telegram/telegramimpl"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/orgball2608/subscraper/pkg/pgx"
	"go.uber.org/fx"
)

// Module provides every client the commands need. It starts nothing on its own.
var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		db.New,
		newPool,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		), fx.Annotate(
			apiimpl.New,
			fx.As(new(api.Client)),
		), fx.Annotate(
			scraperimpl.New,
			fx.As(new(scraper.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
)

// Serve adds the schedules, the operator bot and the health server.
var Serve = fx.Options(
	Module,
	fx.Invoke(run),
)

// newPool connects to postgres only when it backs the ledger.
func newPool(opts pgx.Opts) (*pgxpool.Pool, error) {
	if opts.Config.Storage.Driver != "postgres" {
		return nil, nil
	}
	return pgx.New(opts)
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, tgClient telegram.Client,
	sClient scraper.Client, cmdClient command.Client, mediaRepo media.Repository) {
	ctx, cancel := context.WithCancel(context.Background())
	server := observability.NewServer(cfg.App.Port, mediaRepo, log)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Start(ctx); err != nil {
					log.Error("Health server failed", "error", err)
				}
			}()

			if err := sClient.ScheduleScrape(ctx); err != nil {
				log.Error("Schedule scrape error", "error", err)
				tgClient.SendMessageToUser("Schedule scrape error: " + err.Error())
				return err
			}
			if err := sClient.ScheduleMassMessages(ctx); err != nil {
				log.Error("Schedule mass messages error", "error", err)
				tgClient.SendMessageToUser("Schedule mass messages error: " + err.Error())
			}
			if err := sClient.ScheduleLedgerCleanup(ctx); err != nil {
				log.Error("Schedule ledger cleanup error", "error", err)
			}

			go func() {
				if err := cmdClient.HandleCommand(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("Command handler stopped", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
