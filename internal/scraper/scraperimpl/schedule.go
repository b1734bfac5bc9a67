package scraperimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/orgball2608/subscraper/internal/scraper"
)

const defaultLedgerRetention = 30 * 24 * time.Hour

func (s *ScraperImpl) newScheduler(ctx context.Context, name string) (gocron.Scheduler, error) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		loc = time.Local
		s.Logger.Warn("Failed to load Asia/Ho_Chi_Minh timezone, using local timezone", "error", err)
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s scheduler: %w", name, err)
	}

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping scheduler", "scheduler", name)
		if err := scheduler.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down scheduler", "scheduler", name, "error", err)
		}
	}()

	return scheduler, nil
}

// ScheduleScrape runs ScrapeAll on the configured cron expression and reports to Telegram
func (s *ScraperImpl) ScheduleScrape(ctx context.Context) error {
	interval := s.Config.Parser.ScrapeInterval
	s.Logger.Info("Setting up scrape scheduler", "interval", interval)

	scheduler, err := s.newScheduler(ctx, "scrape")
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(interval, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, skipping scheduled scrape")
				return
			}
			s.Logger.Info("Running scheduled scrape")

			reports, err := s.ScrapeAll(ctx, s.Config.Parser.Identifiers)
			if len(reports) == 0 && err == nil {
				return
			}
			if _, sendErr := s.Telegram.SendMessage(s.Config.Telegram.User, scraper.Summary(reports, err)); sendErr != nil {
				s.Logger.Warn("Failed to send scrape summary", "error", sendErr)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule scrape: %w", err)
	}

	scheduler.Start()
	return nil
}

// ScheduleMassMessages reconciles the mass message queue on its own cron expression
func (s *ScraperImpl) ScheduleMassMessages(ctx context.Context) error {
	if !s.Config.Parser.MassMessages {
		s.Logger.Info("Mass message reconciliation disabled")
		return nil
	}

	scheduler, err := s.newScheduler(ctx, "mass messages")
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(s.Config.Parser.MassMessageInterval, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}

			runCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()

			s.reconcileAndReport(runCtx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule mass messages: %w", err)
	}

	scheduler.Start()
	return nil
}

// reconcileAndReport runs one reconciliation and sends its outcome to the owner.
func (s *ScraperImpl) reconcileAndReport(ctx context.Context) {
	found, err := s.ReconcileMassMessages(ctx)
	if err != nil {
		s.Logger.Error("Failed to reconcile mass messages", "error", err)
	}

	if _, sendErr := s.Telegram.SendMessage(s.Config.Telegram.User, scraper.MassMessageSummary(len(found), err)); sendErr != nil {
		s.Logger.Warn("Failed to send mass message summary", "error", sendErr)
	}
}

// ScheduleLedgerCleanup sets up a daily job removing ledger rows older than the retention period
func (s *ScraperImpl) ScheduleLedgerCleanup(ctx context.Context) error {
	retention := s.ledgerRetention()

	scheduler, err := s.newScheduler(ctx, "cleanup")
	if err != nil {
		return err
	}

	// Schedule a job to run at 3:00 AM every day
	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, stopping ledger cleanup job")
				return
			}

			s.Logger.Info("Starting scheduled ledger cleanup job")

			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			rowsDeleted, err := s.MediaRepo.CleanupOldRecords(cleanupCtx, retention)
			if err != nil {
				s.Logger.Error("Failed to clean up old ledger rows", "error", err)
				return
			}

			observability.LedgerRowsCleaned.Add(float64(rowsDeleted))
			s.Logger.Info("Ledger cleanup completed successfully", "rows_deleted", rowsDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule ledger cleanup: %w", err)
	}

	scheduler.Start()
	return nil
}

func (s *ScraperImpl) ledgerRetention() time.Duration {
	retention, err := time.ParseDuration(s.Config.Parser.LedgerRetention)
	if err != nil || retention <= 0 {
		s.Logger.Warn("Invalid ledger retention, using default",
			"value", s.Config.Parser.LedgerRetention,
			"default", defaultLedgerRetention.String(),
		)
		return defaultLedgerRetention
	}
	return retention
}
