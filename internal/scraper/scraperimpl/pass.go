package scraperimpl

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/metadata"
	"github.com/orgball2608/subscraper/internal/observability"
	"github.com/orgball2608/subscraper/internal/scraper"
	"github.com/panjf2000/ants/v2"
)

var ErrMissingSiteSettings = errors.New("site settings unavailable")

// categoryJob fetches the posts of one category. Archived jobs are stored under Archived/<apiType>.
type categoryJob struct {
	name     string
	apiType  string
	archived bool
	fetch    func(ctx context.Context) ([]domain.PostLike, error)
}

func (s *ScraperImpl) categoryJobs(sub *domain.Subscription) []categoryJob {
	jobs := []categoryJob{
		{name: domain.CategoryStories, apiType: domain.CategoryStories, fetch: func(ctx context.Context) ([]domain.PostLike, error) {
			stories, err := s.GetAllStories(ctx, sub)
			return domain.Stories(stories), err
		}},
		{name: domain.CategoryPosts, apiType: domain.CategoryPosts, fetch: func(ctx context.Context) ([]domain.PostLike, error) {
			posts, err := s.API.GetPosts(ctx, sub.ID)
			return domain.Posts(posts), err
		}},
		{name: domain.CategoryArchived, apiType: domain.CategoryPosts, archived: true, fetch: func(ctx context.Context) ([]domain.PostLike, error) {
			posts, err := s.API.GetArchivedPosts(ctx, sub.ID)
			return domain.Posts(posts), err
		}},
		{name: domain.CategoryProducts, apiType: domain.CategoryProducts, fetch: func(ctx context.Context) ([]domain.PostLike, error) {
			products, err := s.API.GetProducts(ctx, sub.ID)
			return domain.Products(products), err
		}},
		{name: domain.CategoryMessages, apiType: domain.CategoryMessages, fetch: func(ctx context.Context) ([]domain.PostLike, error) {
			messages, err := s.API.GetMessages(ctx, sub.ID, nil)
			return domain.Messages(messages), err
		}},
	}
	if s.Config.Parser.MassMessages {
		jobs = append(jobs, categoryJob{name: domain.CategoryMassMessages, apiType: domain.CategoryMassMessages, fetch: func(context.Context) ([]domain.PostLike, error) {
			messages, err := s.foundMassMessages()
			return domain.Messages(messages), err
		}})
	}
	return jobs
}

// foundMassMessages returns the messages matched by the last reconciliation.
func (s *ScraperImpl) foundMassMessages() ([]*domain.Message, error) {
	var queue []*domain.MassMessage
	path := filepath.Join(s.Config.Profile.MetadataDirectory, metadata.MassMessagesFile)
	if _, err := metadata.ImportJSONIfExists(path, &queue); err != nil {
		return nil, err
	}

	var found []*domain.Message
	for _, mm := range queue {
		if mm.Status == domain.StatusFound && mm.Found != nil {
			found = append(found, mm.Found)
		}
	}
	return found, nil
}

// ScrapeSubscription runs every category of sub through the media pipeline, records the media
// in the ledger and exports one metadata file per category.
func (s *ScraperImpl) ScrapeSubscription(ctx context.Context, sub *domain.Subscription) (*scraper.ScrapeReport, error) {
	if s.API.SiteSettings() == nil {
		return nil, ErrMissingSiteSettings
	}

	start := s.now()
	report := &scraper.ScrapeReport{
		RunID:      uuid.NewString(),
		Username:   sub.Username,
		Categories: make(map[string]int),
	}
	s.Logger.Info("Starting scrape pass", "run_id", report.RunID, "username", sub.Username)

	sub.TempScraped = domain.NewScrapedStore()
	directories := make(map[string]struct{})

	type scrapedCategory struct {
		name string
		set  *domain.ResultSet
	}
	var scraped []scrapedCategory

	for _, job := range s.categoryJobs(sub) {
		posts, err := job.fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			s.Logger.Warn("Failed to fetch category", "run_id", report.RunID, "username", sub.Username, "category", job.name, "error", err)
			report.FailedFetches = append(report.FailedFetches, job.name)
			continue
		}

		set := domain.NewResultSet()
		for _, post := range posts {
			set.Extend(s.MediaScrape(ctx, post, sub, s.Config.Profile.DownloadDirectory, job.apiType))
		}
		observability.PostsNormalized.WithLabelValues(job.name).Add(float64(len(set.Content)))

		if job.archived {
			sub.TempScraped.PutArchived(job.apiType, set.Content)
		} else {
			sub.TempScraped.Put(job.apiType, set.Content)
		}
		scraped = append(scraped, scrapedCategory{name: job.name, set: set})
	}

	// Later categories link media of earlier ones, so persist only once every category is stored.
	for _, c := range scraped {
		if err := s.MediaRepo.Upsert(ctx, domain.LedgerEntries(sub.ID, c.set, start)); err != nil {
			s.Logger.Error("Failed to record media", "run_id", report.RunID, "category", c.name, "error", err)
		}

		exportPath := filepath.Join(s.Config.Profile.MetadataDirectory, sub.Username, c.name+".json")
		if err := metadata.ExportJSON(exportPath, c.set); err != nil {
			s.Logger.Error("Failed to export metadata", "run_id", report.RunID, "path", exportPath, "error", err)
		}

		total, _ := c.set.MediaCount()
		report.Posts += len(c.set.Content)
		report.Media += total
		report.Categories[c.name] = total
		for _, d := range c.set.Directories {
			directories[d] = struct{}{}
		}
	}

	for _, category := range sub.TempScraped.Categories() {
		report.Linked += countLinked(sub.TempScraped, category)
	}
	report.Directories = len(directories)

	observability.ScrapePassDuration.Observe(s.now().Sub(start).Seconds())
	s.Logger.Info("Scrape pass completed",
		"run_id", report.RunID,
		"username", sub.Username,
		"posts", report.Posts,
		"media", report.Media,
		"linked", report.Linked,
	)
	return report, nil
}

func countLinked(store *domain.ScrapedStore, category string) int {
	var posts []*domain.NormalizedPost
	if category == domain.CategoryArchived {
		for _, apiType := range []string{domain.CategoryPosts, domain.CategoryProducts, domain.CategoryMessages} {
			posts = append(posts, store.Posts(category, apiType)...)
		}
	} else {
		posts = store.Posts(category, category)
	}

	linked := 0
	for _, p := range posts {
		for _, m := range p.Medias {
			if m.Linked != nil {
				linked++
			}
		}
	}
	return linked
}

// ScrapeAll scrapes every matching subscription on a worker pool.
func (s *ScraperImpl) ScrapeAll(ctx context.Context, identifiers []string) ([]*scraper.ScrapeReport, error) {
	subs, err := s.GetAllSubscriptions(ctx, identifiers, true)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		s.Logger.Info("No subscriptions to scrape")
		return nil, nil
	}

	workers := s.Config.Parser.Workers
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []error
		reports = make([]*scraper.ScrapeReport, len(subs))
	)
	for i, sub := range subs {
		i, sub := i, sub
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				s.Logger.Info("Skipping subscription due to context cancellation", "username", sub.Username)
				return
			}
			report, err := s.ScrapeSubscription(ctx, sub)
			if err != nil {
				s.Logger.Error("Failed to scrape subscription", "username", sub.Username, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", sub.Username, err))
				mu.Unlock()
			}
			reports[i] = report
		})
		if err != nil {
			wg.Done()
			s.Logger.Error("Failed to submit job to ants pool", "username", sub.Username, "error", err)
		}
	}
	wg.Wait()

	var out []*scraper.ScrapeReport
	for _, r := range reports {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, errors.Join(errs...)
}
