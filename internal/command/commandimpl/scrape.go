package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/subscraper/internal/scraper"
	"github.com/orgball2608/subscraper/pkg/formatter"
)

func (c *CommandImpl) reply(chatID int64, text string) error {
	_, err := c.Telegram.SendMessage(chatID, formatter.EscapeMarkdownV2(text))
	return err
}

func (c *CommandImpl) handleScrape(ctx context.Context, chatID int64, args string) error {
	identifiers := strings.Fields(args)
	if len(identifiers) == 0 {
		identifiers = c.Config.Parser.Identifiers
	}

	if err := c.reply(chatID, "Scraping... ⏳"); err != nil {
		return fmt.Errorf("failed to send initial message: %w", err)
	}

	reports, err := c.Scraper.ScrapeAll(ctx, identifiers)
	if err != nil {
		c.Logger.Error("Scrape command failed", "identifiers", identifiers, "error", err)
	}
	if len(reports) == 0 && err == nil {
		return c.reply(chatID, "No matching subscriptions.")
	}

	_, sendErr := c.Telegram.SendMessage(chatID, scraper.Summary(reports, err))
	return sendErr
}

func (c *CommandImpl) handleReconcile(ctx context.Context, chatID int64) error {
	found, err := c.Scraper.ReconcileMassMessages(ctx)
	if err != nil {
		c.Logger.Error("Reconcile command failed", "error", err)
		return c.reply(chatID, "Mass message reconciliation failed: "+err.Error())
	}
	return c.reply(chatID, fmt.Sprintf("Mass messages reconciled: %s found.", formatter.FormatNumber(len(found))))
}
