package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/subscraper/pkg/formatter"
)

func (c *CommandImpl) handleSubscriptions(ctx context.Context, chatID int64) error {
	subs, err := c.Scraper.GetAllSubscriptions(ctx, nil, false)
	if err != nil {
		c.Logger.Error("Failed to get subscriptions", "error", err)
		return c.reply(chatID, "Failed to load subscriptions.")
	}

	if len(subs) == 0 {
		return c.reply(chatID, "No active subscriptions.")
	}

	var builder strings.Builder
	builder.WriteString("Active subscriptions:\n")
	for i, sub := range subs {
		builder.WriteString(fmt.Sprintf("%d. @%s", i+1, sub.Username))
		if sub.SubscribedByData.ExpiredAt != "" {
			builder.WriteString(" (expires " + sub.SubscribedByData.ExpiredAt + ")")
		}
		builder.WriteString("\n")
	}
	return c.reply(chatID, builder.String())
}

func (c *CommandImpl) handleStats(ctx context.Context, chatID int64, args string) error {
	username := strings.TrimPrefix(strings.TrimSpace(args), "@")
	if username == "" {
		return c.reply(chatID, "Please provide a username: /stats <username>")
	}

	subs, err := c.Scraper.GetAllSubscriptions(ctx, []string{username}, false)
	if err != nil {
		c.Logger.Error("Failed to get subscriptions", "username", username, "error", err)
		return c.reply(chatID, "Failed to load subscriptions.")
	}
	if len(subs) == 0 {
		return c.reply(chatID, fmt.Sprintf("You are not subscribed to @%s.", username))
	}

	count, err := c.MediaRepo.CountBySubscription(ctx, subs[0].ID)
	if err != nil {
		c.Logger.Error("Failed to count media", "username", username, "error", err)
		return c.reply(chatID, "Failed to read the media ledger.")
	}
	return c.reply(chatID, fmt.Sprintf("@%s: %s media recorded.", subs[0].Username, formatter.FormatNumber(count)))
}
