package commandimpl

import (
	"context"
	"errors"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/subscraper/pkg/formatter"
)

var helpMessage = "*Subscraper*\n\n" + formatter.EscapeMarkdownV2(`Available commands:
/scrape [usernames...] - Run a scrape pass now (all configured subscriptions when empty).
/reconcile - Match the mass message queue against chat history.
/subscriptions - List active subscriptions, soonest to expire first.
/stats <username> - Show how many media are recorded for a subscription.

Type /help at any time to see this guide.`)

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	if updates == nil {
		c.Logger.Info("Telegram disabled, command handler not started")
		return nil
	}
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				if u.Message == nil || !u.Message.IsCommand() {
					return
				}
				if err := c.processCommand(ctx, u); err != nil {
					c.Logger.Error("Error processing command",
						"command", u.Message.Command(),
						"error", err)
				}
			}(update)
		}
	}
}

// authorized reports whether the update comes from the configured owner.
func (c *CommandImpl) authorized(update tgbotapi.Update) bool {
	if c.Config.Telegram.User == 0 || update.Message.From == nil {
		return false
	}
	return update.Message.From.ID == c.Config.Telegram.User
}

func (c *CommandImpl) processCommand(ctx context.Context, update tgbotapi.Update) error {
	if !c.authorized(update) {
		c.Logger.Warn("Ignoring command from unknown user", "chat_id", update.Message.Chat.ID)
		return nil
	}

	command := update.Message.Command()
	args := update.Message.CommandArguments()
	chatID := update.Message.Chat.ID
	c.Logger.Info("Command received", "command", command, "chat_id", chatID)

	switch command {
	case "start", "help":
		_, err := c.Telegram.SendMessage(chatID, helpMessage)
		return err
	case "scrape":
		return c.handleScrape(ctx, chatID, args)
	case "reconcile":
		return c.handleReconcile(ctx, chatID)
	case "subscriptions":
		return c.handleSubscriptions(ctx, chatID)
	case "stats":
		return c.handleStats(ctx, chatID, args)
	default:
		_, err := c.Telegram.SendMessage(chatID, formatter.EscapeMarkdownV2("Unknown command. Type /help to see the list of available commands."))
		return err
	}
}
