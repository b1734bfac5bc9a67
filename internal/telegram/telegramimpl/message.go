package telegramimpl

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrDisabled = errors.New("telegram notifications disabled")

// SendMessageToUser sends a MarkdownV2 message to the configured user
func (tg *TelegramImpl) SendMessageToUser(message string) {
	if tg.TgBot == nil || tg.Config.Telegram.User == 0 {
		tg.Logger.Debug("Skipping telegram notification", "reason", ErrDisabled)
		return
	}

	if _, err := tg.SendMessage(tg.Config.Telegram.User, message); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
		return
	}

	tg.Logger.Info("Message sent to user",
		"userID", tg.Config.Telegram.User)
}

// SendMessage sends a MarkdownV2 message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	if tg.TgBot == nil {
		return 0, ErrDisabled
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	tg.Logger.Debug("Message sent",
		"chatID", chatID,
		"messageID", sentMsg.MessageID)
	return sentMsg.MessageID, nil
}

// GetUpdatesChan wraps the bot's GetUpdatesChan method
func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	if tg.TgBot == nil {
		return nil
	}
	return tg.TgBot.GetUpdatesChan(u)
}

func (tg *TelegramImpl) StopReceivingUpdates() {
	if tg.TgBot != nil {
		tg.TgBot.StopReceivingUpdates()
	}
}
