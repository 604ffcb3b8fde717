package alerter

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"courier-ledger/internal/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Alerter отправляет уведомления администраторов в служебный чат Telegram.
type Alerter struct {
	bot    sender
	chatID int64
}

func New(bot sender, chatID int64) *Alerter {
	return &Alerter{
		bot:    bot,
		chatID: chatID,
	}
}

// NewBot поднимает клиента Bot API. Токен проверяется запросом getMe.
func NewBot(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return bot, nil
}

func (a *Alerter) Alert(ctx context.Context, notification entities.Notification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("telegram alert: %w", err)
	}

	msg := tgbotapi.NewMessage(a.chatID, formatText(notification))
	msg.DisableWebPagePreview = true

	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram alert to chat %d: %w", a.chatID, err)
	}
	return nil
}

// formatText - заголовок, текст и отсортированные пары data, чтобы сообщение было стабильным.
func formatText(n entities.Notification) string {
	var sb strings.Builder
	sb.WriteString(n.Title)
	if n.Body != "" {
		sb.WriteString("\n")
		sb.WriteString(n.Body)
	}

	keys := make([]string, 0, len(n.Data))
	for k := range n.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString("\n")
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(n.Data[k])
	}
	return sb.String()
}
