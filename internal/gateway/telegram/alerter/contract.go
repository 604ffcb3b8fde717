//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=alerter_test
package alerter

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender - подмножество *tgbotapi.BotAPI.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
