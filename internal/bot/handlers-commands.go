package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"habit-tracker-bot/internal/lang"
)

// StartMessage greets firstName and attaches the button that opens the Mini App.
func StartMessage(chatID int64, firstName, webAppURL, language string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, lang.Get(language, lang.StartGreeting, firstName))
	msg.ReplyMarkup = NewInlineWebAppKeyboard(
		[]WebAppButton{NewWebAppButton(lang.Get(language, lang.StartButton), webAppURL)},
	)
	return msg
}

func HelpMessage(chatID int64, language string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, lang.Get(language, lang.HelpText))
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	var firstName string
	if msg.From != nil {
		firstName = msg.From.FirstName
	}
	return b.sendMessage(StartMessage(msg.Chat.ID, firstName, b.cfg.WebAppURL, b.cfg.Lang))
}

func (b *Bot) handleHelp(ctx context.Context, msg *tgbotapi.Message) error {
	return b.sendMessage(HelpMessage(msg.Chat.ID, b.cfg.Lang))
}
