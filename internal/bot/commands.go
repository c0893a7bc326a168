package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"habit-tracker-bot/internal/lang"
)

// SetupCommands publishes the command menu and, if enabled, the chat menu
// button that opens the Mini App.
func (b *Bot) SetupCommands(ctx context.Context) error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: CommandStart, Description: lang.Get(b.cfg.Lang, lang.CommandStart)},
		tgbotapi.BotCommand{Command: CommandHelp, Description: lang.Get(b.cfg.Lang, lang.CommandHelp)},
	)
	if _, err := b.api.Request(commands); err != nil {
		return fmt.Errorf("set my commands: %w", err)
	}

	if !b.cfg.MenuButton {
		return nil
	}

	params := make(tgbotapi.Params)
	button := NewMenuButtonWebApp(lang.Get(b.cfg.Lang, lang.MenuButton), b.cfg.WebAppURL)
	if err := params.AddInterface("menu_button", button); err != nil {
		return fmt.Errorf("encode menu button: %w", err)
	}
	if _, err := b.api.MakeRequest("setChatMenuButton", params); err != nil {
		return fmt.Errorf("set chat menu button: %w", err)
	}

	b.logger.Info("Chat menu button installed", zap.String("web_app_url", b.cfg.WebAppURL))
	return nil
}
