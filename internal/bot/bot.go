package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"habit-tracker-bot/internal/config"
)

const (
	CommandStart = "start"
	CommandHelp  = "help"
)

type Bot struct {
	api      API
	username string
	logger   *zap.Logger
	cfg      *config.Config
	handlers map[string]HandlerFunc
}

// New authorizes against the Bot API with cfg.BotToken.
func New(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	if err := tgbotapi.SetLogger(zap.NewStdLog(logger.Named("tgbotapi"))); err != nil {
		return nil, fmt.Errorf("failed to set bot API logger: %w", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	botAPI.Debug = cfg.Debug

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	return NewWithAPI(botAPI, botAPI.Self.UserName, cfg, logger), nil
}

// NewWithAPI builds the bot over api. username is the bot's own Telegram
// username, used to tell "/cmd@username" apart from commands for other bots.
func NewWithAPI(api API, username string, cfg *config.Config, logger *zap.Logger) *Bot {
	b := &Bot{
		api:      api,
		username: username,
		logger:   logger,
		cfg:      cfg,
	}

	b.registerHandlers()
	return b
}

func (b *Bot) registerHandlers() {
	b.handlers = map[string]HandlerFunc{
		CommandStart: b.handleStart,
		CommandHelp:  b.handleHelp,
	}
}

// Start long-polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot",
		zap.String("web_app_url", b.cfg.WebAppURL),
		zap.Duration("poll_timeout", b.cfg.PollTimeout))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.cfg.PollTimeout.Seconds())
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case update, ok := <-updates:
			if !ok {
				return fmt.Errorf("updates channel closed")
			}
			b.Dispatch(ctx, update)
		}
	}
}

// Dispatch routes a command message to its registered handler. Anything
// else, including commands addressed to another bot, is ignored.
func (b *Bot) Dispatch(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	command, ok := b.parseCommand(msg.CommandWithAt())
	if !ok {
		b.logger.Debug("Ignoring command for another bot",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.String("command", msg.CommandWithAt()))
		return
	}

	handler, exists := b.handlers[command]
	if !exists {
		b.logger.Debug("Ignoring unknown command",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.String("command", command))
		return
	}

	b.logger.Debug("Processing command",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.String("command", command))

	if err := handler(ctx, msg); err != nil {
		b.logger.Error("Failed to handle command",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.String("command", command),
			zap.Error(err))
	}
}

// parseCommand lowercases the command name and strips a trailing
// "@username". ok is false when the mention names a different bot.
func (b *Bot) parseCommand(withAt string) (command string, ok bool) {
	command, mention, _ := strings.Cut(withAt, "@")
	if mention != "" && !strings.EqualFold(mention, b.username) {
		return "", false
	}
	return strings.ToLower(command), true
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send message to chat %d: %w", msg.ChatID, err)
	}
	return nil
}
