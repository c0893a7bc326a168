package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"habit-tracker-bot/internal/bot"
	"habit-tracker-bot/internal/config"
	"habit-tracker-bot/pkg/logger"
)

// ENTRY POINT

type runner interface {
	SetupCommands(ctx context.Context) error
	Start(ctx context.Context) error
}

type botFactory func(cfg *config.Config, logger *zap.Logger) (runner, error)

func newBot(cfg *config.Config, logger *zap.Logger) (runner, error) {
	return bot.New(cfg, logger)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Инициализация логгера
	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	// Обработка сигналов завершения
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if err := run(ctx, cfg, zapLogger, newBot); err != nil {
		zapLogger.Error("Bot stopped with error", zap.Error(err))
		zapLogger.Sync()
		os.Exit(1)
	}

	zapLogger.Info("Bot shutdown gracefully")
}

// run validates cfg before anything touches the network, then blocks in the
// polling loop until ctx is done.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, factory botFactory) error {
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration, set BOT_TOKEN and WEB_APP_URL", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}

	b, err := factory(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	if err := b.SetupCommands(ctx); err != nil {
		logger.Warn("Failed to register bot commands", zap.Error(err))
	}

	logger.Info("Bot started")
	return b.Start(ctx)
}
