package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"habit-tracker-bot/internal/lang"
)

const (
	PlaceholderToken = "YOUR_BOT_TOKEN_HERE"
	DefaultWebAppURL = "https://yourdomain.com/habit-tracker/telegram/"
)

var (
	ErrPlaceholderToken = errors.New("BOT_TOKEN is not set: placeholder token in use")
	ErrEmptyToken       = errors.New("BOT_TOKEN is empty")
	ErrEmptyWebAppURL   = errors.New("WEB_APP_URL is empty")
	ErrUnsupportedLang  = errors.New("unsupported BOT_LANG")
	ErrPollTimeout      = errors.New("POLL_TIMEOUT must be at least 1s")
)

type Config struct {
	BotToken    string        `env:"BOT_TOKEN" envDefault:"YOUR_BOT_TOKEN_HERE"`
	WebAppURL   string        `env:"WEB_APP_URL" envDefault:"https://yourdomain.com/habit-tracker/telegram/"`
	Lang        string        `env:"BOT_LANG" envDefault:"ru"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	Debug       bool          `env:"BOT_DEBUG" envDefault:"false"`
	PollTimeout time.Duration `env:"POLL_TIMEOUT" envDefault:"60s"`
	MenuButton  bool          `env:"BOT_MENU_BUTTON" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate is the startup check run before the bot connects to Telegram.
func (c *Config) Validate() error {
	var err error

	switch c.BotToken {
	case "":
		err = multierr.Append(err, ErrEmptyToken)
	case PlaceholderToken:
		err = multierr.Append(err, ErrPlaceholderToken)
	}

	if c.WebAppURL == "" {
		err = multierr.Append(err, ErrEmptyWebAppURL)
	}

	// getUpdates takes whole seconds; anything shorter degrades to short polling.
	if c.PollTimeout < time.Second {
		err = multierr.Append(err, fmt.Errorf("%w: got %s", ErrPollTimeout, c.PollTimeout))
	}

	if !lang.Supported(c.Lang) {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnsupportedLang, c.Lang))
	}

	return err
}
