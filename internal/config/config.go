package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the bot's environment-driven configuration.
type Config struct {
	// Discord
	DiscordBotToken string `env:"DISCORD_BOT_TOKEN,required"`
	BotOwnerID      string `env:"BOT_OWNER_ID"`

	// Database. Empty falls back to the in-memory repository, which
	// loses data on restart.
	DatabaseURL string `env:"DATABASE_URL"`

	// HTTP server
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Dice-bot keep-alive
	KeepAliveInterval time.Duration `env:"KEEPALIVE_INTERVAL" envDefault:"12h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
