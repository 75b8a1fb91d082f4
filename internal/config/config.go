package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	QuickRoll QuickRollConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration.
// An empty URL means action definitions are kept in memory.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// QuickRollConfig holds the quick roll behavior switches
type QuickRollConfig struct {
	// DiceEngine exposes the built-in dice engine as the roll capability.
	// When false damage commands are posted to the channel as plain content.
	DiceEngine  bool   `env:"QUICKROLL_DICE_ENGINE" envDefault:"true"`
	ActionsFile string `env:"QUICKROLL_ACTIONS_FILE"`
	Command     string `env:"QUICKROLL_COMMAND" envDefault:"qr"`
}

// LoadDotEnv loads a .env file when one is present
func LoadDotEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Println("No .env file found")
		return
	}
	log.Println("Loaded .env file")
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields the Discord bot cannot run without
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	if c.QuickRoll.Command == "" {
		return fmt.Errorf("QUICKROLL_COMMAND must not be empty")
	}
	return nil
}

// MaskedToken shows only the ends of the bot token for logging
func (c *Config) MaskedToken() string {
	token := c.Discord.Token
	if len(token) < 12 {
		return "****"
	}
	return token[:8] + "..." + token[len(token)-4:]
}
