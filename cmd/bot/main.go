package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	"github.com/KirkDiggler/quickroll-bot/internal/config"
	"github.com/KirkDiggler/quickroll-bot/internal/dice"
	"github.com/KirkDiggler/quickroll-bot/internal/handlers/discord"
	"github.com/KirkDiggler/quickroll-bot/internal/uuid"
)

func main() {
	// Load .env file
	config.LoadDotEnv()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Bot Token: %s", cfg.MaskedToken())
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	ctx := context.Background()

	// Action definitions live in Redis when REDIS_URL is set
	store := actions.OpenStore(ctx, cfg.Redis.URL)
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}()

	var overrides []*actions.Definition
	if cfg.QuickRoll.ActionsFile != "" {
		overrides, err = actions.LoadFile(cfg.QuickRoll.ActionsFile)
		if err != nil {
			log.Fatalf("Failed to load action definitions: %v", err)
		}
	}
	if err := actions.Seed(ctx, store, overrides); err != nil {
		log.Fatalf("Failed to seed action definitions: %v", err)
	}

	registry, err := actions.NewRegistry(&actions.RegistryConfig{
		Repository: store,
	})
	if err != nil {
		log.Fatalf("Failed to create action registry: %v", err)
	}

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		Command:    cfg.QuickRoll.Command,
		DiceRoller: dice.NewRandomRoller(),
		DiceEngine: cfg.QuickRoll.DiceEngine,
		Actions:    registry,
		RequestIDs: uuid.NewRequestIDGenerator(uuid.NewGoogleUUIDGenerator()),
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
}
