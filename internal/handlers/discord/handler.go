package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	"github.com/KirkDiggler/quickroll-bot/internal/dice"
	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
	"github.com/KirkDiggler/quickroll-bot/internal/uuid"
)

const (
	// PromptModalID identifies the quick roll modal
	PromptModalID = "quickroll:prompt"

	// PromptInputID identifies the text input inside the modal
	PromptInputID = "quickroll_input"

	inputOption    = "input"
	maxInputLength = 100

	msgNothingToRoll = "Nothing to roll."
	msgFallback      = "⚠️ could not process input"
)

// Handler handles quick roll interactions
type Handler struct {
	command    string
	roller     dice.Roller
	diceEngine bool
	actions    *actions.Registry
	requestIDs uuid.Generator
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	// Command is the slash command name, e.g. "qr"
	Command string

	// DiceRoller rolls damage when DiceEngine is on
	DiceRoller dice.Roller

	// DiceEngine rolls damage in the bot. When off, the chat-wrapped command is posted instead.
	DiceEngine bool

	// Actions resolves action identifiers. Optional.
	Actions *actions.Registry

	// RequestIDs tags log lines for one interaction
	RequestIDs uuid.Generator
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	h := &Handler{
		command:    cfg.Command,
		roller:     cfg.DiceRoller,
		diceEngine: cfg.DiceEngine,
		actions:    cfg.Actions,
		requestIDs: cfg.RequestIDs,
	}

	if h.command == "" {
		h.command = "qr"
	}
	if h.roller == nil {
		h.roller = dice.NewRandomRoller()
	}
	if h.requestIDs == nil {
		h.requestIDs = uuid.NewRequestIDGenerator(nil)
	}

	return h
}

// Commands returns the application commands this handler serves
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        h.command,
			Description: "Quick roll damage, checks and actions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        inputOption,
					Description: "e.g. 2d6+4 fir, perc 11, raise a shield",
					Required:    false,
					MaxLength:   maxInputLength,
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range h.Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return err
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	RecoverMiddleware("quickroll", func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		h.Handle(context.Background(), NewDiscordResponder(s, i), i)
	})(s, i)
}

// Handle routes one interaction through the quick roll parser
func (h *Handler) Handle(ctx context.Context, responder InteractionResponder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		if data.Name != h.command {
			return
		}

		input, ok := commandInput(data)
		if !ok {
			if err := responder.ShowModal(promptModal()); err != nil {
				log.Printf("[Discord] Failed to show quick roll prompt: %v", err)
			}
			return
		}

		h.evaluate(ctx, responder, i, input)

	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		if data.CustomID != PromptModalID {
			return
		}

		h.evaluate(ctx, responder, i, modalInput(data))
	}
}

func (h *Handler) evaluate(ctx context.Context, responder InteractionResponder, i *discordgo.InteractionCreate, input string) {
	host := &interactionHost{
		requestID: h.requestIDs.New(),
		user:      displayName(i),
		responder: responder,
		roller:    h.roller,
	}

	parser := quickroll.New(host.quickrollHost(h.actions, h.diceEngine))
	outcome := parser.Evaluate(ctx, input)

	log.Printf("[Discord] [%s] %s %q -> %s %s %s", host.requestID, host.user, input, outcome.Kind, outcome.Command, outcome.Canonical)

	switch {
	case outcome.Kind == quickroll.OutcomeIgnored:
		if err := responder.Respond(NewEphemeralResponse(msgNothingToRoll)); err != nil {
			log.Printf("[Discord] [%s] Failed to respond: %v", host.requestID, err)
		}
	case !responder.HasResponded():
		// Rejections without a notification still need an answer
		if err := responder.Respond(NewEphemeralResponse(msgFallback)); err != nil {
			log.Printf("[Discord] [%s] Failed to respond: %v", host.requestID, err)
		}
	}
}

func commandInput(data discordgo.ApplicationCommandInteractionData) (string, bool) {
	for _, opt := range data.Options {
		if opt.Name == inputOption && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue(), true
		}
	}
	return "", false
}

func modalInput(data discordgo.ModalSubmitInteractionData) string {
	for _, component := range data.Components {
		var row []discordgo.MessageComponent
		switch c := component.(type) {
		case *discordgo.ActionsRow:
			row = c.Components
		case discordgo.ActionsRow:
			row = c.Components
		}

		for _, rowComponent := range row {
			switch input := rowComponent.(type) {
			case *discordgo.TextInput:
				if input.CustomID == PromptInputID {
					return input.Value
				}
			case discordgo.TextInput:
				if input.CustomID == PromptInputID {
					return input.Value
				}
			}
		}
	}
	return ""
}

func promptModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: PromptModalID,
		Title:    "Quick Roll",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    PromptInputID,
						Label:       "Damage, check or action",
						Style:       discordgo.TextInputShort,
						Placeholder: "2d6+4 fir",
						Required:    false,
						MaxLength:   maxInputLength,
					},
				},
			},
		},
	}
}

func displayName(i *discordgo.InteractionCreate) string {
	var user *discordgo.User
	if i.Member != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		user = i.Member.User
	}
	if user == nil {
		user = i.User
	}
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return strings.TrimSpace(user.Username)
}
