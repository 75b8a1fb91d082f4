package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	"github.com/KirkDiggler/quickroll-bot/internal/dice"
	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
)

// interactionHost answers a single interaction. It is the parser's roller,
// chat and notifier, and announces actions into the same channel.
type interactionHost struct {
	requestID string
	user      string
	responder InteractionResponder
	roller    dice.Roller
}

func (h *interactionHost) quickrollHost(registry *actions.Registry, diceEngine bool) quickroll.Host {
	host := quickroll.Host{
		ChatProcessor: h,
		Chat:          h,
		Notifier:      h,
	}

	if diceEngine {
		host.Roller = h
	}

	if registry != nil {
		host.Actions = registry.WithAnnouncer(h).Lookup()
	}

	return host
}

// Roll evaluates a canonical damage command with the bot's dice
func (h *interactionHost) Roll(_ context.Context, command string) error {
	cmd, err := dice.ParseCommand(command)
	if err != nil {
		return err
	}

	result, err := cmd.Roll(h.roller)
	if err != nil {
		return qrerr.Wrapf(err, "failed to roll %s", cmd.Formula)
	}

	log.Printf("[Discord] [%s] %s rolled %s = %d", h.requestID, h.user, cmd, result.Total)

	return h.responder.Respond(NewEmbedResponse(RollEmbed(h.user, cmd, result)))
}

// ProcessMessage posts the chat-wrapped command as plain text
func (h *interactionHost) ProcessMessage(_ context.Context, content string, _ quickroll.MessageOptions) error {
	return h.responder.Respond(NewResponse(content))
}

// CreateMessage posts a check announcement
func (h *interactionHost) CreateMessage(_ context.Context, msg quickroll.ChatMessage) error {
	skill, dc, ok := quickroll.ParseCheck(msg.Content)
	if !ok {
		return h.responder.Respond(NewResponse(msg.Content))
	}

	return h.responder.Respond(NewEmbedResponse(CheckEmbed(h.user, skill, dc)).WithContent(msg.Content))
}

// Warn tells only the requesting user what went wrong
func (h *interactionHost) Warn(message string) {
	if err := h.responder.Respond(NewEphemeralResponse(fmt.Sprintf("⚠️ %s", message))); err != nil {
		log.Printf("[Discord] [%s] Failed to send warning %q: %v", h.requestID, message, err)
	}
}

// Announce implements actions.Announcer
func (h *interactionHost) Announce(_ context.Context, use *actions.Use) error {
	return h.responder.Respond(NewEmbedResponse(ActionEmbed(h.user, use)))
}
