package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Respond sends the initial response, or a follow-up once the interaction was answered
	Respond(response *Response) error

	// FollowUp sends an additional message after the initial response
	FollowUp(response *Response) (*discordgo.Message, error)

	// ShowModal answers the interaction with a modal
	ShowModal(modal *discordgo.InteractionResponseData) error

	// HasResponded reports whether the interaction was answered
	HasResponded() bool
}

// Response represents a Discord-agnostic response
type Response struct {
	// Text content of the response
	Content string

	// Discord embeds
	Embeds []*discordgo.MessageEmbed

	// Whether this response should be ephemeral (only visible to the user)
	Ephemeral bool

	// Allowed mentions configuration
	AllowedMentions *discordgo.MessageAllowedMentions
}

// NewResponse creates a new response with the given content
func NewResponse(content string) *Response {
	return &Response{
		Content: content,
	}
}

// NewEphemeralResponse creates a new ephemeral response
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewEmbedResponse creates a response with an embed
func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

// WithContent sets the text content
func (r *Response) WithContent(content string) *Response {
	r.Content = content
	return r
}

// noMentions keeps roll output from pinging anyone
var noMentions = &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}

// DiscordResponder implements InteractionResponder using Discord's API
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	responded   bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends an immediate response
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		_, err := r.FollowUp(response)
		return err
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: buildResponseData(response),
	})

	if err == nil {
		r.responded = true
	}

	return err
}

// FollowUp sends an additional message after the initial response
func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.responded {
		return nil, fmt.Errorf("cannot follow up before responding")
	}

	return r.session.FollowupMessageCreate(r.interaction.Interaction, true, buildFollowUpData(response))
}

// ShowModal answers the interaction with a modal
func (r *DiscordResponder) ShowModal(modal *discordgo.InteractionResponseData) error {
	if r.responded {
		return fmt.Errorf("interaction already responded to")
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: modal,
	})

	if err == nil {
		r.responded = true
	}

	return err
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

func allowedMentions(response *Response) *discordgo.MessageAllowedMentions {
	if response.AllowedMentions != nil {
		return response.AllowedMentions
	}
	return noMentions
}

// buildResponseData converts our Response to Discord's InteractionResponseData
func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		AllowedMentions: allowedMentions(response),
	}

	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return data
}

// buildFollowUpData converts our Response to Discord's WebhookParams
func buildFollowUpData(response *Response) *discordgo.WebhookParams {
	params := &discordgo.WebhookParams{
		Content:         response.Content,
		Embeds:          response.Embeds,
		AllowedMentions: allowedMentions(response),
	}

	if response.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	return params
}
