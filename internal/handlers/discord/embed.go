package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	"github.com/KirkDiggler/quickroll-bot/internal/dice"
)

// Common embed colors
const (
	ColorRoll    = 0xc0392b // Red
	ColorCheck   = 0x0099ff // Blue
	ColorAction  = 0x7289da // Discord Blurple
	ColorWarning = 0xffaa00 // Orange
)

var titleCaser = cases.Title(language.English)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{
		Text: text,
	}
	return b
}

// Author sets the embed author
func (b *EmbedBuilder) Author(name string) *EmbedBuilder {
	if name == "" {
		return b
	}
	b.embed.Author = &discordgo.MessageEmbedAuthor{
		Name: name,
	}
	return b
}

// Field adds a field to the embed. Empty values are skipped.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if value == "" {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// RollEmbed shows an evaluated damage roll
func RollEmbed(user string, cmd *dice.Command, result *dice.Result) *discordgo.MessageEmbed {
	damageType := titleCaser.String(cmd.DamageType)

	return NewEmbed().
		Title(fmt.Sprintf("🎲 %s %s", cmd.Formula, damageType)).
		Description(fmt.Sprintf("**%d** %s damage", result.Total, cmd.DamageType)).
		Color(ColorRoll).
		Author(user).
		Field("Rolls", result.Breakdown(), false).
		Footer(cmd.String()).
		Build()
}

// CheckEmbed shows a check request with its DC
func CheckEmbed(user, skill string, dc int) *discordgo.MessageEmbed {
	return NewEmbed().
		Title(fmt.Sprintf("🎯 %s check", titleCaser.String(skill))).
		Color(ColorCheck).
		Author(user).
		Field("DC", fmt.Sprintf("%d", dc), true).
		Build()
}

// ActionEmbed announces the use of an action
func ActionEmbed(user string, use *actions.Use) *discordgo.MessageEmbed {
	def := use.Definition

	traits := make([]string, 0, len(def.Traits))
	for _, trait := range def.Traits {
		traits = append(traits, titleCaser.String(trait))
	}

	actors := make([]string, 0, len(use.Actors))
	for _, actor := range use.Actors {
		actors = append(actors, string(actor))
	}

	return NewEmbed().
		Title(fmt.Sprintf("⚔️ %s", def.Name)).
		Description(def.Description).
		Color(ColorAction).
		Author(user).
		Field("Cost", def.CostLabel(), true).
		Field("Traits", strings.Join(traits, ", "), true).
		Footer(strings.Join(actors, ", ")).
		Build()
}
