package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestBuildResponseData(t *testing.T) {
	data := buildResponseData(NewEphemeralResponse("⚠️ chat unavailable"))

	assert.Equal(t, "⚠️ chat unavailable", data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
	assert.Empty(t, data.AllowedMentions.Parse)
}

func TestBuildFollowUpData(t *testing.T) {
	embed := NewEmbed().Title("🎲").Build()
	params := buildFollowUpData(NewEmbedResponse(embed).WithContent("@Check[will|dc:14]"))

	assert.Equal(t, "@Check[will|dc:14]", params.Content)
	assert.Equal(t, []*discordgo.MessageEmbed{embed}, params.Embeds)
	assert.Zero(t, params.Flags)
}

func TestMockResponder_FollowsUpAfterFirstResponse(t *testing.T) {
	m := NewMockResponder()

	assert.NoError(t, m.Respond(NewResponse("first")))
	assert.NoError(t, m.Respond(NewResponse("second")))

	assert.Len(t, m.Responses, 1)
	assert.Len(t, m.FollowUps, 1)
	assert.Equal(t, "second", m.LastResponse().Content)
	assert.True(t, m.HasResponded())
}

func TestEmbedBuilder_SkipsEmptyFields(t *testing.T) {
	embed := NewEmbed().Author("").Field("Traits", "", true).Field("Cost", "◆◆", true).Build()

	assert.Nil(t, embed.Author)
	assert.Len(t, embed.Fields, 1)
	assert.Equal(t, "Cost", embed.Fields[0].Name)
}
