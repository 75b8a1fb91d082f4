package discord

import (
	"github.com/bwmarrin/discordgo"
)

// MockResponder is a test implementation of InteractionResponder
type MockResponder struct {
	Responses    []*Response
	FollowUps    []*Response
	Modals       []*discordgo.InteractionResponseData
	RespondError error
	ModalError   error
	Responded    bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{
		Responses: make([]*Response, 0),
		FollowUps: make([]*Response, 0),
		Modals:    make([]*discordgo.InteractionResponseData, 0),
	}
}

func (m *MockResponder) Respond(response *Response) error {
	if m.RespondError != nil {
		return m.RespondError
	}
	if m.Responded {
		_, err := m.FollowUp(response)
		return err
	}
	m.Responses = append(m.Responses, response)
	m.Responded = true
	return nil
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.FollowUps = append(m.FollowUps, response)
	return &discordgo.Message{ID: "test-message-123"}, nil
}

func (m *MockResponder) ShowModal(modal *discordgo.InteractionResponseData) error {
	if m.ModalError != nil {
		return m.ModalError
	}
	m.Modals = append(m.Modals, modal)
	m.Responded = true
	return nil
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

// LastResponse returns the last message sent
func (m *MockResponder) LastResponse() *Response {
	if len(m.FollowUps) > 0 {
		return m.FollowUps[len(m.FollowUps)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}

// Messages returns every message in the order it was sent
func (m *MockResponder) Messages() []*Response {
	return append(append([]*Response{}, m.Responses...), m.FollowUps...)
}
