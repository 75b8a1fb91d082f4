package quickroll

//go:generate mockgen -destination=mock/mock_host.go -package=mockquickroll -source=host.go

import (
	"context"
)

// Roller executes a canonical roll command such as "/r (2d6+4)[fire]"
type Roller interface {
	Roll(ctx context.Context, command string) error
}

// MessageOptions are passed through to a ChatProcessor. The parser always sends none.
type MessageOptions map[string]any

// ChatProcessor handles raw chat content the way a user typing it would
type ChatProcessor interface {
	ProcessMessage(ctx context.Context, content string, opts MessageOptions) error
}

// ChatMessage is the payload of a created chat message
type ChatMessage struct {
	Content string
}

// ChatCreator posts a new chat message
type ChatCreator interface {
	CreateMessage(ctx context.Context, msg ChatMessage) error
}

// Notifier surfaces a rejection to the person who typed the input
type Notifier interface {
	Warn(message string)
}

// ActorSelector picks who performs an invoked action
type ActorSelector string

const (
	ActorCurrentToken   ActorSelector = "current-token"
	ActorSelectedTokens ActorSelector = "selected-tokens"
)

// ActionOptions is the payload handed to an invoked action
type ActionOptions struct {
	Actors []ActorSelector
}

// DefaultActionOptions selects the current token and the selected tokens
func DefaultActionOptions() ActionOptions {
	return ActionOptions{
		Actors: []ActorSelector{ActorCurrentToken, ActorSelectedTokens},
	}
}

// Includes reports whether the selector is part of the options
func (o ActionOptions) Includes(selector ActorSelector) bool {
	for _, actor := range o.Actors {
		if actor == selector {
			return true
		}
	}
	return false
}

// Action is an invokable registered action
type Action interface {
	Use(ctx context.Context, opts ActionOptions) error
}

// ActionFunc is a directly callable registered action
type ActionFunc func(ctx context.Context, opts ActionOptions) error

// Host bundles the capabilities the parser dispatches to. Every field is optional.
type Host struct {
	Roller        Roller
	ChatProcessor ChatProcessor
	Chat          ChatCreator
	Notifier      Notifier
	Actions       ActionRegistry
}
