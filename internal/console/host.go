// Package console runs quick rolls against a terminal
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	"github.com/KirkDiggler/quickroll-bot/internal/dice"
	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
)

// HostConfig holds the console host dependencies
type HostConfig struct {
	// Out receives rolls, checks and action uses. Defaults to stdout.
	Out io.Writer

	// Err receives warnings. Nil disables the notifier.
	Err io.Writer

	// DiceRoller rolls damage when DiceEngine is on
	DiceRoller dice.Roller
	DiceEngine bool

	// Definitions are the actions the console can perform
	Definitions []*actions.Definition
}

// Host prints quick roll results to a writer
type Host struct {
	out         io.Writer
	err         io.Writer
	roller      dice.Roller
	diceEngine  bool
	definitions []*actions.Definition
}

// NewHost creates a console host
func NewHost(cfg *HostConfig) *Host {
	h := &Host{
		out:         cfg.Out,
		err:         cfg.Err,
		roller:      cfg.DiceRoller,
		diceEngine:  cfg.DiceEngine,
		definitions: cfg.Definitions,
	}

	if h.out == nil {
		h.out = os.Stdout
	}
	if h.roller == nil {
		h.roller = dice.NewRandomRoller()
	}

	return h
}

// QuickRoll returns the capabilities handed to the parser
func (h *Host) QuickRoll() quickroll.Host {
	host := quickroll.Host{
		ChatProcessor: h,
		Chat:          h,
		Actions:       h.ActionMap(),
	}

	if h.diceEngine {
		host.Roller = h
	}
	if h.err != nil {
		host.Notifier = h
	}

	return host
}

// ActionMap binds every definition to a callable that prints its use
func (h *Host) ActionMap() quickroll.ActionMap {
	m := make(quickroll.ActionMap, len(h.definitions))
	for _, def := range h.definitions {
		m[def.ID] = quickroll.ActionEntry{
			Func: func(_ context.Context, opts quickroll.ActionOptions) error {
				return h.printAction(def, opts)
			},
		}
	}
	return m
}

// Roll evaluates a canonical damage command with the dice engine
func (h *Host) Roll(_ context.Context, command string) error {
	cmd, err := dice.ParseCommand(command)
	if err != nil {
		return err
	}

	result, err := cmd.Roll(h.roller)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(h.out, "%s %s\n%s\n",
		rollStyle.Render(fmt.Sprintf("🎲 %d %s", result.Total, cmd.DamageType)),
		detailStyle.Render(cmd.String()),
		detailStyle.Render(result.Breakdown()),
	)
	return err
}

// ProcessMessage prints the chat-wrapped command as typed
func (h *Host) ProcessMessage(_ context.Context, content string, _ quickroll.MessageOptions) error {
	_, err := fmt.Fprintln(h.out, content)
	return err
}

// CreateMessage prints a check announcement
func (h *Host) CreateMessage(_ context.Context, msg quickroll.ChatMessage) error {
	_, err := fmt.Fprintln(h.out, checkStyle.Render(msg.Content))
	return err
}

// Warn prints a styled warning
func (h *Host) Warn(message string) {
	fmt.Fprintln(h.err, WarningStyle.Render("⚠ "+message))
}

func (h *Host) printAction(def *actions.Definition, opts quickroll.ActionOptions) error {
	actors := make([]string, 0, len(opts.Actors))
	for _, actor := range opts.Actors {
		actors = append(actors, string(actor))
	}

	_, err := fmt.Fprintf(h.out, "%s %s\n",
		actionStyle.Render(fmt.Sprintf("⚔ %s (%s)", def.Name, def.CostLabel())),
		detailStyle.Render("by "+strings.Join(actors, ", ")),
	)
	return err
}
