package quickroll

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

const (
	msgDamageNotRecognized = "damage not recognized, try e.g. '2d6+4 fir'"
	msgNoDamageFormula     = "no damage formula found"
	msgRollUnavailable     = "roll mechanism unavailable"
)

var (
	// formula, then the damage type as the final token
	damagePattern = regexp.MustCompile(`^([0-9dD+\-*/()\s]+)\s*([a-zA-Z]+)$`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// FormatDamageCommand builds the canonical roll command, e.g. "/r (2d6+4)[fire]"
func FormatDamageCommand(formula, damageType string) string {
	return fmt.Sprintf("/r (%s)[%s]", formula, damageType)
}

func (p *Parser) parseDamage(ctx context.Context, input string) (string, *qrerr.Error) {
	match := damagePattern.FindStringSubmatch(input)
	if match == nil {
		return "", qrerr.Validation(msgDamageNotRecognized)
	}

	formula := whitespace.ReplaceAllString(match[1], "")
	alias := strings.ToLower(match[2])

	damageType, ok := LookupDamageType(alias)
	if !ok {
		return "", qrerr.NotFoundf("unknown damage type '%s'", alias).WithMeta("token", alias)
	}

	if formula == "" {
		return "", qrerr.Validation(msgNoDamageFormula)
	}

	command := FormatDamageCommand(formula, damageType)
	return command, p.dispatchRoll(ctx, command)
}

// dispatchRoll prefers the roll engine and falls back to chat processing
func (p *Parser) dispatchRoll(ctx context.Context, command string) *qrerr.Error {
	if p.host.Roller != nil {
		err := guard("roller", func() error {
			return p.host.Roller.Roll(ctx, command)
		})
		if err != nil {
			return internalError(err)
		}
		return nil
	}

	if p.host.ChatProcessor != nil {
		chatCommand := "(" + command + ")"
		err := guard("chat processor", func() error {
			return p.host.ChatProcessor.ProcessMessage(ctx, chatCommand, MessageOptions{})
		})
		if err == nil {
			return nil
		}
		log.Printf("[QuickRoll] Chat processing failed for %s: %v", chatCommand, err)
	}

	log.Println("[QuickRoll] No roll mechanism available")
	return qrerr.Unavailable(msgRollUnavailable).WithMeta("command", command)
}
