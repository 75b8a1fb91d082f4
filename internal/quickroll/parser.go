// Package quickroll turns one line of shorthand text into a damage roll, a
// skill/save check announcement or an action invocation.
//
// The parser holds no state between calls. Everything it dispatches goes
// through the capabilities of the Host it was built with.
package quickroll

import (
	"context"
	"fmt"
	"log"
	"strings"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

const (
	msgFormatNotRecognized = "format not recognized"
	msgCouldNotProcess     = "could not process input"
)

// Parser classifies and dispatches quick roll input
type Parser struct {
	host Host
}

// New creates a parser dispatching to the given host
func New(host Host) *Parser {
	return &Parser{host: host}
}

// Parse reports whether the input was recognized and handed to the host.
// Rejections are surfaced through the host's Notifier before false is returned.
func (p *Parser) Parse(ctx context.Context, raw string) bool {
	return p.Evaluate(ctx, raw).OK()
}

// Evaluate parses and dispatches the input and returns the full outcome.
// It never panics and never returns nil.
func (p *Parser) Evaluate(ctx context.Context, raw string) (outcome *Outcome) {
	input := strings.TrimSpace(raw)
	if input == "" {
		log.Println("[QuickRoll] Ignoring empty quick roll input")
		return ignored()
	}

	log.Printf("[QuickRoll] Parsing quick roll input: %s", input)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[QuickRoll] Panic recovered while processing %q: %v", input, r)
			outcome = p.reject(CommandNone, qrerr.Internal(msgCouldNotProcess))
		}
	}()

	kind, canonical, err := p.dispatch(ctx, input)
	if err != nil {
		if err.Code == qrerr.CodeInternal {
			log.Printf("[QuickRoll] Failed to process %q: %v", input, err)
		}
		return p.reject(kind, err)
	}

	log.Printf("[QuickRoll] Dispatched %s command: %s", kind, canonical)
	return dispatched(kind, canonical)
}

func (p *Parser) dispatch(ctx context.Context, input string) (CommandKind, string, *qrerr.Error) {
	first := input[0]

	switch {
	case isDigit(first):
		canonical, err := p.parseDamage(ctx, input)
		return CommandDamage, canonical, err

	case isLetter(first):
		// Whole-line action aliases win over the check grammar
		if actionID, ok := LookupAction(input); ok {
			return CommandAction, actionID, p.invokeAction(ctx, actionID)
		}
		canonical, err := p.parseCheck(ctx, input)
		return CommandCheck, canonical, err

	default:
		return CommandNone, "", qrerr.Validation(msgFormatNotRecognized)
	}
}

func (p *Parser) reject(kind CommandKind, err *qrerr.Error) *Outcome {
	p.notify(err.Message)
	return rejected(kind, err)
}

func (p *Parser) notify(message string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[QuickRoll] Notifier panicked: %v (message: %s)", r, message)
		}
	}()

	if p.host.Notifier == nil {
		log.Printf("[QuickRoll] %s", message)
		return
	}
	p.host.Notifier.Warn(message)
}

// guard turns a panicking capability into an error
func guard(capability string, call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", capability, r)
		}
	}()
	return call()
}

func internalError(err error) *qrerr.Error {
	return qrerr.WrapWithCode(err, qrerr.CodeInternal, msgCouldNotProcess)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
