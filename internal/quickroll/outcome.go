package quickroll

import (
	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

// OutcomeKind classifies the result of one parser invocation
type OutcomeKind int

const (
	// OutcomeIgnored is returned for empty input; nothing is dispatched or notified
	OutcomeIgnored OutcomeKind = iota

	// OutcomeDispatched means a canonical command reached a host capability
	OutcomeDispatched

	// OutcomeRejected means the input failed to parse, validate or dispatch
	OutcomeRejected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeDispatched:
		return "dispatched"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// CommandKind names the grammar that recognized the input
type CommandKind string

const (
	CommandNone   CommandKind = ""
	CommandDamage CommandKind = "damage"
	CommandCheck  CommandKind = "check"
	CommandAction CommandKind = "action"
)

// Outcome is the transient result of parsing one line
type Outcome struct {
	Kind OutcomeKind

	// Command is the grammar that matched, if any
	Command CommandKind

	// Canonical is the command string handed to the host (the action id for actions)
	Canonical string

	// Err carries the rejection reason; its message is what the user is shown
	Err *qrerr.Error
}

// OK reports whether the input was dispatched
func (o *Outcome) OK() bool {
	return o != nil && o.Kind == OutcomeDispatched
}

// Reason returns the user readable rejection message
func (o *Outcome) Reason() string {
	if o == nil || o.Err == nil {
		return ""
	}
	return o.Err.Message
}

func ignored() *Outcome {
	return &Outcome{Kind: OutcomeIgnored}
}

func dispatched(kind CommandKind, canonical string) *Outcome {
	return &Outcome{
		Kind:      OutcomeDispatched,
		Command:   kind,
		Canonical: canonical,
	}
}

func rejected(kind CommandKind, err *qrerr.Error) *Outcome {
	return &Outcome{
		Kind:    OutcomeRejected,
		Command: kind,
		Err:     err,
	}
}
