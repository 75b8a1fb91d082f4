package dice

import (
	"fmt"
	"regexp"
	"strings"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

var commandPattern = regexp.MustCompile(`^/r \((.+)\)\[([a-z]+)\]$`)

// Command is a canonical damage roll command, e.g. "/r (2d6+4)[fire]"
type Command struct {
	Formula    string
	DamageType string
}

// ParseCommand reads a canonical damage command. The chat-wrapped form "(/r ...)" is also accepted.
func ParseCommand(command string) (*Command, error) {
	command = strings.TrimSpace(command)
	if strings.HasPrefix(command, "(/r ") && strings.HasSuffix(command, ")") {
		command = command[1 : len(command)-1]
	}

	match := commandPattern.FindStringSubmatch(command)
	if match == nil {
		return nil, qrerr.InvalidArgumentf("not a roll command: %q", command)
	}

	return &Command{
		Formula:    match[1],
		DamageType: match[2],
	}, nil
}

func (c *Command) String() string {
	return fmt.Sprintf("/r (%s)[%s]", c.Formula, c.DamageType)
}

// Roll evaluates the command formula
func (c *Command) Roll(roller Roller) (*Result, error) {
	return Evaluate(c.Formula, roller)
}
