// Package actions stores the named table actions a quick roll can invoke
// and binds them to whatever announces their use.
package actions

import (
	"strings"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
)

// Action costs outside the one to three action range
const (
	CostFree     = 0
	CostReaction = -1
	maxCost      = 3
)

// Definition describes a table action
type Definition struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Cost        int      `yaml:"cost"`
	Traits      []string `yaml:"traits"`
	Description string   `yaml:"description"`
}

// Validate checks that the definition names a known action
func (d *Definition) Validate() error {
	if d == nil {
		return qrerr.InvalidArgumentf("action definition cannot be nil")
	}
	if d.ID == "" {
		return qrerr.InvalidArgumentf("action definition ID is required")
	}
	if id, ok := quickroll.LookupAction(d.ID); !ok || id != d.ID {
		return qrerr.InvalidArgumentf("unknown action '%s'", d.ID).WithMeta("action", d.ID)
	}
	if strings.TrimSpace(d.Name) == "" {
		return qrerr.InvalidArgumentf("action '%s' needs a name", d.ID).WithMeta("action", d.ID)
	}
	if d.Cost < CostReaction || d.Cost > maxCost {
		return qrerr.InvalidArgumentf("action '%s' has invalid cost %d", d.ID, d.Cost).WithMeta("action", d.ID)
	}
	return nil
}

// CostLabel renders the cost the way a stat block does
func (d *Definition) CostLabel() string {
	switch d.Cost {
	case CostReaction:
		return "reaction"
	case CostFree:
		return "no action"
	case 1:
		return "1 action"
	default:
		return strings.Repeat("◆", d.Cost)
	}
}

// Clone returns a deep copy
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	clone := *d
	clone.Traits = append([]string(nil), d.Traits...)
	return &clone
}

// BuiltinDefinitions returns a definition for every action the parser recognizes
func BuiltinDefinitions() []*Definition {
	return []*Definition{
		{
			ID: quickroll.ActionDemoralize, Name: "Demoralize", Cost: 1,
			Traits:      []string{"auditory", "concentrate", "emotion", "mental"},
			Description: "Intimidation check against the Will DC of a creature within 30 feet.",
		},
		{
			ID: quickroll.ActionRaiseAShield, Name: "Raise a Shield", Cost: 1,
			Description: "Gain your shield's circumstance bonus to AC until the start of your next turn.",
		},
		{
			ID: quickroll.ActionRecallKnowledge, Name: "Recall Knowledge", Cost: 1,
			Traits:      []string{"concentrate", "secret"},
			Description: "Skill check to remember a useful piece of information.",
		},
		{
			ID: quickroll.ActionSeek, Name: "Seek", Cost: 1,
			Traits:      []string{"concentrate", "secret"},
			Description: "Perception check to find hidden creatures or objects.",
		},
		{
			ID: quickroll.ActionHide, Name: "Hide", Cost: 1,
			Traits:      []string{"secret"},
			Description: "Stealth check against the Perception DC of observers.",
		},
		{
			ID: quickroll.ActionSneak, Name: "Sneak", Cost: 1,
			Traits:      []string{"move", "secret"},
			Description: "Move up to half your Speed while staying unnoticed.",
		},
		{
			ID: quickroll.ActionTakeCover, Name: "Take Cover", Cost: 1,
			Description: "Improve the cover you have until you move or attack.",
		},
		{
			ID: quickroll.ActionTreatWounds, Name: "Treat Wounds", Cost: 0,
			Traits:      []string{"exploration", "healing", "manipulate"},
			Description: "Medicine check to restore Hit Points over 10 minutes.",
		},
		{
			ID: quickroll.ActionAdministerFirstAid, Name: "Administer First Aid", Cost: 2,
			Traits:      []string{"manipulate"},
			Description: "Medicine check to stabilize a dying creature or stop bleeding.",
		},
		{
			ID: quickroll.ActionGrapple, Name: "Grapple", Cost: 1,
			Traits:      []string{"attack"},
			Description: "Athletics check against the target's Fortitude DC.",
		},
		{
			ID: quickroll.ActionTrip, Name: "Trip", Cost: 1,
			Traits:      []string{"attack"},
			Description: "Athletics check against the target's Reflex DC.",
		},
		{
			ID: quickroll.ActionShove, Name: "Shove", Cost: 1,
			Traits:      []string{"attack"},
			Description: "Athletics check against the target's Fortitude DC.",
		},
		{
			ID: quickroll.ActionFeint, Name: "Feint", Cost: 1,
			Traits:      []string{"mental"},
			Description: "Deception check against the Perception DC of a creature in reach.",
		},
		{
			ID: quickroll.ActionEscape, Name: "Escape", Cost: 1,
			Traits:      []string{"attack"},
			Description: "Unarmed attack, Acrobatics or Athletics check against the DC of what holds you.",
		},
	}
}
