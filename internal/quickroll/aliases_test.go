package quickroll_test

import (
	"testing"

	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
	"github.com/stretchr/testify/assert"
)

func TestAliasTables_ProduceClosedSets(t *testing.T) {
	damageTypes := map[string]bool{
		"acid": true, "cold": true, "electricity": true, "fire": true, "force": true,
		"sonic": true, "poison": true, "mental": true, "negative": true, "positive": true,
		"bludgeoning": true, "piercing": true, "slashing": true,
	}
	for alias, canonical := range quickroll.DamageTypeAliases() {
		assert.True(t, damageTypes[canonical], "alias %q maps outside the damage types", alias)
	}

	seen := map[string]bool{}
	for _, canonical := range quickroll.SkillAliases() {
		seen[canonical] = true
	}
	assert.Len(t, seen, 20, "17 skills and 3 saves")

	assert.Len(t, quickroll.ActionIDs(), 14)
}

func TestAliasTables_CanonicalNamesResolveToThemselves(t *testing.T) {
	for _, canonical := range quickroll.DamageTypeAliases() {
		got, ok := quickroll.LookupDamageType(canonical)
		assert.True(t, ok)
		assert.Equal(t, canonical, got)
	}
	for _, canonical := range quickroll.SkillAliases() {
		got, ok := quickroll.LookupSkill(canonical)
		assert.True(t, ok)
		assert.Equal(t, canonical, got)
	}
	for _, id := range quickroll.ActionIDs() {
		got, ok := quickroll.LookupAction(id)
		assert.True(t, ok, id)
		assert.Equal(t, id, got)
	}
}

func TestLookups_AreCaseInsensitiveAndTotal(t *testing.T) {
	got, ok := quickroll.LookupDamageType("BLUD")
	assert.True(t, ok)
	assert.Equal(t, quickroll.DamageBludgeoning, got)

	got, ok = quickroll.LookupSkill("Perc")
	assert.True(t, ok)
	assert.Equal(t, quickroll.SkillPerception, got)

	_, ok = quickroll.LookupDamageType("")
	assert.False(t, ok)
	_, ok = quickroll.LookupSkill("perce")
	assert.False(t, ok)
}

func TestAliasTables_AreCopies(t *testing.T) {
	aliases := quickroll.DamageTypeAliases()
	aliases["xyz"] = "fire"

	_, ok := quickroll.LookupDamageType("xyz")
	assert.False(t, ok)
}

func TestNormalizeActionInput(t *testing.T) {
	tests := map[string]string{
		"Raise a Shield":     "raiseashield",
		"raise-a-shield":     "raiseashield",
		"  Treat   Wounds ":  "treatwounds",
		"first-aid":          "firstaid",
		"Recall\tKnowledge":  "recallknowledge",
	}

	for input, want := range tests {
		assert.Equal(t, want, quickroll.NormalizeActionInput(input), input)
	}

	_, ok := quickroll.LookupAction("raise a shield now")
	assert.False(t, ok, "no partial matching")
}

func TestStandardDC(t *testing.T) {
	tests := []struct {
		level int
		want  int
		ok    bool
	}{
		{level: 0, want: 14, ok: true},
		{level: 3, want: 18, ok: true},
		{level: 11, want: 28, ok: true},
		{level: 25, want: 50, ok: true},
		{level: -1, ok: false},
		{level: 26, ok: false},
	}

	for _, tt := range tests {
		got, ok := quickroll.StandardDC(tt.level)
		assert.Equal(t, tt.ok, ok, "level %d", tt.level)
		assert.Equal(t, tt.want, got, "level %d", tt.level)
	}

	previous := 0
	for level := 0; level <= quickroll.MaxStandardDCLevel; level++ {
		dc, ok := quickroll.StandardDC(level)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, dc, previous)
		previous = dc
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "/r (2d6+4)[fire]", quickroll.FormatDamageCommand("2d6+4", quickroll.DamageFire))
	assert.Equal(t, "@Check[perception|dc:28]", quickroll.FormatCheck(quickroll.SkillPerception, 28))
}

func TestParseCheck(t *testing.T) {
	skill, dc, ok := quickroll.ParseCheck(quickroll.FormatCheck(quickroll.SkillThievery, 31))
	assert.True(t, ok)
	assert.Equal(t, quickroll.SkillThievery, skill)
	assert.Equal(t, 31, dc)

	for _, content := range []string{"", "@Check[perception]", "@Check[Perception|dc:3]", "perc 11"} {
		_, _, ok := quickroll.ParseCheck(content)
		assert.False(t, ok, content)
	}
}
