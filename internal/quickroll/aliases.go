package quickroll

import (
	"maps"
	"slices"
	"strings"
)

// Damage types
const (
	DamageAcid        = "acid"
	DamageCold        = "cold"
	DamageElectricity = "electricity"
	DamageFire        = "fire"
	DamageForce       = "force"
	DamageSonic       = "sonic"
	DamagePoison      = "poison"
	DamageMental      = "mental"
	DamageNegative    = "negative"
	DamagePositive    = "positive"
	DamageBludgeoning = "bludgeoning"
	DamagePiercing    = "piercing"
	DamageSlashing    = "slashing"
)

// Skills and saves
const (
	SkillAcrobatics   = "acrobatics"
	SkillArcana       = "arcana"
	SkillAthletics    = "athletics"
	SkillCrafting     = "crafting"
	SkillDeception    = "deception"
	SkillDiplomacy    = "diplomacy"
	SkillIntimidation = "intimidation"
	SkillMedicine     = "medicine"
	SkillNature       = "nature"
	SkillOccultism    = "occultism"
	SkillPerception   = "perception"
	SkillPerformance  = "performance"
	SkillReligion     = "religion"
	SkillSociety      = "society"
	SkillStealth      = "stealth"
	SkillSurvival     = "survival"
	SkillThievery     = "thievery"
	SaveFortitude     = "fortitude"
	SaveReflex        = "reflex"
	SaveWill          = "will"
)

// Actions
const (
	ActionDemoralize         = "demoralize"
	ActionRaiseAShield       = "raise-a-shield"
	ActionRecallKnowledge    = "recall-knowledge"
	ActionSeek               = "seek"
	ActionHide               = "hide"
	ActionSneak              = "sneak"
	ActionTakeCover          = "take-cover"
	ActionTreatWounds        = "treat-wounds"
	ActionAdministerFirstAid = "administer-first-aid"
	ActionGrapple            = "grapple"
	ActionTrip               = "trip"
	ActionShove              = "shove"
	ActionFeint              = "feint"
	ActionEscape             = "escape"
)

var damageTypeAliases = map[string]string{
	"acid":        DamageAcid,
	"aci":         DamageAcid,
	"cold":        DamageCold,
	"col":         DamageCold,
	"electricity": DamageElectricity,
	"ele":         DamageElectricity,
	"elec":        DamageElectricity,
	"fire":        DamageFire,
	"fir":         DamageFire,
	"force":       DamageForce,
	"sonic":       DamageSonic,
	"son":         DamageSonic,
	"poison":      DamagePoison,
	"poi":         DamagePoison,
	"mental":      DamageMental,
	"men":         DamageMental,
	"negative":    DamageNegative,
	"neg":         DamageNegative,
	"positive":    DamagePositive,
	"pos":         DamagePositive,
	"bludgeoning": DamageBludgeoning,
	"blu":         DamageBludgeoning,
	"blud":        DamageBludgeoning,
	"piercing":    DamagePiercing,
	"pie":         DamagePiercing,
	"slashing":    DamageSlashing,
	"sla":         DamageSlashing,
}

var skillAliases = map[string]string{
	"acrobatics":   SkillAcrobatics,
	"acro":         SkillAcrobatics,
	"arcana":       SkillArcana,
	"arc":          SkillArcana,
	"athletics":    SkillAthletics,
	"ath":          SkillAthletics,
	"crafting":     SkillCrafting,
	"cra":          SkillCrafting,
	"deception":    SkillDeception,
	"dec":          SkillDeception,
	"diplomacy":    SkillDiplomacy,
	"dip":          SkillDiplomacy,
	"intimidation": SkillIntimidation,
	"int":          SkillIntimidation,
	"medicine":     SkillMedicine,
	"med":          SkillMedicine,
	"nature":       SkillNature,
	"nat":          SkillNature,
	"occultism":    SkillOccultism,
	"occ":          SkillOccultism,
	"perception":   SkillPerception,
	"perc":         SkillPerception,
	"performance":  SkillPerformance,
	"perf":         SkillPerformance,
	"religion":     SkillReligion,
	"rel":          SkillReligion,
	"society":      SkillSociety,
	"soc":          SkillSociety,
	"stealth":      SkillStealth,
	"ste":          SkillStealth,
	"survival":     SkillSurvival,
	"sur":          SkillSurvival,
	"thievery":     SkillThievery,
	"thi":          SkillThievery,
	"fortitude":    SaveFortitude,
	"fort":         SaveFortitude,
	"reflex":       SaveReflex,
	"ref":          SaveReflex,
	"will":         SaveWill,
	"wil":          SaveWill,
}

// Keys are normalized: lowercase, no whitespace, no hyphens.
var actionAliases = map[string]string{
	"demoralize":         ActionDemoralize,
	"demo":               ActionDemoralize,
	"raiseashield":       ActionRaiseAShield,
	"raiseshield":        ActionRaiseAShield,
	"shield":             ActionRaiseAShield,
	"ras":                ActionRaiseAShield,
	"recallknowledge":    ActionRecallKnowledge,
	"recall":             ActionRecallKnowledge,
	"rk":                 ActionRecallKnowledge,
	"seek":               ActionSeek,
	"hide":               ActionHide,
	"sneak":              ActionSneak,
	"takecover":          ActionTakeCover,
	"cover":              ActionTakeCover,
	"treatwounds":        ActionTreatWounds,
	"treat":              ActionTreatWounds,
	"tw":                 ActionTreatWounds,
	"administerfirstaid": ActionAdministerFirstAid,
	"firstaid":           ActionAdministerFirstAid,
	"afa":                ActionAdministerFirstAid,
	"grapple":            ActionGrapple,
	"grab":               ActionGrapple,
	"trip":               ActionTrip,
	"shove":              ActionShove,
	"feint":              ActionFeint,
	"escape":             ActionEscape,
}

// LookupDamageType resolves a damage type alias
func LookupDamageType(token string) (string, bool) {
	damageType, ok := damageTypeAliases[strings.ToLower(token)]
	return damageType, ok
}

// LookupSkill resolves a skill or save alias
func LookupSkill(token string) (string, bool) {
	skill, ok := skillAliases[strings.ToLower(token)]
	return skill, ok
}

// LookupAction resolves a whole input line against the action aliases.
// Only exact matches of the normalized line count.
func LookupAction(input string) (string, bool) {
	action, ok := actionAliases[NormalizeActionInput(input)]
	return action, ok
}

// NormalizeActionInput lowercases the input and strips whitespace and hyphens
func NormalizeActionInput(input string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(input), ""))
	return strings.ReplaceAll(normalized, "-", "")
}

// DamageTypeAliases returns a copy of the damage type alias table
func DamageTypeAliases() map[string]string {
	return maps.Clone(damageTypeAliases)
}

// SkillAliases returns a copy of the skill and save alias table
func SkillAliases() map[string]string {
	return maps.Clone(skillAliases)
}

// ActionAliases returns a copy of the action alias table
func ActionAliases() map[string]string {
	return maps.Clone(actionAliases)
}

// ActionIDs returns every canonical action identifier, sorted
func ActionIDs() []string {
	seen := make(map[string]bool)
	ids := make([]string, 0, len(actionAliases))
	for _, id := range actionAliases {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
