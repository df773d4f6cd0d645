package engine

import "github.com/KirkDiggler/madking-api/internal/entities"

// ProficiencyBonus is added to checks of trained skills. Flat, not scaled
// by level.
const ProficiencyBonus = 2

// StatModifier maps a stat value to its check modifier. Stats live in a
// small bounded range so the value is the modifier.
func StatModifier(value int) int {
	return value
}

// IsProficient reports whether a character is trained in a skill, either
// through the flag table or the extra skill list.
func IsProficient(c *entities.Character, skill entities.Skill) bool {
	return c.Skills.Has(skill) || c.HasExtraSkill(skill)
}

// SkillModifier is the governing stat modifier plus the proficiency bonus
// when trained. Unknown names fail with UNKNOWN_SKILL.
func SkillModifier(c *entities.Character, skillName string) (int, error) {
	skill, err := entities.ParseSkill(skillName)
	if err != nil {
		return 0, err
	}
	return skillModifier(c, skill), nil
}

// skillModifier expects a skill that already passed entities.ParseSkill or
// came from entities.AllSkills.
func skillModifier(c *entities.Character, skill entities.Skill) int {
	stat, _ := skill.GoverningStat()
	mod := StatModifier(c.Stats.Get(stat))
	if IsProficient(c, skill) {
		mod += ProficiencyBonus
	}
	return mod
}
