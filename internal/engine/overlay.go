package engine

import (
	"context"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

// Computed is the full set of derived values shown alongside a character
type Computed struct {
	StatModifiers      map[entities.Stat]int  `json:"statModifiers"`
	SkillModifiers     map[entities.Skill]int `json:"skillModifiers"`
	ProficientSkills   []entities.Skill       `json:"proficientSkills"`
	TotalArmorClass    int                    `json:"totalArmorClass"`
	TotalSpeed         int                    `json:"totalSpeed"`
	MaxSpellCircle     int                    `json:"maxSpellCircle"`
	AvailableSpells    []*entities.Spell      `json:"availableSpells"`
	AvailableAbilities []SourcedAbility       `json:"availableAbilities"`
}

// Compute derives every overlay value for a resolved sheet
func Compute(ctx context.Context, sheet *entities.Sheet, resolver ItemResolver) (*Computed, error) {
	c := sheet.Character

	ac, err := TotalArmorClass(ctx, sheet, resolver)
	if err != nil {
		return nil, err
	}

	out := &Computed{
		StatModifiers:      make(map[entities.Stat]int, len(entities.AllStats)),
		SkillModifiers:     make(map[entities.Skill]int, len(entities.AllSkills)),
		ProficientSkills:   []entities.Skill{},
		TotalArmorClass:    ac,
		TotalSpeed:         c.TotalSpeed(),
		MaxSpellCircle:     MaxSpellCircle(c.Level),
		AvailableSpells:    AvailableSpells(c.Level, sheet.Spells),
		AvailableAbilities: AvailableAbilities(sheet),
	}
	for _, stat := range entities.AllStats {
		out.StatModifiers[stat] = StatModifier(c.Stats.Get(stat))
	}
	for _, skill := range entities.AllSkills {
		out.SkillModifiers[skill] = skillModifier(c, skill)
		if IsProficient(c, skill) {
			out.ProficientSkills = append(out.ProficientSkills, skill)
		}
	}
	if out.AvailableAbilities == nil {
		out.AvailableAbilities = []SourcedAbility{}
	}
	return out, nil
}
