package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
)

// CheckDie is the die size rolled for skill checks
const CheckDie = 20

// SkillCheck is the outcome of a single skill roll
type SkillCheck struct {
	Skill        entities.Skill `json:"skill"`
	Roll         int            `json:"roll"`
	Modifier     int            `json:"modifier"`
	Total        int            `json:"total"`
	IsProficient bool           `json:"isProficient"`
}

// RollSkillCheck rolls a d20 with the given roller and adds the skill
// modifier.
func RollSkillCheck(roller dice.Roller, c *entities.Character, skillName string) (*SkillCheck, error) {
	skill, err := entities.ParseSkill(skillName)
	if err != nil {
		return nil, err
	}

	roll, err := roller.Roll(CheckDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll skill check")
	}

	mod := skillModifier(c, skill)
	return &SkillCheck{
		Skill:        skill,
		Roll:         roll,
		Modifier:     mod,
		Total:        roll + mod,
		IsProficient: IsProficient(c, skill),
	}, nil
}
