package engine

import (
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
)

// LevelUpHPRecovery is the hit points regained when gaining a level
const LevelUpHPRecovery = 5

// MaxHP is level times the class HP bonus, never below 1
func MaxHP(level int, class *entities.Class) int {
	return max(1, level*class.HPBonusPerLevel)
}

// MaxMana is level times the class mana bonus. Nil means the class has no
// mana pool.
func MaxMana(level int, class *entities.Class) *int {
	if !class.HasManaPool() {
		return nil
	}
	return entities.IntPtr(max(0, level*class.ManaBonusPerLevel))
}

// LevelUp advances a character one level. Ceilings are recomputed and
// current HP and mana recover partially: HP by a flat amount, mana by a
// tenth of the new ceiling, both capped.
func LevelUp(c *entities.Character, class *entities.Class) (*entities.Character, error) {
	if c.Level >= entities.MaxLevel {
		return nil, errors.Domainf(errors.ReasonMaxLevelReached, "character is already level %d", c.Level).
			WithMeta("level", c.Level)
	}

	out := c.Clone()
	out.Level++
	out.MaxHP = MaxHP(out.Level, class)
	out.MaxMana = MaxMana(out.Level, class)
	out.HP = min(out.HP+LevelUpHPRecovery, out.MaxHP)

	if out.MaxMana == nil {
		out.Mana = nil
		return out, nil
	}
	current := 0
	if out.Mana != nil {
		current = *out.Mana
	}
	ceiling := *out.MaxMana
	out.Mana = entities.IntPtr(min(current+ceilDiv(ceiling, 10), ceiling))
	return out, nil
}

// ApplyDerived recomputes HP and mana ceilings for the current level and
// brings current values in line. New characters start full; existing ones
// are clamped down, never failed, when a ceiling shrinks. An existing
// character's HP is never refilled here.
func ApplyDerived(c *entities.Character, class *entities.Class, isNew bool) *entities.Character {
	out := c.Clone()
	out.MaxHP = MaxHP(out.Level, class)
	out.MaxMana = MaxMana(out.Level, class)

	if isNew || out.HP > out.MaxHP {
		out.HP = out.MaxHP
	}

	switch {
	case out.MaxMana == nil:
		out.Mana = nil
	case isNew || out.Mana == nil:
		out.Mana = entities.IntPtr(*out.MaxMana)
	case *out.Mana > *out.MaxMana:
		out.Mana = entities.IntPtr(*out.MaxMana)
	case *out.Mana < 0:
		out.Mana = entities.IntPtr(0)
	}
	return out
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
