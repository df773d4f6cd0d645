package engine

import (
	"sort"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

// AbilitySource says where an unlocked ability comes from
type AbilitySource string

// Ability sources in tie-break order
const (
	SourceRace     AbilitySource = "race"
	SourceOrigin   AbilitySource = "origin"
	SourceClass    AbilitySource = "class"
	SourceSubclass AbilitySource = "subclass"
)

var sourceOrder = map[AbilitySource]int{
	SourceRace:     1,
	SourceOrigin:   2,
	SourceClass:    3,
	SourceSubclass: 4,
}

// SourcedAbility is an unlocked ability tagged with its origin
type SourcedAbility struct {
	entities.Ability
	Source AbilitySource `json:"source"`
}

// MaxSpellCircle is the highest circle a character of this level can know
func MaxSpellCircle(level int) int {
	return min(entities.MaxSpellCircle, ceilDiv(level, 2))
}

// AvailableSpells keeps the known spells the character's level can cast
func AvailableSpells(level int, spells []*entities.Spell) []*entities.Spell {
	limit := MaxSpellCircle(level)
	out := make([]*entities.Spell, 0, len(spells))
	for _, sp := range spells {
		if sp != nil && sp.Circle <= limit {
			out = append(out, sp)
		}
	}
	return out
}

// AvailableAbilities gathers every ability the character has unlocked.
// Class abilities count on odd levels and subclass abilities on even
// levels; race and origin abilities have no parity rule. Results are
// ordered by unlock level, then race, origin, class, subclass.
func AvailableAbilities(sheet *entities.Sheet) []SourcedAbility {
	level := sheet.Character.Level
	var out []SourcedAbility

	collect := func(abilities []entities.Ability, source AbilitySource, keep func(int) bool) {
		for _, a := range abilities {
			if a.Level <= level && keep(a.Level) {
				out = append(out, SourcedAbility{Ability: a, Source: source})
			}
		}
	}
	anyLevel := func(int) bool { return true }

	if sheet.Race != nil {
		collect(sheet.Race.Abilities, SourceRace, anyLevel)
	}
	if sheet.Origin != nil {
		collect(sheet.Origin.Abilities, SourceOrigin, anyLevel)
	}
	if sheet.Class != nil {
		collect(sheet.Class.Abilities, SourceClass, func(l int) bool { return l%2 == 1 })
		if sub, ok := sheet.Class.Subclass(sheet.Character.Subclass); ok {
			collect(sub.Abilities, SourceSubclass, func(l int) bool { return l%2 == 0 })
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return sourceOrder[out[i].Source] < sourceOrder[out[j].Source]
	})
	return out
}
