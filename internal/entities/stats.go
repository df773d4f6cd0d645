package entities

import "github.com/KirkDiggler/madking-api/internal/errors"

// Stat is one of the four core abilities
type Stat string

// Core abilities
const (
	StatStrength     Stat = "str"
	StatDexterity    Stat = "dex"
	StatIntelligence Stat = "int"
	StatCharisma     Stat = "cha"
)

// AllStats lists the core abilities in display order
var AllStats = []Stat{StatStrength, StatDexterity, StatIntelligence, StatCharisma}

// Stats holds the four core ability values of a character
type Stats struct {
	Strength     int `json:"str" yaml:"str"`
	Dexterity    int `json:"dex" yaml:"dex"`
	Intelligence int `json:"int" yaml:"int"`
	Charisma     int `json:"cha" yaml:"cha"`
}

// DefaultStats returns every ability at the minimum value
func DefaultStats() Stats {
	return Stats{
		Strength:     MinStatValue,
		Dexterity:    MinStatValue,
		Intelligence: MinStatValue,
		Charisma:     MinStatValue,
	}
}

// Get returns the value of a single ability. Unknown stats read as zero.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Strength
	case StatDexterity:
		return s.Dexterity
	case StatIntelligence:
		return s.Intelligence
	case StatCharisma:
		return s.Charisma
	default:
		return 0
	}
}

func (s Stats) validate(vb *errors.ValidationBuilder) {
	for _, stat := range AllStats {
		errors.ValidateRange("stats."+string(stat), s.Get(stat), MinStatValue, MaxStatValue, vb)
	}
}
