package entities

import "github.com/KirkDiggler/madking-api/internal/errors"

// BonusType is what a bonus modifies
type BonusType string

// Bonus types
const (
	BonusStrength     BonusType = "STR"
	BonusDexterity    BonusType = "DEX"
	BonusIntelligence BonusType = "INT"
	BonusCharisma     BonusType = "CHA"
	BonusHP           BonusType = "HP"
	BonusMana         BonusType = "Mana"
	BonusAC           BonusType = "AC"
	BonusSpeed        BonusType = "Speed"
	BonusDamage       BonusType = "Damage"
	BonusAttack       BonusType = "AttackBonus"
)

// CatalogBonusTypes are the bonus types races, classes and origins may grant
var CatalogBonusTypes = []BonusType{
	BonusStrength, BonusDexterity, BonusIntelligence, BonusCharisma,
	BonusHP, BonusMana, BonusAC, BonusSpeed,
}

// ItemBonusTypes are the bonus types items may grant
var ItemBonusTypes = append(append([]BonusType{}, CatalogBonusTypes...), BonusDamage, BonusAttack)

// ParseBonusType resolves a bonus type name, failing with UNKNOWN_BONUS_TYPE
func ParseBonusType(name string) (BonusType, error) {
	for _, t := range ItemBonusTypes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", errors.Domainf(errors.ReasonUnknownBonusType, "unknown bonus type %q", name).
		WithMeta("bonus_type", name)
}

// IsStat reports whether the bonus modifies a core ability
func (t BonusType) IsStat() bool {
	switch t {
	case BonusStrength, BonusDexterity, BonusIntelligence, BonusCharisma:
		return true
	}
	return false
}

// Bonus is a typed numeric modifier granted by a catalog entry or item
type Bonus struct {
	Type        BonusType `json:"type" yaml:"type"`
	Value       int       `json:"value" yaml:"value"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Condition   string    `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// SumBonuses adds up every bonus of the given type
func SumBonuses(bonuses []Bonus, t BonusType) int {
	total := 0
	for _, b := range bonuses {
		if b.Type == t {
			total += b.Value
		}
	}
	return total
}

func validateBonuses(field string, bonuses []Bonus, allowed []BonusType, vb *errors.ValidationBuilder) {
	for i, b := range bonuses {
		f := indexed(field, i)
		errors.ValidateEnum(f+".type", b.Type, allowed, vb)
		switch {
		case b.Type.IsStat() && (b.Value > MaxStatBonus || b.Value < -MaxStatBonus):
			vb.Fieldf(f+".value", "stat bonuses must be within ±%d", MaxStatBonus)
		case b.Type == BonusSpeed && b.Value < MinSpeedBonus:
			vb.Fieldf(f+".value", "speed penalty cannot exceed %d", MinSpeedBonus)
		case b.Type == BonusDamage && b.Value < 0:
			vb.Field(f+".value", "damage bonuses cannot be negative")
		}
	}
}
