package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// Size is a creature size category
type Size string

// Sizes
const (
	SizeTiny       Size = "Tiny"
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeHuge       Size = "Huge"
	SizeGargantuan Size = "Gargantuan"
)

var sizes = []Size{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}

// Subrace is a variant of a race with its own grants
type Subrace struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Abilities   []Ability `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Bonuses     []Bonus   `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
	Skills      []Skill   `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Race is a catalog entry for a playable ancestry
type Race struct {
	ID           string    `json:"id" yaml:"id,omitempty"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description" yaml:"description"`
	Size         Size      `json:"size" yaml:"size"`
	Languages    []string  `json:"languages,omitempty" yaml:"languages,omitempty"`
	Abilities    []Ability `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Bonuses      []Bonus   `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
	Skills       []Skill   `json:"skills,omitempty" yaml:"skills,omitempty"`
	Subraces     []Subrace `json:"subraces,omitempty" yaml:"subraces,omitempty"`
	NaturalArmor int       `json:"naturalArmor" yaml:"naturalArmor"`
	Darkvision   int       `json:"darkvision" yaml:"darkvision"`
	CreatedAt    time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt    time.Time `json:"updatedAt" yaml:"-"`
}

// Subrace finds a subrace by name
func (r *Race) Subrace(name string) (*Subrace, bool) {
	for i := range r.Subraces {
		if r.Subraces[i].Name == name {
			return &r.Subraces[i], true
		}
	}
	return nil, false
}

// AllSkills returns the race's skills plus those of the named subrace
func (r *Race) AllSkills(subrace string) []Skill {
	skills := append([]Skill{}, r.Skills...)
	if sr, ok := r.Subrace(subrace); ok {
		skills = append(skills, sr.Skills...)
	}
	return dedupe(skills)
}

// TotalBonus sums bonuses of one type from the race and the named subrace
func (r *Race) TotalBonus(t BonusType, subrace string) int {
	total := SumBonuses(r.Bonuses, t)
	if sr, ok := r.Subrace(subrace); ok {
		total += SumBonuses(sr.Bonuses, t)
	}
	return total
}

// Normalize applies save-time defaults
func (r *Race) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Size == "" {
		r.Size = SizeMedium
	}
	r.Languages = dedupe(trimAll(r.Languages))
	r.Skills = dedupe(r.Skills)
	sortAbilities(r.Abilities)
	for i := range r.Subraces {
		r.Subraces[i].Skills = dedupe(r.Subraces[i].Skills)
		sortAbilities(r.Subraces[i].Abilities)
	}
}

// Validate checks the race's stored invariants
func (r *Race) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", r.Name, vb)
	errors.ValidateMaxLength("name", r.Name, maxCatalogNameLength, vb)
	errors.ValidateRequired("description", r.Description, vb)
	errors.ValidateMaxLength("description", r.Description, maxDescriptionLength, vb)
	errors.ValidateEnum("size", r.Size, sizes, vb)
	errors.ValidateMin("naturalArmor", r.NaturalArmor, 0, vb)
	errors.ValidateMin("darkvision", r.Darkvision, 0, vb)
	validateAbilities("abilities", r.Abilities, anyLevel, vb)
	validateBonuses("bonuses", r.Bonuses, CatalogBonusTypes, vb)
	validateSkills("skills", r.Skills, vb)

	for i, sr := range r.Subraces {
		f := indexed("subraces", i)
		errors.ValidateRequired(f+".name", sr.Name, vb)
		validateAbilities(f+".abilities", sr.Abilities, anyLevel, vb)
		validateBonuses(f+".bonuses", sr.Bonuses, CatalogBonusTypes, vb)
		validateSkills(f+".skills", sr.Skills, vb)
	}
	return vb.Build()
}
