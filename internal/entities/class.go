package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// Subclass is a specialization chosen within a class. Its abilities unlock
// on even levels.
type Subclass struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Abilities   []Ability `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Bonuses     []Bonus   `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
}

// Class is a catalog entry for a character class. Its abilities unlock on
// odd levels.
type Class struct {
	ID                string     `json:"id" yaml:"id,omitempty"`
	Name              string     `json:"name" yaml:"name"`
	Description       string     `json:"description" yaml:"description"`
	HPBonusPerLevel   int        `json:"hpBonusPerLevel" yaml:"hpBonusPerLevel"`
	ManaBonusPerLevel int        `json:"manaBonusPerLevel" yaml:"manaBonusPerLevel"`
	Abilities         []Ability  `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Bonuses           []Bonus    `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
	Skills            []Skill    `json:"skills,omitempty" yaml:"skills,omitempty"`
	Subclasses        []Subclass `json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
	CreatedAt         time.Time  `json:"createdAt" yaml:"-"`
	UpdatedAt         time.Time  `json:"updatedAt" yaml:"-"`
}

// Subclass finds a subclass by name
func (c *Class) Subclass(name string) (*Subclass, bool) {
	if name == "" {
		return nil, false
	}
	for i := range c.Subclasses {
		if c.Subclasses[i].Name == name {
			return &c.Subclasses[i], true
		}
	}
	return nil, false
}

// HasManaPool reports whether characters of this class use mana
func (c *Class) HasManaPool() bool {
	return c.ManaBonusPerLevel != 0
}

// Normalize applies save-time defaults
func (c *Class) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Skills = dedupe(c.Skills)
	sortAbilities(c.Abilities)
	for i := range c.Subclasses {
		sortAbilities(c.Subclasses[i].Abilities)
	}
}

// Validate checks the class's stored invariants
func (c *Class) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateMaxLength("name", c.Name, maxCatalogNameLength, vb)
	errors.ValidateRequired("description", c.Description, vb)
	errors.ValidateMaxLength("description", c.Description, maxDescriptionLength, vb)
	errors.ValidateMin("hpBonusPerLevel", c.HPBonusPerLevel, 0, vb)
	errors.ValidateMin("manaBonusPerLevel", c.ManaBonusPerLevel, 0, vb)
	validateAbilities("abilities", c.Abilities, oddLevels, vb)
	validateBonuses("bonuses", c.Bonuses, CatalogBonusTypes, vb)
	validateSkills("skills", c.Skills, vb)

	seen := make(map[string]bool, len(c.Subclasses))
	for i, sc := range c.Subclasses {
		f := indexed("subclasses", i)
		errors.ValidateRequired(f+".name", sc.Name, vb)
		if seen[sc.Name] {
			vb.Fieldf(f+".name", "duplicate subclass %q", sc.Name)
		}
		seen[sc.Name] = true
		validateAbilities(f+".abilities", sc.Abilities, evenLevels, vb)
		validateBonuses(f+".bonuses", sc.Bonuses, CatalogBonusTypes, vb)
	}
	return vb.Build()
}
