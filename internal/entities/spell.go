package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// SpellSchool is a tradition of magic
type SpellSchool string

// Spell schools
const (
	SchoolSacredVeil   SpellSchool = "Sacred Veil"
	SchoolDragonChurch SpellSchool = "Dragon Church"
	SchoolSlumbering   SpellSchool = "Slumbering"
	SchoolDeathweaving SpellSchool = "Deathweaving"
	SchoolAstromancy   SpellSchool = "Astromancy"
	SchoolRootbound    SpellSchool = "Rootbound"
)

var spellSchools = []SpellSchool{
	SchoolSacredVeil, SchoolDragonChurch, SchoolSlumbering,
	SchoolDeathweaving, SchoolAstromancy, SchoolRootbound,
}

// DamageType is the kind of damage an offensive spell deals
type DamageType string

// Damage types
const (
	DamageNone      DamageType = ""
	DamageFire      DamageType = "Fire"
	DamageIce       DamageType = "Ice"
	DamageLightning DamageType = "Lightning"
	DamagePhysical  DamageType = "Physical"
	DamagePoison    DamageType = "Poison"
	DamageDark      DamageType = "Dark"
	DamageLight     DamageType = "Light"
	DamageMental    DamageType = "Mental"
	DamageEnergy    DamageType = "Energy"
)

var damageTypes = []DamageType{
	DamageNone, DamageFire, DamageIce, DamageLightning, DamagePhysical,
	DamagePoison, DamageDark, DamageLight, DamageMental, DamageEnergy,
}

// SpellComponents lists what casting requires
type SpellComponents struct {
	Verbal  bool   `json:"verbal" yaml:"verbal"`
	Gesture bool   `json:"gesture" yaml:"gesture"`
	Focus   bool   `json:"focus" yaml:"focus"`
	Cost    string `json:"cost,omitempty" yaml:"cost,omitempty"`
}

// Spell is a catalog entry for a castable spell
type Spell struct {
	ID            string          `json:"id" yaml:"id,omitempty"`
	Name          string          `json:"name" yaml:"name"`
	Description   string          `json:"description" yaml:"description"`
	Circle        int             `json:"circle" yaml:"circle"`
	ManaCost      int             `json:"manaCost" yaml:"manaCost"`
	School        SpellSchool     `json:"school" yaml:"school"`
	CastingTime   string          `json:"castingTime" yaml:"castingTime"`
	Range         string          `json:"range" yaml:"range"`
	Duration      string          `json:"duration" yaml:"duration"`
	Components    SpellComponents `json:"components" yaml:"components"`
	Area          string          `json:"area,omitempty" yaml:"area,omitempty"`
	DamageType    DamageType      `json:"damageType,omitempty" yaml:"damageType,omitempty"`
	Concentration bool            `json:"concentration" yaml:"concentration"`
	Ritual        bool            `json:"ritual" yaml:"ritual"`
	Tags          []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt     time.Time       `json:"createdAt" yaml:"-"`
	UpdatedAt     time.Time       `json:"updatedAt" yaml:"-"`
}

// Normalize trims the name and cleans up tags
func (s *Spell) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Tags = sortedTags(s.Tags)
}

// Validate checks the spell's stored invariants
func (s *Spell) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", s.Name, vb)
	errors.ValidateMaxLength("name", s.Name, maxItemNameLength, vb)
	errors.ValidateRequired("description", s.Description, vb)
	errors.ValidateMaxLength("description", s.Description, maxDescriptionLength, vb)
	errors.ValidateRange("circle", s.Circle, 1, MaxSpellCircle, vb)
	errors.ValidateMin("manaCost", s.ManaCost, 0, vb)
	errors.ValidateEnum("school", s.School, spellSchools, vb)
	errors.ValidateRequired("castingTime", s.CastingTime, vb)
	errors.ValidateMaxLength("castingTime", s.CastingTime, 50, vb)
	errors.ValidateRequired("range", s.Range, vb)
	errors.ValidateMaxLength("range", s.Range, 50, vb)
	errors.ValidateRequired("duration", s.Duration, vb)
	errors.ValidateMaxLength("duration", s.Duration, 100, vb)
	errors.ValidateMaxLength("area", s.Area, 100, vb)
	errors.ValidateEnum("damageType", s.DamageType, damageTypes, vb)
	validateTags("tags", s.Tags, vb)
	return vb.Build()
}
