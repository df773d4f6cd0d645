package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// OriginCategory is the broad walk of life an origin comes from
type OriginCategory string

// Origin categories
const (
	OriginNoble       OriginCategory = "Noble"
	OriginCommoner    OriginCategory = "Commoner"
	OriginCriminal    OriginCategory = "Criminal"
	OriginScholar     OriginCategory = "Scholar"
	OriginMilitary    OriginCategory = "Military"
	OriginReligious   OriginCategory = "Religious"
	OriginArtisan     OriginCategory = "Artisan"
	OriginMerchant    OriginCategory = "Merchant"
	OriginEntertainer OriginCategory = "Entertainer"
	OriginHermit      OriginCategory = "Hermit"
	OriginFolkHero    OriginCategory = "Folk Hero"
	OriginOutlander   OriginCategory = "Outlander"
)

var originCategories = []OriginCategory{
	OriginNoble, OriginCommoner, OriginCriminal, OriginScholar, OriginMilitary, OriginReligious,
	OriginArtisan, OriginMerchant, OriginEntertainer, OriginHermit, OriginFolkHero, OriginOutlander,
}

// SocialStanding ranks an origin in society
type SocialStanding string

// Social standings
const (
	StandingOutcast     SocialStanding = "Outcast"
	StandingLowerClass  SocialStanding = "Lower Class"
	StandingMiddleClass SocialStanding = "Middle Class"
	StandingUpperClass  SocialStanding = "Upper Class"
	StandingNobility    SocialStanding = "Nobility"
	StandingRoyalty     SocialStanding = "Royalty"
)

var socialStandings = []SocialStanding{
	StandingOutcast, StandingLowerClass, StandingMiddleClass,
	StandingUpperClass, StandingNobility, StandingRoyalty,
}

// Relationship describes a social connection
type Relationship string

// Relationships
const (
	RelationshipAlly        Relationship = "Ally"
	RelationshipContact     Relationship = "Contact"
	RelationshipRival       Relationship = "Rival"
	RelationshipEnemy       Relationship = "Enemy"
	RelationshipFamily      Relationship = "Family"
	RelationshipMentor      Relationship = "Mentor"
	RelationshipStudent     Relationship = "Student"
	RelationshipGuildMember Relationship = "Guild Member"
)

var relationships = []Relationship{
	RelationshipAlly, RelationshipContact, RelationshipRival, RelationshipEnemy,
	RelationshipFamily, RelationshipMentor, RelationshipStudent, RelationshipGuildMember,
}

// Alignment is the moral leaning of an ideal
type Alignment string

// Alignments
const (
	AlignmentGood    Alignment = "Good"
	AlignmentNeutral Alignment = "Neutral"
	AlignmentEvil    Alignment = "Evil"
	AlignmentLawful  Alignment = "Lawful"
	AlignmentChaotic Alignment = "Chaotic"
	AlignmentAny     Alignment = "Any"
)

var alignments = []Alignment{
	AlignmentGood, AlignmentNeutral, AlignmentEvil, AlignmentLawful, AlignmentChaotic, AlignmentAny,
}

// OriginRarity is how common an origin is
type OriginRarity string

// Origin rarities
const (
	OriginRarityCommon   OriginRarity = "Common"
	OriginRarityUncommon OriginRarity = "Uncommon"
	OriginRarityRare     OriginRarity = "Rare"
	OriginRarityVeryRare OriginRarity = "Very Rare"
)

var originRarities = []OriginRarity{
	OriginRarityCommon, OriginRarityUncommon, OriginRarityRare, OriginRarityVeryRare,
}

// WealthRange bounds the coin an origin starts with
type WealthRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// StartingEquipment is an item an origin begins play with
type StartingEquipment struct {
	ItemName    string `json:"itemName" yaml:"itemName"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Connection is a person tied to an origin
type Connection struct {
	Name         string       `json:"name" yaml:"name"`
	Relationship Relationship `json:"relationship" yaml:"relationship"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty"`
	Location     string       `json:"location,omitempty" yaml:"location,omitempty"`
}

// Ideal is a principle a character from this origin might hold
type Ideal struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Alignment   Alignment `json:"alignment,omitempty" yaml:"alignment,omitempty"`
}

// Feature is a narrative perk of an origin
type Feature struct {
	Name              string `json:"name" yaml:"name"`
	Description       string `json:"description" yaml:"description"`
	MechanicalBenefit string `json:"mechanicalBenefit,omitempty" yaml:"mechanicalBenefit,omitempty"`
}

// Origin is a catalog entry for a character background
type Origin struct {
	ID                string              `json:"id" yaml:"id,omitempty"`
	Name              string              `json:"name" yaml:"name"`
	Description       string              `json:"description" yaml:"description"`
	Category          OriginCategory      `json:"category" yaml:"category"`
	SocialStanding    SocialStanding      `json:"socialStanding" yaml:"socialStanding"`
	StartingWealth    WealthRange         `json:"startingWealth" yaml:"startingWealth"`
	Abilities         []Ability           `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Bonuses           []Bonus             `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
	Skills            []Skill             `json:"skills,omitempty" yaml:"skills,omitempty"`
	Languages         []string            `json:"languages,omitempty" yaml:"languages,omitempty"`
	ToolProficiencies []string            `json:"toolProficiencies,omitempty" yaml:"toolProficiencies,omitempty"`
	StartingEquipment []StartingEquipment `json:"startingEquipment,omitempty" yaml:"startingEquipment,omitempty"`
	Connections       []Connection        `json:"connections,omitempty" yaml:"connections,omitempty"`
	PersonalityTraits []string            `json:"personalityTraits,omitempty" yaml:"personalityTraits,omitempty"`
	Ideals            []Ideal             `json:"ideals,omitempty" yaml:"ideals,omitempty"`
	Bonds             []string            `json:"bonds,omitempty" yaml:"bonds,omitempty"`
	Flaws             []string            `json:"flaws,omitempty" yaml:"flaws,omitempty"`
	Features          []Feature           `json:"features,omitempty" yaml:"features,omitempty"`
	Motivations       []string            `json:"motivations,omitempty" yaml:"motivations,omitempty"`
	Rarity            OriginRarity        `json:"rarity" yaml:"rarity"`
	CreatedAt         time.Time           `json:"createdAt" yaml:"-"`
	UpdatedAt         time.Time           `json:"updatedAt" yaml:"-"`
}

// TotalBonus sums the origin's bonuses of one type
func (o *Origin) TotalBonus(t BonusType) int {
	return SumBonuses(o.Bonuses, t)
}

// Normalize applies save-time defaults
func (o *Origin) Normalize() {
	o.Name = strings.TrimSpace(o.Name)
	if o.SocialStanding == "" {
		o.SocialStanding = StandingMiddleClass
	}
	if o.Rarity == "" {
		o.Rarity = OriginRarityCommon
	}
	o.Skills = dedupe(o.Skills)
	o.Languages = dedupe(trimAll(o.Languages))
	o.ToolProficiencies = dedupe(trimAll(o.ToolProficiencies))
	sortAbilities(o.Abilities)
}

// Validate checks the origin's stored invariants
func (o *Origin) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", o.Name, vb)
	errors.ValidateMaxLength("name", o.Name, maxCatalogNameLength, vb)
	errors.ValidateRequired("description", o.Description, vb)
	errors.ValidateMaxLength("description", o.Description, maxDescriptionLength, vb)
	errors.ValidateEnum("category", o.Category, originCategories, vb)
	errors.ValidateEnum("socialStanding", o.SocialStanding, socialStandings, vb)
	errors.ValidateEnum("rarity", o.Rarity, originRarities, vb)
	errors.ValidateMin("startingWealth.min", o.StartingWealth.Min, 0, vb)
	errors.ValidateMin("startingWealth.max", o.StartingWealth.Max, 0, vb)
	if o.StartingWealth.Min > o.StartingWealth.Max {
		vb.Field("startingWealth", "min cannot exceed max")
	}
	validateAbilities("abilities", o.Abilities, anyLevel, vb)
	validateBonuses("bonuses", o.Bonuses, CatalogBonusTypes, vb)
	validateSkills("skills", o.Skills, vb)

	for i, eq := range o.StartingEquipment {
		f := indexed("startingEquipment", i)
		errors.ValidateRequired(f+".itemName", eq.ItemName, vb)
		errors.ValidateMin(f+".quantity", eq.Quantity, 1, vb)
	}
	for i, c := range o.Connections {
		f := indexed("connections", i)
		errors.ValidateRequired(f+".name", c.Name, vb)
		errors.ValidateEnum(f+".relationship", c.Relationship, relationships, vb)
	}
	for i, ideal := range o.Ideals {
		f := indexed("ideals", i)
		errors.ValidateRequired(f+".name", ideal.Name, vb)
		if ideal.Alignment != "" {
			errors.ValidateEnum(f+".alignment", ideal.Alignment, alignments, vb)
		}
	}
	for i, t := range o.PersonalityTraits {
		errors.ValidateMaxLength(indexed("personalityTraits", i), t, 200, vb)
	}
	for i, b := range o.Bonds {
		errors.ValidateMaxLength(indexed("bonds", i), b, 200, vb)
	}
	for i, fl := range o.Flaws {
		errors.ValidateMaxLength(indexed("flaws", i), fl, 200, vb)
	}
	for i, m := range o.Motivations {
		errors.ValidateMaxLength(indexed("motivations", i), m, 150, vb)
	}
	return vb.Build()
}
