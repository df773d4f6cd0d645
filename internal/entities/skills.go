package entities

import "github.com/KirkDiggler/madking-api/internal/errors"

// Skill is one of the eighteen trained skills
type Skill string

// Strength skills
const (
	SkillHeavyWeapons Skill = "heavyWeapons"
	SkillMuscle       Skill = "muscle"
	SkillAthletics    Skill = "athletics"
	SkillEndurance    Skill = "endurance"
)

// Dexterity skills
const (
	SkillLightWeapons  Skill = "lightWeapons"
	SkillRangedWeapons Skill = "rangedWeapons"
	SkillStealth       Skill = "stealth"
	SkillAcrobatics    Skill = "acrobatics"
	SkillLegerdemain   Skill = "legerdemain"
)

// Charisma skills
const (
	SkillNegotiation  Skill = "negotiation"
	SkillDeception    Skill = "deception"
	SkillIntimidation Skill = "intimidation"
	SkillSeduction    Skill = "seduction"
)

// Intelligence skills
const (
	SkillArcana        Skill = "arcana"
	SkillLore          Skill = "lore"
	SkillInvestigation Skill = "investigation"
	SkillNature        Skill = "nature"
	SkillInsight       Skill = "insight"
)

// AllSkills lists every skill grouped by governing stat
var AllSkills = []Skill{
	SkillHeavyWeapons, SkillMuscle, SkillAthletics, SkillEndurance,
	SkillLightWeapons, SkillRangedWeapons, SkillStealth, SkillAcrobatics, SkillLegerdemain,
	SkillNegotiation, SkillDeception, SkillIntimidation, SkillSeduction,
	SkillArcana, SkillLore, SkillInvestigation, SkillNature, SkillInsight,
}

var skillStats = map[Skill]Stat{
	SkillHeavyWeapons: StatStrength,
	SkillMuscle:       StatStrength,
	SkillAthletics:    StatStrength,
	SkillEndurance:    StatStrength,

	SkillLightWeapons:  StatDexterity,
	SkillRangedWeapons: StatDexterity,
	SkillStealth:       StatDexterity,
	SkillAcrobatics:    StatDexterity,
	SkillLegerdemain:   StatDexterity,

	SkillNegotiation:  StatCharisma,
	SkillDeception:    StatCharisma,
	SkillIntimidation: StatCharisma,
	SkillSeduction:    StatCharisma,

	SkillArcana:        StatIntelligence,
	SkillLore:          StatIntelligence,
	SkillInvestigation: StatIntelligence,
	SkillNature:        StatIntelligence,
	SkillInsight:       StatIntelligence,
}

// ParseSkill resolves a skill name, failing with UNKNOWN_SKILL
func ParseSkill(name string) (Skill, error) {
	skill := Skill(name)
	if _, ok := skillStats[skill]; !ok {
		return "", errors.Domainf(errors.ReasonUnknownSkill, "unknown skill %q", name).
			WithMeta("skill", name)
	}
	return skill, nil
}

// Valid reports whether s is one of the eighteen skills
func (s Skill) Valid() bool {
	_, ok := skillStats[s]
	return ok
}

// GoverningStat returns the ability a skill is rolled with
func (s Skill) GoverningStat() (Stat, bool) {
	stat, ok := skillStats[s]
	return stat, ok
}

// SkillProficiencies holds the trained flag of every skill
type SkillProficiencies struct {
	HeavyWeapons bool `json:"heavyWeapons" yaml:"heavyWeapons"`
	Muscle       bool `json:"muscle" yaml:"muscle"`
	Athletics    bool `json:"athletics" yaml:"athletics"`
	Endurance    bool `json:"endurance" yaml:"endurance"`

	LightWeapons  bool `json:"lightWeapons" yaml:"lightWeapons"`
	RangedWeapons bool `json:"rangedWeapons" yaml:"rangedWeapons"`
	Stealth       bool `json:"stealth" yaml:"stealth"`
	Acrobatics    bool `json:"acrobatics" yaml:"acrobatics"`
	Legerdemain   bool `json:"legerdemain" yaml:"legerdemain"`

	Negotiation  bool `json:"negotiation" yaml:"negotiation"`
	Deception    bool `json:"deception" yaml:"deception"`
	Intimidation bool `json:"intimidation" yaml:"intimidation"`
	Seduction    bool `json:"seduction" yaml:"seduction"`

	Arcana        bool `json:"arcana" yaml:"arcana"`
	Lore          bool `json:"lore" yaml:"lore"`
	Investigation bool `json:"investigation" yaml:"investigation"`
	Nature        bool `json:"nature" yaml:"nature"`
	Insight       bool `json:"insight" yaml:"insight"`
}

// Has reports whether the skill is flagged as trained
func (p SkillProficiencies) Has(skill Skill) bool {
	if f := p.field(skill); f != nil {
		return *f
	}
	return false
}

// Set flags a skill as trained or untrained. Unknown skills are ignored.
func (p *SkillProficiencies) Set(skill Skill, trained bool) {
	if f := p.field(skill); f != nil {
		*f = trained
	}
}

func (p *SkillProficiencies) field(skill Skill) *bool {
	switch skill {
	case SkillHeavyWeapons:
		return &p.HeavyWeapons
	case SkillMuscle:
		return &p.Muscle
	case SkillAthletics:
		return &p.Athletics
	case SkillEndurance:
		return &p.Endurance
	case SkillLightWeapons:
		return &p.LightWeapons
	case SkillRangedWeapons:
		return &p.RangedWeapons
	case SkillStealth:
		return &p.Stealth
	case SkillAcrobatics:
		return &p.Acrobatics
	case SkillLegerdemain:
		return &p.Legerdemain
	case SkillNegotiation:
		return &p.Negotiation
	case SkillDeception:
		return &p.Deception
	case SkillIntimidation:
		return &p.Intimidation
	case SkillSeduction:
		return &p.Seduction
	case SkillArcana:
		return &p.Arcana
	case SkillLore:
		return &p.Lore
	case SkillInvestigation:
		return &p.Investigation
	case SkillNature:
		return &p.Nature
	case SkillInsight:
		return &p.Insight
	default:
		return nil
	}
}

func validateSkills(field string, skills []Skill, vb *errors.ValidationBuilder) {
	for i, s := range skills {
		if !s.Valid() {
			vb.Fieldf(indexed(field, i), "unknown skill %q", s)
		}
	}
}
