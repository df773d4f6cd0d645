package entities

import (
	"slices"
	"strings"
)

// CharacterUpdate carries the profile fields of a character that may be
// changed after creation. Nil fields keep the stored value. Level, spells,
// inventory and equipment have their own operations and are not here.
type CharacterUpdate struct {
	Name           *string             `json:"name,omitempty"`
	RaceID         *string             `json:"raceId,omitempty"`
	ClassID        *string             `json:"classId,omitempty"`
	OriginID       *string             `json:"originId,omitempty"`
	Subclass       *string             `json:"subclass,omitempty"`
	Experience     *int                `json:"experience,omitempty"`
	Stats          *Stats              `json:"stats,omitempty"`
	HP             *int                `json:"hp,omitempty"`
	Mana           *int                `json:"mana,omitempty"`
	BaseAC         *int                `json:"baseAC,omitempty"`
	BaseSpeed      *int                `json:"baseSpeed,omitempty"`
	SpeedModifiers []SpeedModifier     `json:"speedModifiers,omitempty"`
	Skills         *SkillProficiencies `json:"skills,omitempty"`
	ExtraSkills    []Skill             `json:"extraSkills,omitempty"`
	Backstory      *string             `json:"backstory,omitempty"`
	Currency       *int                `json:"currency,omitempty"`
}

// UpdateFrom returns an update that sets every profile field to the
// character's current value
func UpdateFrom(c *Character) *CharacterUpdate {
	return &CharacterUpdate{
		Name:           &c.Name,
		RaceID:         &c.RaceID,
		ClassID:        &c.ClassID,
		OriginID:       &c.OriginID,
		Subclass:       &c.Subclass,
		Experience:     &c.Experience,
		Stats:          &c.Stats,
		HP:             &c.HP,
		Mana:           cloneInt(c.Mana),
		BaseAC:         &c.BaseAC,
		BaseSpeed:      &c.BaseSpeed,
		SpeedModifiers: slices.Clone(c.SpeedModifiers),
		Skills:         &c.Skills,
		ExtraSkills:    slices.Clone(c.ExtraSkills),
		Backstory:      &c.Backstory,
		Currency:       &c.Currency,
	}
}

// ApplyTo merges the update into a copy of c. A nil slice keeps the stored
// list; an empty one clears it.
func (u *CharacterUpdate) ApplyTo(c *Character) *Character {
	out := c.Clone()
	if u == nil {
		return out
	}

	setString(&out.Name, u.Name)
	out.Name = strings.TrimSpace(out.Name)
	setString(&out.RaceID, u.RaceID)
	setString(&out.ClassID, u.ClassID)
	setString(&out.OriginID, u.OriginID)
	setString(&out.Subclass, u.Subclass)
	setInt(&out.Experience, u.Experience)
	if u.Stats != nil {
		out.Stats = *u.Stats
	}
	setInt(&out.HP, u.HP)
	if u.Mana != nil {
		out.Mana = cloneInt(u.Mana)
	}
	setInt(&out.BaseAC, u.BaseAC)
	setInt(&out.BaseSpeed, u.BaseSpeed)
	if u.SpeedModifiers != nil {
		out.SpeedModifiers = slices.Clone(u.SpeedModifiers)
	}
	if u.Skills != nil {
		out.Skills = *u.Skills
	}
	if u.ExtraSkills != nil {
		out.ExtraSkills = slices.Clone(u.ExtraSkills)
	}
	setString(&out.Backstory, u.Backstory)
	setInt(&out.Currency, u.Currency)

	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
