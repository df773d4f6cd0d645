package entities

import (
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// InventoryEntry is a stack of one item carried by a character
type InventoryEntry struct {
	ItemID   string `json:"itemId" yaml:"itemId"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Equipped bool   `json:"equipped" yaml:"equipped"`
}

// SpeedModifier adjusts a character's movement
type SpeedModifier struct {
	Source      string `json:"source" yaml:"source"`
	Value       int    `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Character is the aggregate root of a player character. Race, class,
// origin, spells and items are held by id and resolved into a Sheet when
// derived values are needed.
type Character struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RaceID   string `json:"raceId"`
	ClassID  string `json:"classId"`
	OriginID string `json:"originId"`
	Subclass string `json:"subclass,omitempty"`

	SpellIDs      []string         `json:"spellIds"`
	Items         []InventoryEntry `json:"items"`
	EquippedSlots EquippedSlots    `json:"equippedSlots"`

	Level      int   `json:"level"`
	Experience int   `json:"experience"`
	Stats      Stats `json:"stats"`

	// MaxHP and MaxMana are derived from class and level on every save.
	// A nil MaxMana means the character has no mana pool.
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Mana    *int `json:"mana"`
	MaxMana *int `json:"maxMana"`

	BaseAC         int             `json:"baseAC"`
	BaseSpeed      int             `json:"baseSpeed"`
	SpeedModifiers []SpeedModifier `json:"speedModifiers,omitempty"`

	Skills      SkillProficiencies `json:"skills"`
	ExtraSkills []Skill            `json:"extraSkills,omitempty"`

	Backstory string `json:"backstory,omitempty"`
	Currency  int    `json:"currency"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplyDefaults fills the values a brand new character starts with
func (c *Character) ApplyDefaults() {
	c.Name = strings.TrimSpace(c.Name)
	if c.Level == 0 {
		c.Level = MinLevel
	}
	if c.BaseAC == 0 {
		c.BaseAC = DefaultBaseAC
	}
	if c.BaseSpeed == 0 {
		c.BaseSpeed = DefaultBaseSpeed
	}
	if c.Stats == (Stats{}) {
		c.Stats = DefaultStats()
	}
	c.EquippedSlots = EquippedSlots{}
	for i := range c.Items {
		c.Items[i].Equipped = false
	}
}

// Clone returns a deep copy so engine operations never share state with
// their input
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.SpellIDs = slices.Clone(c.SpellIDs)
	out.Items = slices.Clone(c.Items)
	out.SpeedModifiers = slices.Clone(c.SpeedModifiers)
	out.ExtraSkills = slices.Clone(c.ExtraSkills)
	out.Mana = cloneInt(c.Mana)
	out.MaxMana = cloneInt(c.MaxMana)
	return &out
}

// InventoryIndex returns the position of an item in the inventory
func (c *Character) InventoryIndex(itemID string) (int, bool) {
	for i, entry := range c.Items {
		if entry.ItemID == itemID {
			return i, true
		}
	}
	return -1, false
}

// Carries reports whether the item is in the inventory
func (c *Character) Carries(itemID string) bool {
	_, ok := c.InventoryIndex(itemID)
	return ok
}

// KnowsSpell reports whether the spell is in the known spell list
func (c *Character) KnowsSpell(spellID string) bool {
	return slices.Contains(c.SpellIDs, spellID)
}

// HasExtraSkill reports whether a skill was granted outside the flag table
func (c *Character) HasExtraSkill(skill Skill) bool {
	return slices.Contains(c.ExtraSkills, skill)
}

// TotalSpeed is base speed plus every speed modifier
func (c *Character) TotalSpeed() int {
	total := c.BaseSpeed
	for _, m := range c.SpeedModifiers {
		total += m.Value
	}
	return total
}

// Validate checks the stored invariants of a character
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateMaxLength("name", c.Name, maxCharacterNameLength, vb)
	errors.ValidateRequired("raceId", c.RaceID, vb)
	errors.ValidateRequired("classId", c.ClassID, vb)
	errors.ValidateRequired("originId", c.OriginID, vb)
	errors.ValidateRange("level", c.Level, MinLevel, MaxLevel, vb)
	errors.ValidateMin("experience", c.Experience, 0, vb)
	c.Stats.validate(vb)
	errors.ValidateMin("hp", c.HP, 1, vb)
	errors.ValidateMin("maxHp", c.MaxHP, 1, vb)
	if c.HP > c.MaxHP {
		vb.Field("hp", "cannot exceed maxHp")
	}
	switch {
	case c.Mana != nil && *c.Mana < 0:
		vb.Field("mana", "cannot be negative")
	case c.Mana != nil && c.MaxMana == nil:
		vb.Field("mana", "character has no mana pool")
	case c.Mana != nil && *c.Mana > *c.MaxMana:
		vb.Field("mana", "cannot exceed maxMana")
	}
	errors.ValidateMin("baseAC", c.BaseAC, 1, vb)
	errors.ValidateMin("baseSpeed", c.BaseSpeed, 0, vb)
	errors.ValidateMaxLength("backstory", c.Backstory, maxBackstoryLength, vb)
	errors.ValidateMin("currency", c.Currency, 0, vb)
	validateSkills("extraSkills", c.ExtraSkills, vb)

	for i, id := range c.SpellIDs {
		if slices.Index(c.SpellIDs, id) != i {
			vb.Fieldf(indexed("spellIds", i), "duplicate spell %q", id)
		}
	}

	seen := make(map[string]bool, len(c.Items))
	for i, entry := range c.Items {
		f := indexed("items", i)
		errors.ValidateRequired(f+".itemId", entry.ItemID, vb)
		errors.ValidateMin(f+".quantity", entry.Quantity, 1, vb)
		if seen[entry.ItemID] {
			vb.Fieldf(f+".itemId", "duplicate item %q", entry.ItemID)
		}
		seen[entry.ItemID] = true
	}

	for _, slot := range AllSlots {
		if id := c.EquippedSlots.Get(slot); id != "" && !seen[id] {
			vb.Fieldf("equippedSlots."+string(slot), "item %q is not carried", id)
		}
	}

	return vb.Build()
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// IntPtr is a convenience for optional integer fields
func IntPtr(v int) *int {
	return &v
}
