package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// ItemCategory groups items by how they are used
type ItemCategory string

// Item categories
const (
	CategoryWeapon        ItemCategory = "Weapon"
	CategoryArmor         ItemCategory = "Armor"
	CategoryShield        ItemCategory = "Shield"
	CategoryConsumable    ItemCategory = "Consumable"
	CategoryTool          ItemCategory = "Tool"
	CategoryTreasure      ItemCategory = "Treasure"
	CategoryQuest         ItemCategory = "Quest"
	CategoryMaterial      ItemCategory = "Material"
	CategoryContainer     ItemCategory = "Container"
	CategoryMiscellaneous ItemCategory = "Miscellaneous"
)

// ItemCategories lists every item category
var ItemCategories = []ItemCategory{
	CategoryWeapon, CategoryArmor, CategoryShield, CategoryConsumable, CategoryTool,
	CategoryTreasure, CategoryQuest, CategoryMaterial, CategoryContainer, CategoryMiscellaneous,
}

// equipable categories must carry a slot type
func (c ItemCategory) equipable() bool {
	return c == CategoryWeapon || c == CategoryArmor || c == CategoryShield
}

// WeaponHandling says how a weapon or shield uses the hand slots
type WeaponHandling string

// Weapon handling modes
const (
	HandlingNone        WeaponHandling = ""
	HandlingOneHanded   WeaponHandling = "one-handed"
	HandlingTwoHanded   WeaponHandling = "two-handed"
	HandlingOffHandOnly WeaponHandling = "off-hand-only"
)

// WeaponType is the weapon subtype used to default handling
type WeaponType string

// Weapon types
const (
	WeaponTypeNone   WeaponType = ""
	WeaponTypeHeavy  WeaponType = "Heavy"
	WeaponTypeLight  WeaponType = "Light"
	WeaponTypeRanged WeaponType = "Ranged"
	WeaponTypeStaff  WeaponType = "Staff"
	WeaponTypeWand   WeaponType = "Wand"
)

var weaponTypes = []WeaponType{
	WeaponTypeNone, WeaponTypeHeavy, WeaponTypeLight, WeaponTypeRanged, WeaponTypeStaff, WeaponTypeWand,
}

// Rarity scales an item's effective value
type Rarity string

// Item rarities
const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityArtifact  Rarity = "Artifact"
)

var rarityMultipliers = map[Rarity]int{
	RarityCommon:    1,
	RarityUncommon:  3,
	RarityRare:      10,
	RarityEpic:      50,
	RarityLegendary: 200,
	RarityArtifact:  1000,
}

var itemRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityArtifact}

// Multiplier returns the value multiplier of a rarity, 1 when unknown
func (r Rarity) Multiplier() int {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return 1
}

// RequirementType is what an item requirement checks
type RequirementType string

// Requirement types
const (
	RequirementStrength     RequirementType = "STR"
	RequirementDexterity    RequirementType = "DEX"
	RequirementIntelligence RequirementType = "INT"
	RequirementCharisma     RequirementType = "CHA"
	RequirementLevel        RequirementType = "Level"
	RequirementClass        RequirementType = "Class"
	RequirementRace         RequirementType = "Race"
	RequirementSkill        RequirementType = "Skill"
)

var requirementTypes = []RequirementType{
	RequirementStrength, RequirementDexterity, RequirementIntelligence, RequirementCharisma,
	RequirementLevel, RequirementClass, RequirementRace, RequirementSkill,
}

// Requirement is a precondition for using an item. Stat and level
// requirements use Minimum; class, race and skill requirements use Name.
type Requirement struct {
	Type        RequirementType `json:"type" yaml:"type"`
	Minimum     int             `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// RechargeType says how a limited-use item ability comes back
type RechargeType string

// Recharge policies
const (
	RechargeDaily      RechargeType = "daily"
	RechargeShortRest  RechargeType = "short-rest"
	RechargeLongRest   RechargeType = "long-rest"
	RechargeManual     RechargeType = "manual"
	RechargeConsumable RechargeType = "consumable"
	RechargePermanent  RechargeType = "permanent"
)

var rechargeTypes = []RechargeType{
	RechargeDaily, RechargeShortRest, RechargeLongRest, RechargeManual, RechargeConsumable, RechargePermanent,
}

// ItemAbility is a special effect on an item. Nil Uses means unlimited.
type ItemAbility struct {
	Name         string       `json:"name" yaml:"name"`
	Description  string       `json:"description" yaml:"description"`
	Uses         *int         `json:"uses,omitempty" yaml:"uses,omitempty"`
	RechargeType RechargeType `json:"rechargeType,omitempty" yaml:"rechargeType,omitempty"`
}

// HandRequirement describes which hand slots an item can fill
type HandRequirement struct {
	Hands       int  `json:"hands"`
	CanMainHand bool `json:"canMainHand"`
	CanOffHand  bool `json:"canOffHand"`
}

// Item is a catalog entry for anything a character can carry
type Item struct {
	ID             string         `json:"id" yaml:"id,omitempty"`
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description" yaml:"description"`
	Category       ItemCategory   `json:"category" yaml:"category"`
	SlotType       Slot           `json:"slotType,omitempty" yaml:"slotType,omitempty"`
	WeaponHandling WeaponHandling `json:"weaponHandling,omitempty" yaml:"weaponHandling,omitempty"`
	WeaponType     WeaponType     `json:"weaponType,omitempty" yaml:"weaponType,omitempty"`
	Subtype        string         `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Rarity         Rarity         `json:"rarity" yaml:"rarity"`
	BaseValue      int            `json:"baseValue" yaml:"baseValue"`
	Weight         float64        `json:"weight" yaml:"weight"`
	Stackable      bool           `json:"stackable" yaml:"stackable"`
	MaxStackSize   int            `json:"maxStackSize" yaml:"maxStackSize"`
	Requirements   []Requirement  `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Bonuses        []Bonus        `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
	Abilities      []ItemAbility  `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Lore           string         `json:"lore,omitempty" yaml:"lore,omitempty"`
	Tags           []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt      time.Time      `json:"createdAt" yaml:"-"`
	UpdatedAt      time.Time      `json:"updatedAt" yaml:"-"`
}

// HandRequirement derives hand slot usage from category and handling.
// Weapons without handling count as one-handed.
func (i *Item) HandRequirement() HandRequirement {
	switch i.Category {
	case CategoryWeapon:
		switch i.WeaponHandling {
		case HandlingTwoHanded:
			return HandRequirement{Hands: 2, CanMainHand: true}
		case HandlingOffHandOnly:
			return HandRequirement{Hands: 1, CanOffHand: true}
		default:
			return HandRequirement{Hands: 1, CanMainHand: true, CanOffHand: true}
		}
	case CategoryShield:
		return HandRequirement{Hands: 1, CanOffHand: true}
	default:
		return HandRequirement{}
	}
}

// CompatibleSlots lists every slot the item may be equipped into
func (i *Item) CompatibleSlots() []Slot {
	var slots []Slot
	hr := i.HandRequirement()
	if hr.CanMainHand {
		slots = append(slots, SlotMainHand)
	}
	if hr.CanOffHand {
		slots = append(slots, SlotOffHand)
	}
	if i.SlotType != "" && !i.SlotType.IsHand() {
		slots = append(slots, i.SlotType)
	}
	return slots
}

// EffectiveValue is the base value scaled by rarity
func (i *Item) EffectiveValue() int {
	return i.BaseValue * i.Rarity.Multiplier()
}

// TotalBonus sums the item's bonuses of one type
func (i *Item) TotalBonus(t BonusType) int {
	return SumBonuses(i.Bonuses, t)
}

// Normalize applies save-time defaults: rarity, stack size, tag cleanup,
// and hand usage for weapons and shields.
func (i *Item) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	if i.Category == "" {
		i.Category = CategoryMiscellaneous
	}
	if i.Rarity == "" {
		i.Rarity = RarityCommon
	}
	switch {
	case i.Stackable && i.MaxStackSize <= 1:
		i.MaxStackSize = 99
	case !i.Stackable:
		i.MaxStackSize = 1
	}
	i.Tags = sortedTags(i.Tags)

	if i.Category == CategoryWeapon && i.WeaponHandling == HandlingNone {
		switch i.WeaponType {
		case WeaponTypeHeavy, WeaponTypeRanged, WeaponTypeStaff:
			i.WeaponHandling = HandlingTwoHanded
		default:
			i.WeaponHandling = HandlingOneHanded
		}
		i.SlotType = SlotMainHand
	}
	if i.Category == CategoryShield {
		i.WeaponHandling = HandlingOffHandOnly
		i.SlotType = SlotOffHand
	}
}

// Validate checks the item's stored invariants
func (i *Item) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", i.Name, vb)
	errors.ValidateMaxLength("name", i.Name, maxItemNameLength, vb)
	errors.ValidateRequired("description", i.Description, vb)
	errors.ValidateMaxLength("description", i.Description, maxDescriptionLength, vb)
	errors.ValidateEnum("category", i.Category, ItemCategories, vb)
	errors.ValidateEnum("rarity", i.Rarity, itemRarities, vb)
	errors.ValidateEnum("weaponType", i.WeaponType, weaponTypes, vb)
	errors.ValidateMin("baseValue", i.BaseValue, 0, vb)
	errors.ValidateMin("maxStackSize", i.MaxStackSize, 1, vb)
	if i.Weight < 0 {
		vb.Field("weight", "cannot be negative")
	}

	switch {
	case i.Category.equipable() && i.SlotType == "":
		vb.Field("slotType", "equipable items must have a slot type")
	case !i.Category.equipable() && i.SlotType != "":
		vb.Field("slotType", "only weapons, armor and shields have a slot type")
	case i.SlotType != "" && !i.SlotType.Valid():
		vb.Fieldf("slotType", "unknown slot %q", i.SlotType)
	}

	switch i.Category {
	case CategoryWeapon:
		errors.ValidateEnum("weaponHandling", i.WeaponHandling,
			[]WeaponHandling{HandlingOneHanded, HandlingTwoHanded, HandlingOffHandOnly}, vb)
	case CategoryShield:
		if i.WeaponHandling != HandlingNone && i.WeaponHandling != HandlingOffHandOnly {
			vb.Field("weaponHandling", "shields are always off-hand-only")
		}
	default:
		if i.WeaponHandling != HandlingNone {
			vb.Field("weaponHandling", "only weapons and shields have weapon handling")
		}
	}

	for idx, r := range i.Requirements {
		f := indexed("requirements", idx)
		errors.ValidateEnum(f+".type", r.Type, requirementTypes, vb)
		switch r.Type {
		case RequirementStrength, RequirementDexterity, RequirementIntelligence, RequirementCharisma:
			errors.ValidateRange(f+".minimum", r.Minimum, MinStatValue, MaxStatValue, vb)
		case RequirementLevel:
			errors.ValidateRange(f+".minimum", r.Minimum, MinLevel, MaxLevel, vb)
		case RequirementSkill:
			if !Skill(r.Name).Valid() {
				vb.Fieldf(f+".name", "unknown skill %q", r.Name)
			}
		case RequirementClass, RequirementRace:
			errors.ValidateRequired(f+".name", r.Name, vb)
		}
	}

	validateBonuses("bonuses", i.Bonuses, ItemBonusTypes, vb)

	for idx, a := range i.Abilities {
		f := indexed("abilities", idx)
		errors.ValidateRequired(f+".name", a.Name, vb)
		if a.Uses != nil && *a.Uses < 0 {
			vb.Field(f+".uses", "cannot be negative")
		}
		if a.RechargeType != "" {
			errors.ValidateEnum(f+".rechargeType", a.RechargeType, rechargeTypes, vb)
		}
	}
	validateTags("tags", i.Tags, vb)

	return vb.Build()
}
