package testutils

import (
	"github.com/KirkDiggler/madking-api/internal/entities"
)

// Catalog fixture IDs
const (
	RaceDwarfID      = "race_dwarf"
	ClassWarriorID   = "class_warrior"
	ClassMageID      = "class_mage"
	OriginSoldierID  = "origin_soldier"
	ItemLongswordID  = "item_longsword"
	ItemGreatswordID = "item_greatsword"
	ItemShieldID     = "item_shield"
	ItemChainmailID  = "item_chainmail"
	ItemPotionID     = "item_potion"
	SpellSparkID     = "spell_spark"
	SpellFireballID  = "spell_fireball"
)

// TestDwarf returns a race with one subrace and level-gated abilities
func TestDwarf() *entities.Race {
	return &entities.Race{
		ID:          RaceDwarfID,
		Name:        "Dwarf",
		Description: "Stout folk of the mountain halls",
		Size:        entities.SizeMedium,
		Bonuses:     []entities.Bonus{{Type: entities.BonusStrength, Value: 1}},
		Abilities: []entities.Ability{
			{Name: "Darkvision", Description: "Sees in the dark", Level: 1},
			{Name: "Stone Endurance", Description: "Shrugs off a blow", Level: 2},
		},
		Subraces: []entities.Subrace{{
			Name:    "Mountain",
			Bonuses: []entities.Bonus{{Type: entities.BonusAC, Value: 1}},
		}},
	}
}

// TestWarrior returns a martial class with no mana pool
func TestWarrior() *entities.Class {
	return &entities.Class{
		ID:              ClassWarriorID,
		Name:            "Warrior",
		Description:     "Trained in arms",
		HPBonusPerLevel: 10,
		Abilities: []entities.Ability{
			{Name: "Second Wind", Description: "Recover in battle", Level: 1},
			{Name: "Cleave", Description: "Strike two foes", Level: 3},
		},
		Subclasses: []entities.Subclass{{
			Name:      "Berserker",
			Abilities: []entities.Ability{{Name: "Rage", Description: "Fury", Level: 2}},
		}},
	}
}

// TestMage returns a caster class with a mana pool
func TestMage() *entities.Class {
	return &entities.Class{
		ID:                ClassMageID,
		Name:              "Mage",
		Description:       "Student of the arcane",
		HPBonusPerLevel:   4,
		ManaBonusPerLevel: 8,
		Abilities:         []entities.Ability{{Name: "Arcane Focus", Description: "Channel power", Level: 1}},
	}
}

// TestSoldier returns an origin with background tables filled in
func TestSoldier() *entities.Origin {
	return &entities.Origin{
		ID:                OriginSoldierID,
		Name:              "Soldier",
		Description:       "Served in a standing army",
		Category:          entities.OriginMilitary,
		SocialStanding:    entities.StandingLowerClass,
		Rarity:            entities.OriginRarityCommon,
		PersonalityTraits: []string{"Disciplined", "Blunt"},
		Ideals:            []entities.Ideal{{Name: "Duty", Description: "Orders matter", Alignment: entities.AlignmentLawful}},
		Bonds:             []string{"My old unit"},
		Flaws:             []string{"Stubborn"},
		Motivations:       []string{"Glory"},
		StartingWealth:    entities.WealthRange{Min: 10, Max: 20},
		Connections: []entities.Connection{
			{Name: "Sergeant Hale", Relationship: entities.RelationshipMentor},
			{Name: "Quartermaster Ives", Relationship: entities.RelationshipAlly},
			{Name: "Captain Mora", Relationship: entities.RelationshipRival},
		},
		Abilities: []entities.Ability{{Name: "Military Rank", Description: "Soldiers defer", Level: 1}},
	}
}

// TestLongsword returns a one-handed weapon
func TestLongsword() *entities.Item {
	return &entities.Item{
		ID:             ItemLongswordID,
		Name:           "Longsword",
		Description:    "A balanced steel blade",
		Category:       entities.CategoryWeapon,
		SlotType:       entities.SlotMainHand,
		WeaponType:     entities.WeaponTypeLight,
		WeaponHandling: entities.HandlingOneHanded,
		BaseValue:      15,
		Rarity:         entities.RarityCommon,
		MaxStackSize:   1,
	}
}

// TestGreatsword returns a two-handed weapon
func TestGreatsword() *entities.Item {
	return &entities.Item{
		ID:             ItemGreatswordID,
		Name:           "Greatsword",
		Description:    "A blade taller than its bearer",
		Category:       entities.CategoryWeapon,
		SlotType:       entities.SlotMainHand,
		WeaponType:     entities.WeaponTypeHeavy,
		WeaponHandling: entities.HandlingTwoHanded,
		BaseValue:      50,
		Rarity:         entities.RarityCommon,
		MaxStackSize:   1,
	}
}

// TestShield returns an off-hand-only shield worth +2 AC
func TestShield() *entities.Item {
	return &entities.Item{
		ID:             ItemShieldID,
		Name:           "Shield",
		Description:    "Oak bound in iron",
		Category:       entities.CategoryShield,
		SlotType:       entities.SlotOffHand,
		WeaponHandling: entities.HandlingOffHandOnly,
		BaseValue:      10,
		Rarity:         entities.RarityCommon,
		MaxStackSize:   1,
		Bonuses:        []entities.Bonus{{Type: entities.BonusAC, Value: 2}},
	}
}

// TestChainmail returns body armor worth +3 AC
func TestChainmail() *entities.Item {
	return &entities.Item{
		ID:           ItemChainmailID,
		Name:         "Chainmail",
		Description:  "Interlocking rings",
		Category:     entities.CategoryArmor,
		SlotType:     entities.SlotChest,
		BaseValue:    75,
		Rarity:       entities.RarityCommon,
		MaxStackSize: 1,
		Bonuses:      []entities.Bonus{{Type: entities.BonusAC, Value: 3}},
	}
}

// TestPotion returns a stackable consumable
func TestPotion() *entities.Item {
	return &entities.Item{
		ID:           ItemPotionID,
		Name:         "Healing Potion",
		Description:  "Restores a little health",
		Category:     entities.CategoryConsumable,
		BaseValue:    5,
		Rarity:       entities.RarityCommon,
		Stackable:    true,
		MaxStackSize: 99,
	}
}

// TestSpark returns a first circle spell
func TestSpark() *entities.Spell {
	return &entities.Spell{
		ID:          SpellSparkID,
		Name:        "Spark",
		Description: "A crackle of static",
		CastingTime: "1 action",
		Range:       "30 feet",
		Duration:    "Instantaneous",
		DamageType:  entities.DamageLightning,
		School:      entities.SchoolDragonChurch,
		Circle:      1,
		ManaCost:    2,
	}
}

// TestFireball returns a third circle spell
func TestFireball() *entities.Spell {
	return &entities.Spell{
		ID:          SpellFireballID,
		Name:        "Fireball",
		Description: "A roaring sphere of flame",
		CastingTime: "1 action",
		Range:       "120 feet",
		Duration:    "Instantaneous",
		DamageType:  entities.DamageFire,
		School:      entities.SchoolDragonChurch,
		Circle:      3,
		ManaCost:    10,
	}
}
