package engine_test

import (
	"context"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

type stubRoller struct {
	value int
	err   error
	sizes []int
}

func (r *stubRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return r.value, r.err
}

func (r *stubRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, r.err
}

type stubResolver struct {
	items map[string]*entities.Item
	err   error
	calls [][]string
}

func (r *stubResolver) ResolveItems(_ context.Context, ids []string) (map[string]*entities.Item, error) {
	r.calls = append(r.calls, ids)
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[string]*entities.Item)
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out[id] = item
		}
	}
	return out, nil
}

func warriorClass() *entities.Class {
	return &entities.Class{
		ID:              "class-warrior",
		Name:            "Warrior",
		HPBonusPerLevel: 10,
		Abilities: []entities.Ability{
			{Name: "Second Wind", Level: 1},
			{Name: "Cleave", Level: 3},
			{Name: "Whirlwind", Level: 5},
		},
		Subclasses: []entities.Subclass{{
			Name:      "Berserker",
			Abilities: []entities.Ability{{Name: "Rage", Level: 2}, {Name: "Frenzy", Level: 4}},
		}},
	}
}

func mageClass() *entities.Class {
	return &entities.Class{
		ID:                "class-mage",
		Name:              "Mage",
		HPBonusPerLevel:   4,
		ManaBonusPerLevel: 8,
	}
}

func longsword() *entities.Item {
	return &entities.Item{
		ID:       "item-longsword", Name: "Longsword", Category: entities.CategoryWeapon,
		SlotType: entities.SlotMainHand, WeaponHandling: entities.HandlingOneHanded,
	}
}

func greatsword() *entities.Item {
	return &entities.Item{
		ID:       "item-greatsword", Name: "Greatsword", Category: entities.CategoryWeapon,
		SlotType: entities.SlotMainHand, WeaponHandling: entities.HandlingTwoHanded,
	}
}

func towerShield() *entities.Item {
	return &entities.Item{
		ID:       "item-shield", Name: "Tower Shield", Category: entities.CategoryShield,
		SlotType: entities.SlotOffHand, WeaponHandling: entities.HandlingOffHandOnly,
		Bonuses:  []entities.Bonus{{Type: entities.BonusAC, Value: 2}},
	}
}

func chainmail() *entities.Item {
	return &entities.Item{
		ID:       "item-chainmail", Name: "Chainmail", Category: entities.CategoryArmor,
		SlotType: entities.SlotChest,
		Bonuses:  []entities.Bonus{{Type: entities.BonusAC, Value: 3}, {Type: entities.BonusSpeed, Value: -5}},
	}
}

func plate() *entities.Item {
	return &entities.Item{
		ID:       "item-plate", Name: "Plate", Category: entities.CategoryArmor,
		SlotType: entities.SlotChest,
		Bonuses:  []entities.Bonus{{Type: entities.BonusAC, Value: 5}},
	}
}

func potion() *entities.Item {
	return &entities.Item{ID: "item-potion", Name: "Potion", Category: entities.CategoryConsumable}
}

func newCharacter() *entities.Character {
	c := &entities.Character{
		ID:       "char-1",
		Name:     "Borin",
		RaceID:   "race-dwarf",
		ClassID:  "class-warrior",
		OriginID: "origin-soldier",
		Level:    1,
		HP:       10,
		MaxHP:    10,
		BaseAC:   entities.DefaultBaseAC,
		Stats:    entities.Stats{Strength: 4, Dexterity: 2, Intelligence: 1, Charisma: 3},
	}
	return c
}

// sheetWith builds a sheet whose character carries every given item
func sheetWith(c *entities.Character, items ...*entities.Item) *entities.Sheet {
	sheet := &entities.Sheet{
		Character: c,
		Class:     warriorClass(),
		Items:     make(map[string]*entities.Item),
	}
	for _, item := range items {
		sheet.Items[item.ID] = item
		if !c.Carries(item.ID) {
			c.Items = append(c.Items, entities.InventoryEntry{ItemID: item.ID, Quantity: 1})
		}
	}
	return sheet
}

func equippedFlag(c *entities.Character, itemID string) bool {
	idx, ok := c.InventoryIndex(itemID)
	return ok && c.Items[idx].Equipped
}
