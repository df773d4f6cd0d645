package engine

import (
	"context"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
)

// ItemResolver loads catalog items by id. Ids that do not exist are left
// out of the result.
type ItemResolver interface {
	ResolveItems(ctx context.Context, ids []string) (map[string]*entities.Item, error)
}

// EquipItem places a carried item into its slot, unequipping whatever it
// displaces. Weapons and shields follow hand rules; everything else goes to
// its fixed slot type. preferredSlot only matters for items that fit either
// hand.
func EquipItem(sheet *entities.Sheet, itemID string, preferredSlot entities.Slot) (*entities.Character, error) {
	c := sheet.Character
	if !c.Carries(itemID) {
		return nil, errors.Domainf(errors.ReasonItemNotInInventory, "item %s is not in the inventory", itemID).
			WithMeta("item_id", itemID)
	}
	item, ok := sheet.Item(itemID)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", itemID).WithMeta("item_id", itemID)
	}
	if item.SlotType == "" {
		return nil, errors.Domainf(errors.ReasonItemNotEquipable, "item %s cannot be equipped", item.Name).
			WithMeta("item_id", itemID)
	}

	targets, err := equipTargets(item, preferredSlot)
	if err != nil {
		return nil, err
	}

	out := c.Clone()
	// moving an equipped item releases its old slots first
	unequip(sheet, out, itemID)
	for _, slot := range targets {
		if occupant := out.EquippedSlots.Get(slot); occupant != "" {
			unequip(sheet, out, occupant)
		}
	}
	for _, slot := range targets {
		out.EquippedSlots.Set(slot, itemID)
	}
	syncEquippedFlags(out)
	return out, nil
}

func equipTargets(item *entities.Item, preferred entities.Slot) ([]entities.Slot, error) {
	if item.Category != entities.CategoryWeapon && item.Category != entities.CategoryShield {
		return []entities.Slot{item.SlotType}, nil
	}

	hr := item.HandRequirement()
	switch {
	case hr.Hands == 2:
		return []entities.Slot{entities.SlotMainHand, entities.SlotOffHand}, nil
	case hr.Hands == 1 && hr.CanMainHand && hr.CanOffHand:
		if preferred.IsHand() {
			return []entities.Slot{preferred}, nil
		}
		return []entities.Slot{entities.SlotMainHand}, nil
	case hr.Hands == 1 && hr.CanOffHand:
		return []entities.Slot{entities.SlotOffHand}, nil
	default:
		return nil, errors.Domainf(errors.ReasonAmbiguousEquip, "cannot decide which hand holds %s", item.Name).
			WithMeta("item_id", item.ID)
	}
}

// UnequipItem clears every slot holding the item. A two-handed weapon
// always releases both hands.
func UnequipItem(sheet *entities.Sheet, itemID string) (*entities.Character, error) {
	if len(sheet.Character.EquippedSlots.SlotsHolding(itemID)) == 0 {
		return nil, errors.Domainf(errors.ReasonItemNotEquipped, "item %s is not equipped", itemID).
			WithMeta("item_id", itemID)
	}

	out := sheet.Character.Clone()
	unequip(sheet, out, itemID)
	syncEquippedFlags(out)
	return out, nil
}

func unequip(sheet *entities.Sheet, c *entities.Character, itemID string) {
	for _, slot := range c.EquippedSlots.SlotsHolding(itemID) {
		c.EquippedSlots.Set(slot, "")
	}
	if item, ok := sheet.Item(itemID); ok && item.HandRequirement().Hands == 2 {
		c.EquippedSlots.Set(entities.SlotMainHand, "")
		c.EquippedSlots.Set(entities.SlotOffHand, "")
	}
}

// syncEquippedFlags derives each inventory entry's equipped flag from the
// slot map so the two never disagree.
func syncEquippedFlags(c *entities.Character) {
	for i := range c.Items {
		c.Items[i].Equipped = len(c.EquippedSlots.SlotsHolding(c.Items[i].ItemID)) > 0
	}
}

// TotalArmorClass is base AC plus the AC bonuses of every equipped item.
// An item filling both hands counts once. Equipped items missing from the
// sheet are resolved first; ids that no longer exist add nothing.
func TotalArmorClass(ctx context.Context, sheet *entities.Sheet, resolver ItemResolver) (int, error) {
	if err := populateEquipped(ctx, sheet, resolver); err != nil {
		return 0, err
	}

	total := sheet.Character.BaseAC
	for _, id := range sheet.Character.EquippedSlots.ItemIDs() {
		if item, ok := sheet.Item(id); ok {
			total += item.TotalBonus(entities.BonusAC)
		}
	}
	return total, nil
}

func populateEquipped(ctx context.Context, sheet *entities.Sheet, resolver ItemResolver) error {
	missing := sheet.MissingItems()
	if len(missing) == 0 {
		return nil
	}
	if resolver == nil {
		return errors.Internalf("%d equipped items are unresolved", len(missing))
	}

	resolved, err := resolver.ResolveItems(ctx, missing)
	if err != nil {
		return errors.Wrap(err, "failed to resolve equipped items")
	}

	items := make(map[string]*entities.Item, len(sheet.Items)+len(resolved))
	for id, item := range sheet.Items {
		items[id] = item
	}
	for id, item := range resolved {
		items[id] = item
	}
	sheet.Items = items
	return nil
}
