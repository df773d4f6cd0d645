package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/repositories/catalog"
	"github.com/KirkDiggler/madking-api/internal/services/character"
)

// AddItem puts items into the inventory, stacking onto an existing entry
func (o *Orchestrator) AddItem(
	ctx context.Context,
	input *character.AddItemInput,
) (*character.AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, errors.InvalidArgumentf("quantity must be positive, got %d", quantity).
			WithMeta("field", "quantity")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	item, err := o.itemRepo.Get(ctx, catalog.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %s", input.ItemID)
	}

	next := c.Clone()
	idx, ok := next.InventoryIndex(input.ItemID)
	if !ok {
		next.Items = append(next.Items, entities.InventoryEntry{ItemID: input.ItemID})
		idx = len(next.Items) - 1
	}

	total := next.Items[idx].Quantity + quantity
	if total > item.Entry.MaxStackSize {
		return nil, errors.InvalidArgumentf("%s stacks to %d, cannot hold %d",
			item.Entry.Name, item.Entry.MaxStackSize, total).
			WithMeta("item_id", input.ItemID).
			WithMeta("max_stack_size", item.Entry.MaxStackSize)
	}
	next.Items[idx].Quantity = total

	saved, err := o.saveWithClass(ctx, next)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item added",
		"character_id", saved.ID,
		"item_id", input.ItemID,
		"quantity", total)
	o.publish(ctx, EventItemAdded, saved, map[string]any{
		"item_id":  input.ItemID,
		"quantity": quantity,
	})

	return &character.AddItemOutput{Character: saved}, nil
}

// RemoveItem takes items out of the inventory. Dropping the whole stack
// also unequips it.
func (o *Orchestrator) RemoveItem(
	ctx context.Context,
	input *character.RemoveItemInput,
) (*character.RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Quantity < 0 {
		return nil, errors.InvalidArgumentf("quantity must be positive, got %d", input.Quantity).
			WithMeta("field", "quantity")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	idx, ok := c.InventoryIndex(input.ItemID)
	if !ok {
		return nil, errors.Domainf(errors.ReasonItemNotInInventory, "item %s is not in the inventory", input.ItemID).
			WithMeta("item_id", input.ItemID)
	}

	next := c.Clone()
	if input.Quantity == 0 || input.Quantity >= next.Items[idx].Quantity {
		if len(next.EquippedSlots.SlotsHolding(input.ItemID)) > 0 {
			sheet, err := o.resolveSheet(ctx, next)
			if err != nil {
				return nil, err
			}
			next, err = engine.UnequipItem(sheet, input.ItemID)
			if err != nil {
				return nil, err
			}
		}
		idx, _ = next.InventoryIndex(input.ItemID)
		next.Items = append(next.Items[:idx], next.Items[idx+1:]...)
	} else {
		next.Items[idx].Quantity -= input.Quantity
	}

	saved, err := o.saveWithClass(ctx, next)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventItemRemoved, saved, map[string]any{
		"item_id":  input.ItemID,
		"quantity": input.Quantity,
	})
	return &character.RemoveItemOutput{Character: saved}, nil
}

// EquipItem moves a carried item into its slot
func (o *Orchestrator) EquipItem(
	ctx context.Context,
	input *character.EquipItemInput,
) (*character.EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PreferredSlot != "" && !input.PreferredSlot.IsHand() {
		return nil, errors.InvalidArgumentf("preferred slot must be a hand, got %s", input.PreferredSlot).
			WithMeta("field", "preferredSlot")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	sheet, err := o.resolveSheet(ctx, c)
	if err != nil {
		return nil, err
	}

	next, err := engine.EquipItem(sheet, input.ItemID, input.PreferredSlot)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, next, sheet.Class)
	if err != nil {
		return nil, err
	}

	slots := saved.EquippedSlots.SlotsHolding(input.ItemID)
	slog.DebugContext(ctx, "item equipped",
		"character_id", saved.ID,
		"item_id", input.ItemID,
		"slots", slots)
	o.publish(ctx, EventItemEquipped, saved, map[string]any{"item_id": input.ItemID})

	return &character.EquipItemOutput{Character: saved}, nil
}

// UnequipItem clears every slot holding the item
func (o *Orchestrator) UnequipItem(
	ctx context.Context,
	input *character.UnequipItemInput,
) (*character.UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	sheet, err := o.resolveSheet(ctx, c)
	if err != nil {
		return nil, err
	}

	next, err := engine.UnequipItem(sheet, input.ItemID)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, next, sheet.Class)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventItemUnequipped, saved, map[string]any{"item_id": input.ItemID})
	return &character.UnequipItemOutput{Character: saved}, nil
}
