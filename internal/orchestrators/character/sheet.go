package character

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/repositories/catalog"
)

// resolveSheet loads every catalog entry the character references in
// parallel. Missing race, class or origin fail with NotFound; missing
// items and spells are left out and reported by checkReferences.
func (o *Orchestrator) resolveSheet(ctx context.Context, c *entities.Character) (*entities.Sheet, error) {
	sheet := &entities.Sheet{
		Character: c,
		Items:     map[string]*entities.Item{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := o.raceRepo.Get(gctx, catalog.GetInput{ID: c.RaceID})
		if err != nil {
			return errors.Wrapf(err, "failed to get race %s", c.RaceID)
		}
		sheet.Race = out.Entry
		return nil
	})
	g.Go(func() error {
		out, err := o.classRepo.Get(gctx, catalog.GetInput{ID: c.ClassID})
		if err != nil {
			return errors.Wrapf(err, "failed to get class %s", c.ClassID)
		}
		sheet.Class = out.Entry
		return nil
	})
	g.Go(func() error {
		out, err := o.originRepo.Get(gctx, catalog.GetInput{ID: c.OriginID})
		if err != nil {
			return errors.Wrapf(err, "failed to get origin %s", c.OriginID)
		}
		sheet.Origin = out.Entry
		return nil
	})
	g.Go(func() error {
		ids := inventoryIDs(c)
		if len(ids) == 0 {
			return nil
		}
		out, err := o.itemRepo.GetMany(gctx, catalog.GetManyInput{IDs: ids})
		if err != nil {
			return errors.Wrap(err, "failed to get items")
		}
		sheet.Items = out.Entries
		return nil
	})
	g.Go(func() error {
		if len(c.SpellIDs) == 0 {
			return nil
		}
		out, err := o.spellRepo.GetMany(gctx, catalog.GetManyInput{IDs: c.SpellIDs})
		if err != nil {
			return errors.Wrap(err, "failed to get spells")
		}
		// keep the character's own spell order
		for _, id := range c.SpellIDs {
			if spell, ok := out.Entries[id]; ok {
				sheet.Spells = append(sheet.Spells, spell)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sheet, nil
}

// checkReferences verifies that what the character points at exists and
// fits together: the subclass belongs to the class, every carried item
// and known spell is in the catalog, and no spell is above the
// character's circle.
func checkReferences(sheet *entities.Sheet) error {
	c := sheet.Character

	if c.Subclass != "" {
		if _, ok := sheet.Class.Subclass(c.Subclass); !ok {
			return errors.InvalidArgumentf("class %s has no subclass %s", sheet.Class.Name, c.Subclass).
				WithMeta("subclass", c.Subclass)
		}
	}

	for _, entry := range c.Items {
		if _, ok := sheet.Item(entry.ItemID); !ok {
			return errors.NotFoundf("item %s not found", entry.ItemID).WithMeta("item_id", entry.ItemID)
		}
	}

	if len(sheet.Spells) != len(c.SpellIDs) {
		known := make(map[string]bool, len(sheet.Spells))
		for _, spell := range sheet.Spells {
			known[spell.ID] = true
		}
		for _, id := range c.SpellIDs {
			if !known[id] {
				return errors.NotFoundf("spell %s not found", id).WithMeta("spell_id", id)
			}
		}
	}

	limit := engine.MaxSpellCircle(c.Level)
	for _, spell := range sheet.Spells {
		if spell.Circle > limit {
			return errors.Domainf(errors.ReasonSpellCircleTooHigh,
				"spell %s is circle %d but level %d reaches circle %d",
				spell.ID, spell.Circle, c.Level, limit).
				WithMeta("spell_id", spell.ID)
		}
	}

	return nil
}

func inventoryIDs(c *entities.Character) []string {
	ids := make([]string, 0, len(c.Items))
	for _, entry := range c.Items {
		ids = append(ids, entry.ItemID)
	}
	return ids
}
