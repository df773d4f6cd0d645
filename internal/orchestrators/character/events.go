package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

// Event types published after a character change is saved
const (
	EventCharacterCreated   = "character.created"
	EventCharacterUpdated   = "character.updated"
	EventCharacterDeleted   = "character.deleted"
	EventCharacterLeveledUp = "character.leveled_up"
	EventSpellLearned       = "character.spell_learned"
	EventSpellForgotten     = "character.spell_forgotten"
	EventItemAdded          = "character.item_added"
	EventItemRemoved        = "character.item_removed"
	EventItemEquipped       = "character.item_equipped"
	EventItemUnequipped     = "character.item_unequipped"
	EventSkillChecked       = "character.skill_checked"
)

// EventTypes lists every event the orchestrator publishes
var EventTypes = []string{
	EventCharacterCreated,
	EventCharacterUpdated,
	EventCharacterDeleted,
	EventCharacterLeveledUp,
	EventSpellLearned,
	EventSpellForgotten,
	EventItemAdded,
	EventItemRemoved,
	EventItemEquipped,
	EventItemUnequipped,
	EventSkillChecked,
}

// auditKeys are the event context values copied into audit lines
var auditKeys = []string{"level", "spell_id", "item_id", "quantity", "skill", "total"}

// SubscribeAudit logs one line per character event and returns the
// subscription ids
func SubscribeAudit(bus events.EventBus, logger *slog.Logger) []string {
	ids := make([]string, 0, len(EventTypes))
	for _, eventType := range EventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, -100, func(ctx context.Context, event events.Event) error {
			attrs := []any{"event_type", eventType}
			if src := event.Source(); src != nil {
				attrs = append(attrs, "character_id", src.GetID())
			}
			for _, key := range auditKeys {
				if v, ok := event.Context().Get(key); ok {
					attrs = append(attrs, key, v)
				}
			}
			logger.InfoContext(ctx, "character event", attrs...)
			return nil
		}))
	}
	return ids
}

// publish announces a change. The write has already happened, so a bus
// failure is logged and never returned.
func (o *Orchestrator) publish(ctx context.Context, eventType string, c *entities.Character, data map[string]any) {
	event := events.NewGameEvent(eventType, NewAdapter(c), nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish character event",
			"event_type", eventType,
			"character_id", c.ID,
			"error", err)
	}
}
