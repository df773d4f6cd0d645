package character

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

// EntityType identifies characters on the event bus
const EntityType = "character"

// Adapter exposes a character as an rpg-toolkit entity
type Adapter struct {
	character *entities.Character
}

// NewAdapter creates a new character adapter
func NewAdapter(character *entities.Character) *Adapter {
	return &Adapter{character: character}
}

var _ core.Entity = (*Adapter)(nil)

// GetID returns the character's unique identifier
func (a *Adapter) GetID() string {
	if a.character == nil {
		return ""
	}
	return a.character.ID
}

// GetType returns the entity type
func (a *Adapter) GetType() string {
	return EntityType
}

// Character returns the wrapped character
func (a *Adapter) Character() *entities.Character {
	return a.character
}
