// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/madking-api/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
)

// Service defines the interface for character operations. Every mutation
// loads the character, applies one engine transition in memory and saves
// once; a failed precondition leaves the stored character untouched.
type Service interface {
	// CRUD
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Progression
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// Spells
	AddSpell(ctx context.Context, input *AddSpellInput) (*AddSpellOutput, error)
	ForgetSpell(ctx context.Context, input *ForgetSpellInput) (*ForgetSpellOutput, error)

	// Inventory and equipment
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)

	// Checks
	RollSkillCheck(ctx context.Context, input *RollSkillCheckInput) (*RollSkillCheckOutput, error)
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	NamePrefix string // Optional filter
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
	// WithComputed adds the derived overlay: modifiers, AC, speed and
	// everything currently unlocked
	WithComputed bool
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
	Computed  *engine.Computed // Only set when requested
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Character *entities.Character
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// UpdateCharacterInput defines the request for updating a character.
// Fields left nil in Update keep their stored values.
type UpdateCharacterInput struct {
	CharacterID string
	Update      *entities.CharacterUpdate
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Character *entities.Character
}

// LevelUpInput defines the request for leveling up
type LevelUpInput struct {
	CharacterID string
}

// LevelUpOutput defines the response for leveling up
type LevelUpOutput struct {
	Character *entities.Character
}

// AddSpellInput defines the request for learning a spell
type AddSpellInput struct {
	CharacterID string
	SpellID     string
}

// AddSpellOutput defines the response for learning a spell
type AddSpellOutput struct {
	Character *entities.Character
}

// ForgetSpellInput defines the request for forgetting a spell
type ForgetSpellInput struct {
	CharacterID string
	SpellID     string
}

// ForgetSpellOutput defines the response for forgetting a spell
type ForgetSpellOutput struct {
	Character *entities.Character
}

// AddItemInput defines the request for adding an item to the inventory
type AddItemInput struct {
	CharacterID string
	ItemID      string
	Quantity    int // Defaults to 1
}

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	Character *entities.Character
}

// RemoveItemInput defines the request for removing an item
type RemoveItemInput struct {
	CharacterID string
	ItemID      string
	Quantity    int // Zero removes the whole stack
}

// RemoveItemOutput defines the response for removing an item
type RemoveItemOutput struct {
	Character *entities.Character
}

// EquipItemInput defines the request for equipping an item
type EquipItemInput struct {
	CharacterID   string
	ItemID        string
	PreferredSlot entities.Slot // Optional
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Character *entities.Character
}

// UnequipItemInput defines the request for unequipping an item
type UnequipItemInput struct {
	CharacterID string
	ItemID      string
}

// UnequipItemOutput defines the response for unequipping an item
type UnequipItemOutput struct {
	Character *entities.Character
}

// RollSkillCheckInput defines the request for rolling a skill check
type RollSkillCheckInput struct {
	CharacterID string
	Skill       string
}

// RollSkillCheckOutput defines the response for rolling a skill check
type RollSkillCheckOutput struct {
	Check *engine.SkillCheck
}
