// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/madking-api/internal/repositories/character"
	"github.com/KirkDiggler/madking-api/internal/repositories/catalog"
	"github.com/KirkDiggler/madking-api/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	RaceRepo      catalog.Repository[*entities.Race]
	ClassRepo     catalog.Repository[*entities.Class]
	OriginRepo    catalog.Repository[*entities.Origin]
	ItemRepo      catalog.Repository[*entities.Item]
	SpellRepo     catalog.Repository[*entities.Spell]
	IDGenerator   idgen.Generator
	DiceRoller    dice.Roller
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.RaceRepo == nil {
		vb.RequiredField("RaceRepo")
	}
	if c.ClassRepo == nil {
		vb.RequiredField("ClassRepo")
	}
	if c.OriginRepo == nil {
		vb.RequiredField("OriginRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	raceRepo      catalog.Repository[*entities.Race]
	classRepo     catalog.Repository[*entities.Class]
	originRepo    catalog.Repository[*entities.Origin]
	itemRepo      catalog.Repository[*entities.Item]
	spellRepo     catalog.Repository[*entities.Spell]
	idGenerator   idgen.Generator
	roller        dice.Roller
	eventBus      events.EventBus
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		raceRepo:      cfg.RaceRepo,
		classRepo:     cfg.ClassRepo,
		originRepo:    cfg.OriginRepo,
		itemRepo:      cfg.ItemRepo,
		spellRepo:     cfg.SpellRepo,
		idGenerator:   cfg.IDGenerator,
		roller:        cfg.DiceRoller,
		eventBus:      cfg.EventBus,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// ListCharacters returns every character, newest first
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		input = &character.ListCharactersInput{}
	}

	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{NamePrefix: input.NamePrefix})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// GetCharacter returns a character, optionally with its computed overlay
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	output := &character.GetCharacterOutput{Character: c}
	if !input.WithComputed {
		return output, nil
	}

	sheet, err := o.resolveSheet(ctx, c)
	if err != nil {
		return nil, err
	}

	computed, err := engine.Compute(ctx, sheet, o.itemResolver())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compute character %s", c.ID)
	}
	output.Computed = computed

	return output, nil
}

// CreateCharacter validates references and stores a new level 1 character
// with full HP and mana
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c := input.Character.Clone()
	c.ID = o.idGenerator.Generate()
	c.Level = entities.MinLevel
	c.ApplyDefaults()

	sheet, err := o.resolveSheet(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := checkReferences(sheet); err != nil {
		return nil, err
	}

	c = engine.ApplyDerived(c, sheet.Class, true)

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", out.Character.ID,
		"name", out.Character.Name,
		"class_id", out.Character.ClassID)
	o.publish(ctx, EventCharacterCreated, out.Character, nil)

	return &character.CreateCharacterOutput{Character: out.Character}, nil
}

// UpdateCharacter merges profile changes into a character. References
// are re-checked and HP and mana are clamped to the new class.
func (o *Orchestrator) UpdateCharacter(
	ctx context.Context,
	input *character.UpdateCharacterInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil || input.Update == nil {
		return nil, errors.InvalidArgument("update is required")
	}

	existing, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	c := input.Update.ApplyTo(existing)

	sheet, err := o.resolveSheet(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := checkReferences(sheet); err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, c, sheet.Class)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventCharacterUpdated, saved, nil)
	return &character.UpdateCharacterOutput{Character: saved}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}

	slog.InfoContext(ctx, "character deleted",
		"character_id", input.CharacterID)
	o.publish(ctx, EventCharacterDeleted, out.Character, nil)

	return &character.DeleteCharacterOutput{Character: out.Character}, nil
}

// LevelUp advances a character one level
func (o *Orchestrator) LevelUp(
	ctx context.Context,
	input *character.LevelUpInput,
) (*character.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	class, err := o.getClass(ctx, c.ClassID)
	if err != nil {
		return nil, err
	}

	leveled, err := engine.LevelUp(c, class)
	if err != nil {
		return nil, err
	}

	saved, err := o.save(ctx, leveled, class)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character leveled up",
		"character_id", saved.ID,
		"level", saved.Level,
		"max_hp", saved.MaxHP)
	o.publish(ctx, EventCharacterLeveledUp, saved, map[string]any{"level": saved.Level})

	return &character.LevelUpOutput{Character: saved}, nil
}

// AddSpell teaches a character a spell of a circle their level can reach
func (o *Orchestrator) AddSpell(
	ctx context.Context,
	input *character.AddSpellInput,
) (*character.AddSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	spell, err := o.spellRepo.Get(ctx, catalog.GetInput{ID: input.SpellID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", input.SpellID)
	}

	if c.KnowsSpell(input.SpellID) {
		return nil, errors.Domainf(errors.ReasonSpellAlreadyKnown, "character already knows spell %s", input.SpellID).
			WithMeta("spell_id", input.SpellID)
	}
	if limit := engine.MaxSpellCircle(c.Level); spell.Entry.Circle > limit {
		return nil, errors.Domainf(errors.ReasonSpellCircleTooHigh,
			"spell %s is circle %d but level %d reaches circle %d",
			input.SpellID, spell.Entry.Circle, c.Level, limit).
			WithMeta("spell_id", input.SpellID).
			WithMeta("circle", spell.Entry.Circle).
			WithMeta("max_circle", limit)
	}

	next := c.Clone()
	next.SpellIDs = append(next.SpellIDs, input.SpellID)

	saved, err := o.saveWithClass(ctx, next)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventSpellLearned, saved, map[string]any{"spell_id": input.SpellID})
	return &character.AddSpellOutput{Character: saved}, nil
}

// ForgetSpell removes a spell from the known list
func (o *Orchestrator) ForgetSpell(
	ctx context.Context,
	input *character.ForgetSpellInput,
) (*character.ForgetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !c.KnowsSpell(input.SpellID) {
		return nil, errors.Domainf(errors.ReasonSpellNotKnown, "character does not know spell %s", input.SpellID).
			WithMeta("spell_id", input.SpellID)
	}

	next := c.Clone()
	next.SpellIDs = removeString(next.SpellIDs, input.SpellID)

	saved, err := o.saveWithClass(ctx, next)
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventSpellForgotten, saved, map[string]any{"spell_id": input.SpellID})
	return &character.ForgetSpellOutput{Character: saved}, nil
}

// RollSkillCheck rolls a d20 plus the character's skill modifier. Nothing
// is saved.
func (o *Orchestrator) RollSkillCheck(
	ctx context.Context,
	input *character.RollSkillCheckInput,
) (*character.RollSkillCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// Parse before touching storage so bad names fail fast
	if _, err := entities.ParseSkill(input.Skill); err != nil {
		return nil, err
	}

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	check, err := engine.RollSkillCheck(o.roller, c, input.Skill)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "skill check rolled",
		"character_id", c.ID,
		"skill", check.Skill,
		"roll", check.Roll,
		"total", check.Total)
	o.publish(ctx, EventSkillChecked, c, map[string]any{
		"skill": string(check.Skill),
		"total": check.Total,
	})

	return &character.RollSkillCheckOutput{Check: check}, nil
}

// load fetches a stored character
func (o *Orchestrator) load(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return out.Character, nil
}

func (o *Orchestrator) getClass(ctx context.Context, id string) (*entities.Class, error) {
	out, err := o.classRepo.Get(ctx, catalog.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get class %s", id)
	}
	return out.Entry, nil
}

// save recomputes derived resources for the class and writes the
// character once
func (o *Orchestrator) save(ctx context.Context, c *entities.Character, class *entities.Class) (*entities.Character, error) {
	derived := engine.ApplyDerived(c, class, false)

	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: derived})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", c.ID)
	}
	return out.Character, nil
}

func (o *Orchestrator) saveWithClass(ctx context.Context, c *entities.Character) (*entities.Character, error) {
	class, err := o.getClass(ctx, c.ClassID)
	if err != nil {
		return nil, err
	}
	return o.save(ctx, c, class)
}

func removeString(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
