package character_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	character "github.com/KirkDiggler/madking-api/internal/orchestrators/character"
	"github.com/KirkDiggler/madking-api/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/madking-api/internal/repositories/character"
	characterservice "github.com/KirkDiggler/madking-api/internal/services/character"
	"github.com/KirkDiggler/madking-api/internal/testutils"
)

type recordedEvent struct {
	eventType   string
	characterID string
	data        map[string]any
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	cleanup       func()
	catalog       *testutils.Catalog
	characterRepo characterrepo.Repository
	roller        *testutils.ManualRoller
	orchestrator  *character.Orchestrator

	mu     sync.Mutex
	events []recordedEvent
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	clk := testutils.NewFixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.catalog = testutils.NewCatalog(s.T(), client, clk)
	s.catalog.Seed(s.T())

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clk})
	s.Require().NoError(err)
	s.characterRepo = repo

	s.roller = testutils.NewManualRoller()
	s.events = nil

	bus := events.NewBus()
	for _, eventType := range character.EventTypes {
		bus.SubscribeFunc(eventType, 0, s.recorder(eventType))
	}

	s.orchestrator, err = character.New(&character.Config{
		CharacterRepo: repo,
		RaceRepo:      s.catalog.Races,
		ClassRepo:     s.catalog.Classes,
		OriginRepo:    s.catalog.Origins,
		ItemRepo:      s.catalog.Items,
		SpellRepo:     s.catalog.Spells,
		IDGenerator:   idgen.NewSequential(idgen.PrefixCharacter),
		DiceRoller:    s.roller,
		EventBus:      bus,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) recorder(eventType string) events.HandlerFunc {
	return func(_ context.Context, event events.Event) error {
		data := map[string]any{}
		for _, key := range []string{"level", "spell_id", "item_id", "quantity", "skill", "total"} {
			if v, ok := event.Context().Get(key); ok {
				data[key] = v
			}
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.events = append(s.events, recordedEvent{
			eventType:   eventType,
			characterID: event.Source().GetID(),
			data:        data,
		})
		return nil
	}
}

func (s *OrchestratorTestSuite) eventTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.eventType)
	}
	return out
}

func (s *OrchestratorTestSuite) createWarrior() *entities.Character {
	out, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{
		Character: testutils.NewWarrior("Brunhild"),
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) stored(id string) *entities.Character {
	out, err := s.characterRepo.Get(s.ctx, characterrepo.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) addItem(id, itemID string, quantity int) *entities.Character {
	out, err := s.orchestrator.AddItem(s.ctx, &characterservice.AddItemInput{
		CharacterID: id,
		ItemID:      itemID,
		Quantity:    quantity,
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) equip(id, itemID string) *entities.Character {
	out, err := s.orchestrator.EquipItem(s.ctx, &characterservice.EquipItemInput{
		CharacterID: id,
		ItemID:      itemID,
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) TestNew() {
	s.Run("nil config", func() {
		_, err := character.New(nil)
		s.Error(err)
	})

	s.Run("missing dependencies", func() {
		_, err := character.New(&character.Config{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(errors.GetFieldErrors(err), "CharacterRepo")
		s.Contains(errors.GetFieldErrors(err), "EventBus")
	})
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	s.Run("starts at level 1 with full HP", func() {
		c := s.createWarrior()

		s.Equal("char_1", c.ID)
		s.Equal(1, c.Level)
		s.Equal(10, c.MaxHP)
		s.Equal(10, c.HP)
		s.Nil(c.MaxMana)
		s.Nil(c.Mana)
		s.Equal(entities.DefaultBaseAC, c.BaseAC)
		s.Equal(entities.DefaultBaseSpeed, c.BaseSpeed)
		s.False(c.CreatedAt.IsZero())
		s.Equal([]string{character.EventCharacterCreated}, s.eventTypes())
	})

	s.Run("mage starts with a full mana pool", func() {
		input := testutils.NewWarrior("Odile")
		input.ClassID = testutils.ClassMageID

		out, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{Character: input})
		s.Require().NoError(err)
		s.Equal(4, out.Character.MaxHP)
		s.Require().NotNil(out.Character.Mana)
		s.Equal(8, *out.Character.Mana)
		s.Equal(8, *out.Character.MaxMana)
	})

	s.Run("ignores requested level and equipment", func() {
		input := testutils.NewWarrior("Cheat")
		input.Level = 7
		input.Items = []entities.InventoryEntry{{ItemID: testutils.ItemShieldID, Quantity: 1, Equipped: true}}
		input.EquippedSlots.Set(entities.SlotOffHand, testutils.ItemShieldID)

		out, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{Character: input})
		s.Require().NoError(err)
		s.Equal(1, out.Character.Level)
		s.Empty(out.Character.EquippedSlots.ItemIDs())
		s.False(out.Character.Items[0].Equipped)
	})

	s.Run("unknown race", func() {
		input := testutils.NewWarrior("Nobody")
		input.RaceID = "race_missing"

		_, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{Character: input})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("unknown item", func() {
		input := testutils.NewWarrior("Hoarder")
		input.Items = []entities.InventoryEntry{{ItemID: "item_missing", Quantity: 1}}

		_, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{Character: input})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("subclass must belong to the class", func() {
		input := testutils.NewWarrior("Confused")
		input.Subclass = "Necromancer"

		_, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{Character: input})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("spells above the first circle", func() {
		input := testutils.NewWarrior("Prodigy")
		input.SpellIDs = []string{testutils.SpellFireballID}

		_, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{Character: input})
		s.Require().Error(err)
		s.True(errors.HasReason(err, errors.ReasonSpellCircleTooHigh))
	})

	s.Run("invalid stats", func() {
		input := testutils.NewWarrior("Titan")
		input.Stats.Strength = 11

		_, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{Character: input})
		s.Require().Error(err)
		s.True(errors.IsValidation(err))
	})

	s.Run("nil character", func() {
		_, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	c := s.createWarrior()

	s.Run("without overlay", func() {
		out, err := s.orchestrator.GetCharacter(s.ctx, &characterservice.GetCharacterInput{CharacterID: c.ID})
		s.Require().NoError(err)
		s.Equal(c.ID, out.Character.ID)
		s.Nil(out.Computed)
	})

	s.Run("with overlay", func() {
		s.addItem(c.ID, testutils.ItemShieldID, 1)
		s.equip(c.ID, testutils.ItemShieldID)
		_, err := s.orchestrator.AddSpell(s.ctx, &characterservice.AddSpellInput{
			CharacterID: c.ID,
			SpellID:     testutils.SpellSparkID,
		})
		s.Require().NoError(err)

		out, err := s.orchestrator.GetCharacter(s.ctx, &characterservice.GetCharacterInput{
			CharacterID:  c.ID,
			WithComputed: true,
		})
		s.Require().NoError(err)
		s.Require().NotNil(out.Computed)

		computed := out.Computed
		s.Equal(entities.DefaultBaseAC+2, computed.TotalArmorClass)
		s.Equal(entities.DefaultBaseSpeed, computed.TotalSpeed)
		s.Equal(1, computed.MaxSpellCircle)
		s.Equal(6, computed.SkillModifiers[entities.SkillAthletics])
		s.Len(computed.SkillModifiers, len(entities.AllSkills))
		s.Contains(computed.ProficientSkills, entities.SkillAthletics)
		s.Require().Len(computed.AvailableSpells, 1)
		s.Equal(testutils.SpellSparkID, computed.AvailableSpells[0].ID)

		var names []string
		for _, a := range computed.AvailableAbilities {
			names = append(names, a.Ability.Name)
		}
		s.Equal([]string{"Darkvision", "Military Rank", "Second Wind"}, names)
	})

	s.Run("not found", func() {
		_, err := s.orchestrator.GetCharacter(s.ctx, &characterservice.GetCharacterInput{CharacterID: "char_missing"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("missing id", func() {
		_, err := s.orchestrator.GetCharacter(s.ctx, &characterservice.GetCharacterInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.createWarrior()
	_, err := s.orchestrator.CreateCharacter(s.ctx, &characterservice.CreateCharacterInput{
		Character: testutils.NewWarrior("Aldric"),
	})
	s.Require().NoError(err)

	out, err := s.orchestrator.ListCharacters(s.ctx, &characterservice.ListCharactersInput{NamePrefix: "ald"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 1)
	s.Equal("Aldric", out.Characters[0].Name)

	out, err = s.orchestrator.ListCharacters(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(out.Characters, 2)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter() {
	update := func(id string, u *entities.CharacterUpdate) (*entities.Character, error) {
		out, err := s.orchestrator.UpdateCharacter(s.ctx, &characterservice.UpdateCharacterInput{
			CharacterID: id,
			Update:      u,
		})
		if err != nil {
			return nil, err
		}
		return out.Character, nil
	}

	s.Run("switching to a caster class opens a mana pool", func() {
		c := s.createWarrior()
		s.addItem(c.ID, testutils.ItemPotionID, 2)
		_, err := s.orchestrator.AddSpell(s.ctx, &characterservice.AddSpellInput{
			CharacterID: c.ID,
			SpellID:     testutils.SpellSparkID,
		})
		s.Require().NoError(err)

		u := entities.UpdateFrom(c)
		name, classID := "Brunhild the Wise", testutils.ClassMageID
		u.Name = &name
		u.ClassID = &classID

		got, err := update(c.ID, u)
		s.Require().NoError(err)
		s.Equal("Brunhild the Wise", got.Name)
		s.Equal(1, got.Level)
		s.Len(got.Items, 1, "inventory only changes through item operations")
		s.Equal([]string{testutils.SpellSparkID}, got.SpellIDs)
		s.Equal(4, got.MaxHP)
		s.Equal(4, got.HP, "hp is clamped to the smaller ceiling")
		s.Require().NotNil(got.Mana)
		s.Equal(8, *got.Mana)
		s.Equal(c.CreatedAt, got.CreatedAt)
		s.Contains(s.eventTypes(), character.EventCharacterUpdated)
	})

	s.Run("omitted fields keep their stored values", func() {
		c := s.createWarrior()
		s.addItem(c.ID, testutils.ItemLongswordID, 1)
		s.equip(c.ID, testutils.ItemLongswordID)
		leveled, err := s.orchestrator.LevelUp(s.ctx, &characterservice.LevelUpInput{CharacterID: c.ID})
		s.Require().NoError(err)
		s.Require().Equal(15, leveled.Character.HP)

		name := "Brunhild Stonefist"
		stats := c.Stats
		stats.Strength = 6
		got, err := update(c.ID, &entities.CharacterUpdate{
			Name:     &name,
			RaceID:   &c.RaceID,
			ClassID:  &c.ClassID,
			OriginID: &c.OriginID,
			Stats:    &stats,
		})
		s.Require().NoError(err)
		s.Equal(name, got.Name)
		s.Equal(6, got.Stats.Strength)
		s.Equal(2, got.Level)
		s.Equal(15, got.HP, "stored hp is not refilled")
		s.Equal(20, got.MaxHP)
		s.Equal(entities.DefaultBaseAC, got.BaseAC)
		s.Equal(entities.DefaultBaseSpeed, got.BaseSpeed)
		s.True(got.Skills.Athletics)
		s.Equal(testutils.ItemLongswordID, got.EquippedSlots.Get(entities.SlotMainHand))
		s.Equal(got, s.stored(c.ID))
	})

	s.Run("hp below one is rejected", func() {
		c := s.createWarrior()
		zero := 0

		_, err := update(c.ID, &entities.CharacterUpdate{HP: &zero})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(errors.GetFieldErrors(err), "hp")
		s.Equal(10, s.stored(c.ID).HP)
	})

	s.Run("unknown origin", func() {
		c := s.createWarrior()
		origin := "origin_missing"

		_, err := update(c.ID, &entities.CharacterUpdate{OriginID: &origin})
		s.True(errors.IsNotFound(err))
	})

	s.Run("unknown character", func() {
		name := "Nobody"
		_, err := update("char_missing", &entities.CharacterUpdate{Name: &name})
		s.True(errors.IsNotFound(err))
	})

	s.Run("missing update", func() {
		_, err := update("char_1", nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	c := s.createWarrior()

	out, err := s.orchestrator.DeleteCharacter(s.ctx, &characterservice.DeleteCharacterInput{CharacterID: c.ID})
	s.Require().NoError(err)
	s.Equal(c.ID, out.Character.ID)

	_, err = s.orchestrator.GetCharacter(s.ctx, &characterservice.GetCharacterInput{CharacterID: c.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &characterservice.DeleteCharacterInput{CharacterID: c.ID})
	s.True(errors.IsNotFound(err))

	s.Contains(s.eventTypes(), character.EventCharacterDeleted)
}

func (s *OrchestratorTestSuite) TestLevelUp() {
	s.Run("warrior gains ceiling and partial recovery", func() {
		c := s.createWarrior()

		out, err := s.orchestrator.LevelUp(s.ctx, &characterservice.LevelUpInput{CharacterID: c.ID})
		s.Require().NoError(err)
		s.Equal(2, out.Character.Level)
		s.Equal(20, out.Character.MaxHP)
		s.Equal(15, out.Character.HP)

		s.Equal(out.Character, s.stored(c.ID))
		s.Contains(s.eventTypes(), character.EventCharacterLeveledUp)
	})

	s.Run("fails at the level cap without saving", func() {
		c := s.createWarrior()
		capped := s.stored(c.ID)
		capped.Level = entities.MaxLevel
		capped.MaxHP = 100
		capped.HP = 100
		_, err := s.characterRepo.Update(s.ctx, characterrepo.UpdateInput{Character: capped})
		s.Require().NoError(err)
		before := s.stored(c.ID)

		_, err = s.orchestrator.LevelUp(s.ctx, &characterservice.LevelUpInput{CharacterID: c.ID})
		s.Require().Error(err)
		s.True(errors.HasReason(err, errors.ReasonMaxLevelReached))
		s.Equal(before, s.stored(c.ID))
	})
}

func (s *OrchestratorTestSuite) TestSpells() {
	c := s.createWarrior()
	addSpell := func(spellID string) (*characterservice.AddSpellOutput, error) {
		return s.orchestrator.AddSpell(s.ctx, &characterservice.AddSpellInput{CharacterID: c.ID, SpellID: spellID})
	}

	s.Run("learn a first circle spell", func() {
		out, err := addSpell(testutils.SpellSparkID)
		s.Require().NoError(err)
		s.Equal([]string{testutils.SpellSparkID}, out.Character.SpellIDs)
	})

	s.Run("already known", func() {
		_, err := addSpell(testutils.SpellSparkID)
		s.True(errors.HasReason(err, errors.ReasonSpellAlreadyKnown))
	})

	s.Run("circle too high", func() {
		_, err := addSpell(testutils.SpellFireballID)
		s.Require().Error(err)
		s.True(errors.HasReason(err, errors.ReasonSpellCircleTooHigh))
		s.Equal(3, errors.GetMeta(err)["circle"])
	})

	s.Run("unknown spell", func() {
		_, err := addSpell("spell_missing")
		s.True(errors.IsNotFound(err))
	})

	s.Run("forget a known spell", func() {
		out, err := s.orchestrator.ForgetSpell(s.ctx, &characterservice.ForgetSpellInput{
			CharacterID: c.ID,
			SpellID:     testutils.SpellSparkID,
		})
		s.Require().NoError(err)
		s.Empty(out.Character.SpellIDs)
	})

	s.Run("forget an unknown spell", func() {
		_, err := s.orchestrator.ForgetSpell(s.ctx, &characterservice.ForgetSpellInput{
			CharacterID: c.ID,
			SpellID:     testutils.SpellSparkID,
		})
		s.True(errors.HasReason(err, errors.ReasonSpellNotKnown))
	})

	s.Contains(s.eventTypes(), character.EventSpellLearned)
	s.Contains(s.eventTypes(), character.EventSpellForgotten)
}

func (s *OrchestratorTestSuite) TestInventory() {
	c := s.createWarrior()

	s.Run("stacks onto an existing entry", func() {
		s.addItem(c.ID, testutils.ItemPotionID, 3)
		got := s.addItem(c.ID, testutils.ItemPotionID, 0)

		s.Require().Len(got.Items, 1)
		s.Equal(4, got.Items[0].Quantity)
	})

	s.Run("stack size is enforced", func() {
		s.addItem(c.ID, testutils.ItemLongswordID, 1)

		_, err := s.orchestrator.AddItem(s.ctx, &characterservice.AddItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemLongswordID,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown item", func() {
		_, err := s.orchestrator.AddItem(s.ctx, &characterservice.AddItemInput{
			CharacterID: c.ID,
			ItemID:      "item_missing",
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("remove part of a stack", func() {
		out, err := s.orchestrator.RemoveItem(s.ctx, &characterservice.RemoveItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemPotionID,
			Quantity:    1,
		})
		s.Require().NoError(err)
		idx, ok := out.Character.InventoryIndex(testutils.ItemPotionID)
		s.Require().True(ok)
		s.Equal(3, out.Character.Items[idx].Quantity)
	})

	s.Run("removing an equipped item unequips it", func() {
		s.equip(c.ID, testutils.ItemLongswordID)

		out, err := s.orchestrator.RemoveItem(s.ctx, &characterservice.RemoveItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemLongswordID,
		})
		s.Require().NoError(err)
		s.False(out.Character.Carries(testutils.ItemLongswordID))
		s.Empty(out.Character.EquippedSlots.Get(entities.SlotMainHand))
	})

	s.Run("remove an item that is not carried", func() {
		_, err := s.orchestrator.RemoveItem(s.ctx, &characterservice.RemoveItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemShieldID,
		})
		s.True(errors.HasReason(err, errors.ReasonItemNotInInventory))
	})
}

func (s *OrchestratorTestSuite) TestEquipment() {
	c := s.createWarrior()
	for _, id := range []string{
		testutils.ItemLongswordID, testutils.ItemShieldID, testutils.ItemGreatswordID, testutils.ItemPotionID,
	} {
		s.addItem(c.ID, id, 1)
	}

	s.Run("shield goes to the off hand and raises AC", func() {
		got := s.equip(c.ID, testutils.ItemShieldID)
		s.Equal(testutils.ItemShieldID, got.EquippedSlots.Get(entities.SlotOffHand))

		idx, _ := got.InventoryIndex(testutils.ItemShieldID)
		s.True(got.Items[idx].Equipped)

		out, err := s.orchestrator.GetCharacter(s.ctx, &characterservice.GetCharacterInput{
			CharacterID:  c.ID,
			WithComputed: true,
		})
		s.Require().NoError(err)
		s.Equal(entities.DefaultBaseAC+2, out.Computed.TotalArmorClass)
	})

	s.Run("two-handed weapon displaces both hands", func() {
		s.equip(c.ID, testutils.ItemLongswordID)
		got := s.equip(c.ID, testutils.ItemGreatswordID)

		s.Equal(testutils.ItemGreatswordID, got.EquippedSlots.Get(entities.SlotMainHand))
		s.Equal(testutils.ItemGreatswordID, got.EquippedSlots.Get(entities.SlotOffHand))
		for _, entry := range got.Items {
			s.Equal(entry.ItemID == testutils.ItemGreatswordID, entry.Equipped, entry.ItemID)
		}
		s.Equal(got, s.stored(c.ID))
	})

	s.Run("unequip clears both hands", func() {
		out, err := s.orchestrator.UnequipItem(s.ctx, &characterservice.UnequipItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemGreatswordID,
		})
		s.Require().NoError(err)
		s.Empty(out.Character.EquippedSlots.ItemIDs())
	})

	s.Run("unequip an item that is not equipped", func() {
		_, err := s.orchestrator.UnequipItem(s.ctx, &characterservice.UnequipItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemGreatswordID,
		})
		s.True(errors.HasReason(err, errors.ReasonItemNotEquipped))
	})

	s.Run("consumables cannot be equipped", func() {
		_, err := s.orchestrator.EquipItem(s.ctx, &characterservice.EquipItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemPotionID,
		})
		s.True(errors.HasReason(err, errors.ReasonItemNotEquipable))
	})

	s.Run("items must be carried", func() {
		_, err := s.orchestrator.EquipItem(s.ctx, &characterservice.EquipItemInput{
			CharacterID: c.ID,
			ItemID:      testutils.ItemChainmailID,
		})
		s.True(errors.HasReason(err, errors.ReasonItemNotInInventory))
	})

	s.Run("preferred slot must be a hand", func() {
		_, err := s.orchestrator.EquipItem(s.ctx, &characterservice.EquipItemInput{
			CharacterID:   c.ID,
			ItemID:        testutils.ItemLongswordID,
			PreferredSlot: entities.SlotHeadgear,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRollSkillCheck() {
	c := s.createWarrior()

	s.Run("adds stat and proficiency to the roll", func() {
		s.roller.SetRolls(15)

		out, err := s.orchestrator.RollSkillCheck(s.ctx, &characterservice.RollSkillCheckInput{
			CharacterID: c.ID,
			Skill:       "athletics",
		})
		s.Require().NoError(err)
		s.Equal(15, out.Check.Roll)
		s.Equal(6, out.Check.Modifier)
		s.Equal(21, out.Check.Total)
		s.True(out.Check.IsProficient)
		s.Equal([]int{20}, s.roller.Sizes())
	})

	s.Run("unknown skill", func() {
		_, err := s.orchestrator.RollSkillCheck(s.ctx, &characterservice.RollSkillCheckInput{
			CharacterID: "char_missing",
			Skill:       "juggling",
		})
		s.Require().Error(err)
		s.True(errors.HasReason(err, errors.ReasonUnknownSkill))
	})

	s.Contains(s.eventTypes(), character.EventSkillChecked)
}
