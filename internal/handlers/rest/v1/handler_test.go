package v1_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/madking-api/internal/engine"
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	v1 "github.com/KirkDiggler/madking-api/internal/handlers/rest/v1"
	"github.com/KirkDiggler/madking-api/internal/services/catalog"
	catalogmock "github.com/KirkDiggler/madking-api/internal/services/catalog/mock"
	"github.com/KirkDiggler/madking-api/internal/services/character"
	charactermock "github.com/KirkDiggler/madking-api/internal/services/character/mock"
	"github.com/KirkDiggler/madking-api/internal/testutils"
)

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Count   *int                `json:"count"`
	Error   string              `json:"error"`
	Reason  string              `json:"reason"`
	Errors  map[string][]string `json:"errors"`
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCharacters *charactermock.MockService
	mockRaces      *catalogmock.MockService[*entities.Race]
	mockClasses    *catalogmock.MockService[*entities.Class]
	mockOrigins    *catalogmock.MockService[*entities.Origin]
	mockItems      *catalogmock.MockService[*entities.Item]
	mockSpells     *catalogmock.MockService[*entities.Spell]
	mockBackground *catalogmock.MockBackgroundService
	healthErr      error
	routes         http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacters = charactermock.NewMockService(s.ctrl)
	s.mockRaces = catalogmock.NewMockService[*entities.Race](s.ctrl)
	s.mockClasses = catalogmock.NewMockService[*entities.Class](s.ctrl)
	s.mockOrigins = catalogmock.NewMockService[*entities.Origin](s.ctrl)
	s.mockItems = catalogmock.NewMockService[*entities.Item](s.ctrl)
	s.mockSpells = catalogmock.NewMockService[*entities.Spell](s.ctrl)
	s.mockBackground = catalogmock.NewMockBackgroundService(s.ctrl)
	s.healthErr = nil

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CharacterService:  s.mockCharacters,
		RaceService:       s.mockRaces,
		ClassService:      s.mockClasses,
		OriginService:     s.mockOrigins,
		ItemService:       s.mockItems,
		SpellService:      s.mockSpells,
		BackgroundService: s.mockBackground,
		HealthCheck: func(context.Context) error {
			return s.healthErr
		},
	})
	s.Require().NoError(err)
	s.routes = handler.Routes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) (int, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.routes.ServeHTTP(rec, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func (s *HandlerTestSuite) warrior() *entities.Character {
	c := testutils.NewWarrior("Brunhild")
	c.ID = "char_1"
	c.Level = 1
	c.HP = 10
	c.MaxHP = 10
	return c
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(errors.GetFieldErrors(err), "CharacterService")
	s.Contains(errors.GetFieldErrors(err), "BackgroundService")
}

func (s *HandlerTestSuite) TestHealth() {
	s.Run("ok", func() {
		code, env := s.do(http.MethodGet, "/healthz", "")
		s.Equal(http.StatusOK, code)
		s.True(env.Success)
	})

	s.Run("store down", func() {
		s.healthErr = errors.Internal("connection refused")
		code, env := s.do(http.MethodGet, "/healthz", "")
		s.Equal(http.StatusServiceUnavailable, code)
		s.False(env.Success)
	})
}

func (s *HandlerTestSuite) TestListCharacters() {
	s.mockCharacters.EXPECT().
		ListCharacters(gomock.Any(), &character.ListCharactersInput{NamePrefix: "bru"}).
		Return(&character.ListCharactersOutput{Characters: []*entities.Character{s.warrior()}}, nil)

	code, env := s.do(http.MethodGet, "/api/v1/characters?name=bru", "")
	s.Equal(http.StatusOK, code)
	s.True(env.Success)
	s.Require().NotNil(env.Count)
	s.Equal(1, *env.Count)

	var got []entities.Character
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal("char_1", got[0].ID)
}

func (s *HandlerTestSuite) TestListCharactersEmpty() {
	s.mockCharacters.EXPECT().
		ListCharacters(gomock.Any(), gomock.Any()).
		Return(&character.ListCharactersOutput{}, nil)

	code, env := s.do(http.MethodGet, "/api/v1/characters", "")
	s.Equal(http.StatusOK, code)
	s.Equal(0, *env.Count)
	s.JSONEq(`[]`, string(env.Data))
}

func (s *HandlerTestSuite) TestGetCharacter() {
	s.Run("plain", func() {
		s.mockCharacters.EXPECT().
			GetCharacter(gomock.Any(), &character.GetCharacterInput{CharacterID: "char_1"}).
			Return(&character.GetCharacterOutput{Character: s.warrior()}, nil)

		code, env := s.do(http.MethodGet, "/api/v1/characters/char_1", "")
		s.Equal(http.StatusOK, code)

		var got map[string]any
		s.Require().NoError(json.Unmarshal(env.Data, &got))
		s.Equal("Brunhild", got["name"])
		s.NotContains(got, "computed")
	})

	s.Run("with overlay", func() {
		s.mockCharacters.EXPECT().
			GetCharacter(gomock.Any(), &character.GetCharacterInput{CharacterID: "char_1", WithComputed: true}).
			Return(&character.GetCharacterOutput{
				Character: s.warrior(),
				Computed:  &engine.Computed{TotalArmorClass: 12, MaxSpellCircle: 1},
			}, nil)

		code, env := s.do(http.MethodGet, "/api/v1/characters/char_1?computed=true", "")
		s.Equal(http.StatusOK, code)

		var got struct {
			Name     string          `json:"name"`
			Computed engine.Computed `json:"computed"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &got))
		s.Equal("Brunhild", got.Name)
		s.Equal(12, got.Computed.TotalArmorClass)
	})

	s.Run("not found", func() {
		s.mockCharacters.EXPECT().
			GetCharacter(gomock.Any(), gomock.Any()).
			Return(nil, errors.Wrap(errors.NotFound("character char_9 not found"), "failed to get character char_9"))

		code, env := s.do(http.MethodGet, "/api/v1/characters/char_9", "")
		s.Equal(http.StatusNotFound, code)
		s.False(env.Success)
		s.Equal("NOT_FOUND", env.Reason)
		s.Equal("character char_9 not found", env.Error)
	})
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	s.Run("created", func() {
		s.mockCharacters.EXPECT().
			CreateCharacter(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
				s.Equal("Brunhild", input.Character.Name)
				s.Equal(testutils.ClassWarriorID, input.Character.ClassID)
				return &character.CreateCharacterOutput{Character: s.warrior()}, nil
			})

		code, env := s.do(http.MethodPost, "/api/v1/characters",
			`{"name":"Brunhild","raceId":"race_dwarf","classId":"class_warrior","originId":"origin_soldier"}`)
		s.Equal(http.StatusCreated, code)
		s.True(env.Success)
	})

	s.Run("validation errors carry fields", func() {
		s.mockCharacters.EXPECT().
			CreateCharacter(gomock.Any(), gomock.Any()).
			Return(nil, errors.NewValidationBuilder().RequiredField("name").Build())

		code, env := s.do(http.MethodPost, "/api/v1/characters", `{"raceId":"race_dwarf"}`)
		s.Equal(http.StatusBadRequest, code)
		s.Equal("VALIDATION", env.Reason)
		s.Contains(env.Errors, "name")
	})

	s.Run("malformed body", func() {
		code, env := s.do(http.MethodPost, "/api/v1/characters", `{"name":`)
		s.Equal(http.StatusBadRequest, code)
		s.Equal("VALIDATION", env.Reason)
	})

	s.Run("missing body", func() {
		code, _ := s.do(http.MethodPost, "/api/v1/characters", "")
		s.Equal(http.StatusBadRequest, code)
	})
}

func (s *HandlerTestSuite) TestUpdateAndDeleteCharacter() {
	s.mockCharacters.EXPECT().
		UpdateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.UpdateCharacterInput) (*character.UpdateCharacterOutput, error) {
			s.Equal("char_1", input.CharacterID)
			s.Require().NotNil(input.Update.Name)
			s.Equal("Renamed", *input.Update.Name)
			s.Nil(input.Update.HP)
			s.Nil(input.Update.BaseAC)
			return &character.UpdateCharacterOutput{Character: s.warrior()}, nil
		})
	code, _ := s.do(http.MethodPut, "/api/v1/characters/char_1", `{"name":"Renamed"}`)
	s.Equal(http.StatusOK, code)

	s.mockCharacters.EXPECT().
		DeleteCharacter(gomock.Any(), &character.DeleteCharacterInput{CharacterID: "char_1"}).
		Return(&character.DeleteCharacterOutput{Character: s.warrior()}, nil)
	code, _ = s.do(http.MethodDelete, "/api/v1/characters/char_1", "")
	s.Equal(http.StatusOK, code)
}

func (s *HandlerTestSuite) TestLevelUp() {
	s.Run("leveled", func() {
		s.mockCharacters.EXPECT().
			LevelUp(gomock.Any(), &character.LevelUpInput{CharacterID: "char_1"}).
			Return(&character.LevelUpOutput{Character: s.warrior()}, nil)

		code, _ := s.do(http.MethodPost, "/api/v1/characters/char_1/level-up", "")
		s.Equal(http.StatusOK, code)
	})

	s.Run("at the cap", func() {
		s.mockCharacters.EXPECT().
			LevelUp(gomock.Any(), gomock.Any()).
			Return(nil, errors.Domain(errors.ReasonMaxLevelReached, "character is already level 10"))

		code, env := s.do(http.MethodPost, "/api/v1/characters/char_1/level-up", "")
		s.Equal(http.StatusBadRequest, code)
		s.Equal("MAX_LEVEL_REACHED", env.Reason)
	})
}

func (s *HandlerTestSuite) TestSpellRoutes() {
	s.mockCharacters.EXPECT().
		AddSpell(gomock.Any(), &character.AddSpellInput{CharacterID: "char_1", SpellID: "spell_fireball"}).
		Return(nil, errors.Domain(errors.ReasonSpellCircleTooHigh, "too high"))
	code, env := s.do(http.MethodPost, "/api/v1/characters/char_1/spells/spell_fireball", "")
	s.Equal(http.StatusBadRequest, code)
	s.Equal("SPELL_CIRCLE_TOO_HIGH", env.Reason)

	s.mockCharacters.EXPECT().
		ForgetSpell(gomock.Any(), &character.ForgetSpellInput{CharacterID: "char_1", SpellID: "spell_spark"}).
		Return(&character.ForgetSpellOutput{Character: s.warrior()}, nil)
	code, _ = s.do(http.MethodDelete, "/api/v1/characters/char_1/spells/spell_spark", "")
	s.Equal(http.StatusOK, code)
}

func (s *HandlerTestSuite) TestItemRoutes() {
	s.Run("add without a body", func() {
		s.mockCharacters.EXPECT().
			AddItem(gomock.Any(), &character.AddItemInput{CharacterID: "char_1", ItemID: "item_potion"}).
			Return(&character.AddItemOutput{Character: s.warrior()}, nil)

		code, _ := s.do(http.MethodPost, "/api/v1/characters/char_1/items/item_potion", "")
		s.Equal(http.StatusOK, code)
	})

	s.Run("add with a quantity", func() {
		s.mockCharacters.EXPECT().
			AddItem(gomock.Any(), &character.AddItemInput{CharacterID: "char_1", ItemID: "item_potion", Quantity: 3}).
			Return(&character.AddItemOutput{Character: s.warrior()}, nil)

		code, _ := s.do(http.MethodPost, "/api/v1/characters/char_1/items/item_potion", `{"quantity":3}`)
		s.Equal(http.StatusOK, code)
	})

	s.Run("remove", func() {
		s.mockCharacters.EXPECT().
			RemoveItem(gomock.Any(), &character.RemoveItemInput{CharacterID: "char_1", ItemID: "item_potion", Quantity: 1}).
			Return(nil, errors.Domain(errors.ReasonItemNotInInventory, "not carried"))

		code, env := s.do(http.MethodDelete, "/api/v1/characters/char_1/items/item_potion", `{"quantity":1}`)
		s.Equal(http.StatusBadRequest, code)
		s.Equal("ITEM_NOT_IN_INVENTORY", env.Reason)
	})

	s.Run("equip into a preferred hand", func() {
		s.mockCharacters.EXPECT().
			EquipItem(gomock.Any(), &character.EquipItemInput{
				CharacterID:   "char_1",
				ItemID:        "item_longsword",
				PreferredSlot: entities.SlotOffHand,
			}).
			Return(&character.EquipItemOutput{Character: s.warrior()}, nil)

		code, _ := s.do(http.MethodPost, "/api/v1/characters/char_1/equip/item_longsword", `{"preferredSlot":"offHand"}`)
		s.Equal(http.StatusOK, code)
	})

	s.Run("unequip", func() {
		s.mockCharacters.EXPECT().
			UnequipItem(gomock.Any(), &character.UnequipItemInput{CharacterID: "char_1", ItemID: "item_longsword"}).
			Return(nil, errors.Domain(errors.ReasonItemNotEquipped, "not equipped"))

		code, env := s.do(http.MethodPost, "/api/v1/characters/char_1/unequip/item_longsword", "")
		s.Equal(http.StatusBadRequest, code)
		s.Equal("ITEM_NOT_EQUIPPED", env.Reason)
	})
}

func (s *HandlerTestSuite) TestRollSkillCheck() {
	s.mockCharacters.EXPECT().
		RollSkillCheck(gomock.Any(), &character.RollSkillCheckInput{CharacterID: "char_1", Skill: "athletics"}).
		Return(&character.RollSkillCheckOutput{Check: &engine.SkillCheck{
			Skill:        entities.SkillAthletics,
			Roll:         15,
			Modifier:     6,
			Total:        21,
			IsProficient: true,
		}}, nil)

	code, env := s.do(http.MethodPost, "/api/v1/characters/char_1/skill-checks/athletics", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"skill":"athletics","roll":15,"modifier":6,"total":21,"isProficient":true}`, string(env.Data))
}

func (s *HandlerTestSuite) TestCatalogRoutes() {
	s.Run("list items", func() {
		s.mockItems.EXPECT().
			List(gomock.Any(), &catalog.ListInput{NamePrefix: "sh"}).
			Return(&catalog.ListOutput[*entities.Item]{Entries: []*entities.Item{testutils.TestShield()}}, nil)

		code, env := s.do(http.MethodGet, "/api/v1/items?name=sh", "")
		s.Equal(http.StatusOK, code)
		s.Equal(1, *env.Count)
	})

	s.Run("create race", func() {
		s.mockRaces.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *catalog.CreateInput[*entities.Race]) (*catalog.CreateOutput[*entities.Race], error) {
				s.Equal("Dwarf", input.Entry.Name)
				return &catalog.CreateOutput[*entities.Race]{Entry: testutils.TestDwarf()}, nil
			})

		code, _ := s.do(http.MethodPost, "/api/v1/races", `{"name":"Dwarf","description":"Stout","size":"Medium"}`)
		s.Equal(http.StatusCreated, code)
	})

	s.Run("duplicate class name", func() {
		s.mockClasses.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.Domain(errors.ReasonDuplicateKey, "class named Warrior already exists"))

		code, env := s.do(http.MethodPost, "/api/v1/classes", `{"name":"Warrior"}`)
		s.Equal(http.StatusConflict, code)
		s.Equal("DUPLICATE_KEY", env.Reason)
	})

	s.Run("update spell uses the path id", func() {
		s.mockSpells.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *catalog.UpdateInput[*entities.Spell]) (*catalog.UpdateOutput[*entities.Spell], error) {
				s.Equal("spell_spark", input.ID)
				return &catalog.UpdateOutput[*entities.Spell]{Entry: testutils.TestSpark()}, nil
			})

		code, _ := s.do(http.MethodPut, "/api/v1/spells/spell_spark", `{"name":"Spark"}`)
		s.Equal(http.StatusOK, code)
	})

	s.Run("get and delete origin", func() {
		s.mockOrigins.EXPECT().
			Get(gomock.Any(), &catalog.GetInput{ID: "origin_soldier"}).
			Return(&catalog.GetOutput[*entities.Origin]{Entry: testutils.TestSoldier()}, nil)
		code, _ := s.do(http.MethodGet, "/api/v1/origins/origin_soldier", "")
		s.Equal(http.StatusOK, code)

		s.mockOrigins.EXPECT().
			Delete(gomock.Any(), &catalog.DeleteInput{ID: "origin_soldier"}).
			Return(&catalog.DeleteOutput[*entities.Origin]{Entry: testutils.TestSoldier()}, nil)
		code, _ = s.do(http.MethodDelete, "/api/v1/origins/origin_soldier", "")
		s.Equal(http.StatusOK, code)
	})

	s.Run("background", func() {
		s.mockBackground.EXPECT().
			GenerateBackground(gomock.Any(), &catalog.GenerateBackgroundInput{OriginID: "origin_soldier"}).
			Return(&catalog.GenerateBackgroundOutput{Background: &entities.Background{
				OriginID:         "origin_soldier",
				PersonalityTrait: "Blunt",
				Connections:      []entities.Connection{},
			}}, nil)

		code, env := s.do(http.MethodGet, "/api/v1/origins/origin_soldier/background", "")
		s.Equal(http.StatusOK, code)

		var bg entities.Background
		s.Require().NoError(json.Unmarshal(env.Data, &bg))
		s.Equal("Blunt", bg.PersonalityTrait)
	})
}

func (s *HandlerTestSuite) TestInternalErrorsAre500() {
	s.mockCharacters.EXPECT().
		ListCharacters(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis is down"))

	code, env := s.do(http.MethodGet, "/api/v1/characters", "")
	s.Equal(http.StatusInternalServerError, code)
	s.False(env.Success)
	s.Empty(env.Reason)
}

func (s *HandlerTestSuite) TestRecoverFromPanic() {
	s.mockCharacters.EXPECT().
		ListCharacters(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
			panic("boom")
		})

	code, env := s.do(http.MethodGet, "/api/v1/characters", "")
	s.Equal(http.StatusInternalServerError, code)
	s.Equal("internal server error", env.Error)
}
