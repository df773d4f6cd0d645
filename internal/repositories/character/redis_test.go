package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/repositories/character"
	"github.com/KirkDiggler/madking-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	clock   *testutils.FixedClock
	repo    character.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, client, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.clock = testutils.NewFixedClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func testCharacter(id, name string) *entities.Character {
	return &entities.Character{
		ID:            id,
		Name:          name,
		RaceID:        testutils.RaceDwarfID,
		ClassID:       testutils.ClassWarriorID,
		OriginID:      testutils.OriginSoldierID,
		Level:         1,
		Stats:         entities.DefaultStats(),
		HP:            10,
		MaxHP:         10,
		BaseAC:        entities.DefaultBaseAC,
		BaseSpeed:     entities.DefaultBaseSpeed,
		Items:         []entities.InventoryEntry{{ItemID: testutils.ItemLongswordID, Quantity: 1, Equipped: true}},
		EquippedSlots: entities.EquippedSlots{MainHand: testutils.ItemLongswordID},
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *character.RedisConfig
	}{
		{name: "nil config", config: nil},
		{name: "missing client", config: &character.RedisConfig{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := character.NewRedis(tc.config)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(repo)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: testCharacter("char_1", "Borin")})
	s.Require().NoError(err)
	s.True(created.Character.CreatedAt.Equal(s.clock.Now()))
	s.True(created.Character.UpdatedAt.Equal(s.clock.Now()))
	s.True(s.mr.Exists("character:char_1"))

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Borin", got.Character.Name)
	s.Equal(testutils.ItemLongswordID, got.Character.EquippedSlots.MainHand)
	s.True(got.Character.Items[0].Equipped)
	s.Nil(got.Character.Mana)
}

func (s *RedisRepositoryTestSuite) TestCreateFailures() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testCharacter("char_1", "Borin")})
	s.Require().NoError(err)

	s.Run("duplicate id", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testCharacter("char_1", "Other")})
		s.True(errors.IsAlreadyExists(err))
		s.True(errors.HasReason(err, errors.ReasonDuplicateKey))
	})

	s.Run("nil character", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("invariant violations are rejected before writing", func() {
		c := testCharacter("char_2", "")
		c.HP = 50
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().Error(err)
		s.True(errors.IsValidation(err))
		fields := errors.GetFieldErrors(err)
		s.Contains(fields, "name")
		s.Contains(fields, "hp")
		s.False(s.mr.Exists("character:char_2"))
	})

	s.Run("equipped item must be carried", func() {
		c := testCharacter("char_3", "Ghost")
		c.Items = nil
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.True(errors.IsValidation(err))
		s.Contains(errors.GetFieldErrors(err), "equippedSlots.mainHand")
	})
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsCreationTime() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: testCharacter("char_1", "Borin")})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	c := created.Character.Clone()
	c.Name = "Borin the Bold"
	c.CreatedAt = time.Time{}

	updated, err := s.repo.Update(s.ctx, character.UpdateInput{Character: c})
	s.Require().NoError(err)
	s.True(updated.Character.CreatedAt.Equal(created.Character.CreatedAt))
	s.True(updated.Character.UpdatedAt.Equal(s.clock.Now()))

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Borin the Bold", got.Character.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: testCharacter("char_9", "Nobody")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testCharacter("char_1", "Borin")})
	s.Require().NoError(err)

	deleted, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Borin", deleted.Character.Name)
	s.False(s.mr.Exists("character:char_1"))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Characters)
}

func (s *RedisRepositoryTestSuite) TestListNewestFirst() {
	for _, c := range []*entities.Character{
		testCharacter("char_1", "Borin"),
		testCharacter("char_2", "Alya"),
		testCharacter("char_3", "Brenna"),
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
		s.clock.Advance(time.Minute)
	}

	names := func(out *character.ListOutput) []string {
		var names []string
		for _, c := range out.Characters {
			names = append(names, c.Name)
		}
		return names
	}

	s.Run("all characters", func() {
		out, err := s.repo.List(s.ctx, character.ListInput{})
		s.Require().NoError(err)
		s.Equal([]string{"Brenna", "Alya", "Borin"}, names(out))
	})

	s.Run("name prefix ignores case", func() {
		out, err := s.repo.List(s.ctx, character.ListInput{NamePrefix: "bo"})
		s.Require().NoError(err)
		s.Equal([]string{"Borin"}, names(out))
	})

	s.Run("stale index entries are dropped", func() {
		s.mr.Del("character:char_2")
		out, err := s.repo.List(s.ctx, character.ListInput{})
		s.Require().NoError(err)
		s.Equal([]string{"Brenna", "Borin"}, names(out))

		members, err := s.mr.ZMembers("character:index:created")
		s.Require().NoError(err)
		s.NotContains(members, "char_2")
	})
}
