package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/madking-api/internal/config"
	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	v1 "github.com/KirkDiggler/madking-api/internal/handlers/rest/v1"
	catalogorchestrator "github.com/KirkDiggler/madking-api/internal/orchestrators/catalog"
	characterorchestrator "github.com/KirkDiggler/madking-api/internal/orchestrators/character"
	"github.com/KirkDiggler/madking-api/internal/pkg/clock"
	"github.com/KirkDiggler/madking-api/internal/pkg/idgen"
	"github.com/KirkDiggler/madking-api/internal/redis"
	catalogrepo "github.com/KirkDiggler/madking-api/internal/repositories/catalog"
	characterrepo "github.com/KirkDiggler/madking-api/internal/repositories/character"
	"github.com/KirkDiggler/madking-api/internal/seed"
)

// app holds the wired services shared by the server and seed commands
type app struct {
	redis      redis.Client
	bus        events.EventBus
	characters *characterorchestrator.Orchestrator
	races      *catalogorchestrator.Orchestrator[*entities.Race]
	classes    *catalogorchestrator.Orchestrator[*entities.Class]
	origins    *catalogorchestrator.Orchestrator[*entities.Origin]
	items      *catalogorchestrator.Orchestrator[*entities.Item]
	spells     *catalogorchestrator.Orchestrator[*entities.Spell]
	background *catalogorchestrator.BackgroundOrchestrator
}

func newApp(cfg *config.Config, client redis.Client, roller dice.Roller) (*app, error) {
	repoCfg := catalogrepo.RedisConfig{Client: client, Clock: clock.New()}

	raceRepo, err := catalogrepo.NewRaces(repoCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create race repository")
	}
	classRepo, err := catalogrepo.NewClasses(repoCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create class repository")
	}
	originRepo, err := catalogrepo.NewOrigins(repoCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create origin repository")
	}
	itemRepo, err := catalogrepo.NewItems(repoCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item repository")
	}
	spellRepo, err := catalogrepo.NewSpells(repoCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spell repository")
	}
	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}

	a := &app{
		redis: client,
		bus:   events.NewBus(),
	}

	if a.races, err = catalogorchestrator.New(&catalogorchestrator.Config[*entities.Race]{
		Kind:        entities.KindRace,
		Repository:  raceRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixRace),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create race orchestrator")
	}
	if a.classes, err = catalogorchestrator.New(&catalogorchestrator.Config[*entities.Class]{
		Kind:        entities.KindClass,
		Repository:  classRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixClass),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create class orchestrator")
	}
	if a.origins, err = catalogorchestrator.New(&catalogorchestrator.Config[*entities.Origin]{
		Kind:        entities.KindOrigin,
		Repository:  originRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixOrigin),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create origin orchestrator")
	}
	if a.items, err = catalogorchestrator.New(&catalogorchestrator.Config[*entities.Item]{
		Kind:        entities.KindItem,
		Repository:  itemRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixItem),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create item orchestrator")
	}
	if a.spells, err = catalogorchestrator.New(&catalogorchestrator.Config[*entities.Spell]{
		Kind:        entities.KindSpell,
		Repository:  spellRepo,
		IDGenerator: idgen.NewUUID(idgen.PrefixSpell),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create spell orchestrator")
	}

	if a.background, err = catalogorchestrator.NewBackground(&catalogorchestrator.BackgroundConfig{
		OriginRepo: originRepo,
		DiceRoller: roller,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create background orchestrator")
	}

	if a.characters, err = characterorchestrator.New(&characterorchestrator.Config{
		CharacterRepo: characterRepo,
		RaceRepo:      raceRepo,
		ClassRepo:     classRepo,
		OriginRepo:    originRepo,
		ItemRepo:      itemRepo,
		SpellRepo:     spellRepo,
		IDGenerator:   idgen.NewUUID(idgen.PrefixCharacter),
		DiceRoller:    roller,
		EventBus:      a.bus,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	characterorchestrator.SubscribeAudit(a.bus, slog.Default().With("component", "audit"))

	slog.Debug("application wired",
		"redis_addr", cfg.RedisAddr,
		"redis_db", cfg.RedisDB)

	return a, nil
}

// handler builds the REST handler over the wired services
func (a *app) handler() (*v1.Handler, error) {
	return v1.NewHandler(&v1.HandlerConfig{
		CharacterService:  a.characters,
		RaceService:       a.races,
		ClassService:      a.classes,
		OriginService:     a.origins,
		ItemService:       a.items,
		SpellService:      a.spells,
		BackgroundService: a.background,
		HealthCheck:       a.ping,
	})
}

// seeder builds a seed loader over the catalog services
func (a *app) seeder() (*seed.Loader, error) {
	return seed.New(&seed.Config{
		RaceService:   a.races,
		ClassService:  a.classes,
		OriginService: a.origins,
		ItemService:   a.items,
		SpellService:  a.spells,
	})
}

func (a *app) ping(ctx context.Context) error {
	return redis.Ping(ctx, a.redis, 2*time.Second)
}

// newRedisClient connects to the configured Redis instance. A comma
// separated REDIS_ADDR selects cluster mode.
func newRedisClient(cfg *config.Config) (redis.Client, error) {
	opts := &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	}

	var (
		client redis.Client
		err    error
	)
	if addrs := cfg.RedisAddrs(); len(addrs) > 1 {
		client, err = redis.NewClusterClient(addrs, opts)
	} else {
		client, err = redis.NewClient(cfg.RedisAddr, opts)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	return client, nil
}
